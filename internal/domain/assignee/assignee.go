package assignee

import (
	"fmt"
	"time"
)

// Assignee is the persisted owner record that allocations point at.
type Assignee struct {
	id        uint
	ref       Ref
	createdAt time.Time
}

func NewAssignee(ref Ref) (*Assignee, error) {
	if !ref.IsValid() {
		return nil, ErrInvalidAssignee
	}
	return &Assignee{
		ref:       ref,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructAssignee(id uint, ref Ref, createdAt time.Time) (*Assignee, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignee ID cannot be zero")
	}
	if !ref.IsValid() {
		return nil, ErrInvalidAssignee
	}
	return &Assignee{id: id, ref: ref, createdAt: createdAt}, nil
}

func (a *Assignee) ID() uint {
	return a.id
}

func (a *Assignee) Ref() Ref {
	return a.ref
}

func (a *Assignee) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Assignee) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignee ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	a.id = id
	return nil
}
