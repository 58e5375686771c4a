// Package assignee models the polymorphic owner an asset can be allocated to:
// exactly one of a user, a department or a workspace.
package assignee

import (
	"errors"
	"fmt"
)

// Kind tags which entity a Ref points at.
type Kind string

const (
	KindUser       Kind = "user"
	KindDepartment Kind = "department"
	KindWorkspace  Kind = "workspace"
)

// ErrInvalidAssignee is returned when a stored assignee row does not reference
// exactly one entity.
var ErrInvalidAssignee = errors.New("assignee must reference exactly one of user, department or workspace")

func (k Kind) IsValid() bool {
	switch k {
	case KindUser, KindDepartment, KindWorkspace:
		return true
	}
	return false
}

// Ref is the sum type User(id) | Department(id) | Workspace(id).
// The zero value is invalid.
type Ref struct {
	kind Kind
	id   uint
}

func NewRef(kind Kind, id uint) (Ref, error) {
	if !kind.IsValid() {
		return Ref{}, fmt.Errorf("invalid assignee kind: %q", kind)
	}
	if id == 0 {
		return Ref{}, fmt.Errorf("%s ID cannot be zero", kind)
	}
	return Ref{kind: kind, id: id}, nil
}

func UserRef(id uint) Ref {
	return Ref{kind: KindUser, id: id}
}

func DepartmentRef(id uint) Ref {
	return Ref{kind: KindDepartment, id: id}
}

func WorkspaceRef(id uint) Ref {
	return Ref{kind: KindWorkspace, id: id}
}

func (r Ref) Kind() Kind {
	return r.kind
}

func (r Ref) ID() uint {
	return r.id
}

func (r Ref) IsValid() bool {
	return r.kind.IsValid() && r.id != 0
}

func (r Ref) String() string {
	return fmt.Sprintf("%s:%d", r.kind, r.id)
}

// Columns spreads the ref over the three nullable foreign keys used for storage.
func (r Ref) Columns() (userID, departmentID, workspaceID *uint) {
	id := r.id
	switch r.kind {
	case KindUser:
		userID = &id
	case KindDepartment:
		departmentID = &id
	case KindWorkspace:
		workspaceID = &id
	}
	return userID, departmentID, workspaceID
}

// RefFromColumns is the inverse of Columns. It rejects rows where zero or
// several references are set.
func RefFromColumns(userID, departmentID, workspaceID *uint) (Ref, error) {
	var (
		ref Ref
		set int
	)
	if userID != nil && *userID != 0 {
		ref = UserRef(*userID)
		set++
	}
	if departmentID != nil && *departmentID != 0 {
		ref = DepartmentRef(*departmentID)
		set++
	}
	if workspaceID != nil && *workspaceID != 0 {
		ref = WorkspaceRef(*workspaceID)
		set++
	}
	if set != 1 {
		return Ref{}, ErrInvalidAssignee
	}
	return ref, nil
}
