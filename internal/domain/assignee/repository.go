package assignee

import "context"

type Repository interface {
	// Create inserts the assignee and sets its ID.
	Create(ctx context.Context, a *Assignee) error
	// GetByID returns nil when the row does not exist. A row that references
	// zero or several entities yields ErrInvalidAssignee.
	GetByID(ctx context.Context, id uint) (*Assignee, error)
	// GetByRef returns nil when no assignee exists for ref.
	GetByRef(ctx context.Context, ref Ref) (*Assignee, error)
	// DeleteByRef removes the assignee of a deleted owner entity.
	DeleteByRef(ctx context.Context, ref Ref) error
}
