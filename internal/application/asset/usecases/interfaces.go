package usecases

import (
	"context"

	assigneeapp "art/internal/application/assignee"
	"art/internal/domain/assignee"
)

// AssigneeResolver maps assignee ids and owner refs to assignee rows.
type AssigneeResolver interface {
	Resolve(ctx context.Context, assigneeID uint) (*assigneeapp.Resolved, error)
	Lookup(ctx context.Context, ref assignee.Ref) (*assignee.Assignee, error)
}
