package usecases

import (
	"context"

	"art/internal/domain/assignee"
)

// AssigneeManager keeps the asset_assignees row of an owner entity in step
// with the entity itself.
type AssigneeManager interface {
	Ensure(ctx context.Context, ref assignee.Ref) (*assignee.Assignee, error)
	Lookup(ctx context.Context, ref assignee.Ref) (*assignee.Assignee, error)
	Remove(ctx context.Context, ref assignee.Ref) error
}

// AssetCounter reports how many assets are currently allocated to an
// assignee.
type AssetCounter interface {
	CountByAssignee(ctx context.Context, assigneeID uint) (int64, error)
}
