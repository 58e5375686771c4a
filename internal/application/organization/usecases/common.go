package usecases

import (
	"context"
	"fmt"

	"art/internal/domain/assignee"
	"art/internal/shared/errors"
	"art/internal/shared/utils"
)

func normalizePage(page, pageSize int) utils.Pagination {
	return utils.ValidatePagination(page, pageSize)
}

func validationError(err error, field string) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewValidationError(err.Error(), field)
}

// assigneeIDOf returns the assignee id of ref, or nil when no row exists.
func assigneeIDOf(ctx context.Context, assignees AssigneeManager, ref assignee.Ref) (*uint, error) {
	a, err := assignees.Lookup(ctx, ref)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	id := a.ID()
	return &id, nil
}

// releaseAssignee refuses to drop an owner that still holds assets, then
// removes its assignee row.
func releaseAssignee(ctx context.Context, assignees AssigneeManager, assets AssetCounter, ref assignee.Ref, label string) error {
	a, err := assignees.Lookup(ctx, ref)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	count, err := assets.CountByAssignee(ctx, a.ID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewProtectedDeletionError(fmt.Sprintf("cannot delete %s: %d assets are allocated to it", label, count))
	}

	return assignees.Remove(ctx, ref)
}
