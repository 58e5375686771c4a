package usecases

import (
	"context"
	"fmt"

	"art/internal/domain/catalog"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type DeleteCatalogItemUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewDeleteCatalogItemUseCase(repo catalog.Repository, logger logger.Interface) *DeleteCatalogItemUseCase {
	return &DeleteCatalogItemUseCase{repo: repo, logger: logger}
}

// Execute removes a catalog node. Nodes with children, and model numbers
// still referenced by assets, are protected.
func (uc *DeleteCatalogItemUseCase) Execute(ctx context.Context, level catalog.Level, id uint) error {
	item, err := getItem(ctx, uc.repo, level, id)
	if err != nil {
		return err
	}

	count, err := uc.repo.CountChildren(ctx, level, id)
	if err != nil {
		uc.logger.Errorw("failed to count catalog dependents", "level", level, "id", id, "error", err)
		return err
	}
	if count > 0 {
		dependents := "child items"
		if level.IsLeaf() {
			dependents = "assets"
		}
		return errors.NewProtectedDeletionError(
			fmt.Sprintf("cannot delete %s %q: %d %s still reference it", level.Label(), item.Name(), count, dependents),
		)
	}

	if err := uc.repo.Delete(ctx, level, id); err != nil {
		uc.logger.Errorw("failed to delete catalog item", "level", level, "id", id, "error", err)
		return err
	}

	uc.logger.Infow("catalog item deleted", "level", level, "id", id)
	return nil
}
