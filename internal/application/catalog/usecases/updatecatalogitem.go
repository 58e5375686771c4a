package usecases

import (
	"context"

	"art/internal/application/catalog/dto"
	"art/internal/domain/catalog"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type UpdateCatalogItemCommand struct {
	Level catalog.Level
	ID    uint
	Name  string
}

type UpdateCatalogItemUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewUpdateCatalogItemUseCase(repo catalog.Repository, logger logger.Interface) *UpdateCatalogItemUseCase {
	return &UpdateCatalogItemUseCase{repo: repo, logger: logger}
}

func (uc *UpdateCatalogItemUseCase) Execute(ctx context.Context, cmd UpdateCatalogItemCommand) (*dto.CatalogItemDTO, error) {
	uc.logger.Infow("executing update catalog item use case", "level", cmd.Level, "id", cmd.ID)

	item, err := getItem(ctx, uc.repo, cmd.Level, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := item.Rename(cmd.Name); err != nil {
		return nil, itemValidationError(err)
	}
	if err := checkNameAvailable(ctx, uc.repo, item.Level(), item.Name(), item.ID()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to update catalog item", "level", cmd.Level, "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("catalog item updated", "level", item.Level(), "id", item.ID(), "name", item.Name())
	return dto.ToCatalogItemDTO(item), nil
}

func getItem(ctx context.Context, repo catalog.Repository, level catalog.Level, id uint) (*catalog.Item, error) {
	if !level.IsValid() {
		return nil, errors.NewValidationError("invalid catalog level", "level")
	}
	item, err := repo.GetByID(ctx, level, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.NewNotFoundError(level.Label() + " not found")
	}
	return item, nil
}
