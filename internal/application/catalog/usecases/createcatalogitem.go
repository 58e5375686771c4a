package usecases

import (
	"context"
	"fmt"

	"art/internal/application/catalog/dto"
	"art/internal/domain/catalog"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type CreateCatalogItemCommand struct {
	Level    catalog.Level
	Name     string
	ParentID *uint
}

type CreateCatalogItemUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewCreateCatalogItemUseCase(repo catalog.Repository, logger logger.Interface) *CreateCatalogItemUseCase {
	return &CreateCatalogItemUseCase{repo: repo, logger: logger}
}

func (uc *CreateCatalogItemUseCase) Execute(ctx context.Context, cmd CreateCatalogItemCommand) (*dto.CatalogItemDTO, error) {
	uc.logger.Infow("executing create catalog item use case", "level", cmd.Level, "name", cmd.Name)

	if !cmd.Level.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid catalog level: %q", cmd.Level), "level")
	}

	item, err := catalog.NewItem(cmd.Level, cmd.Name, cmd.ParentID)
	if err != nil {
		return nil, itemValidationError(err)
	}

	if err := checkParent(ctx, uc.repo, item); err != nil {
		return nil, err
	}
	if err := checkNameAvailable(ctx, uc.repo, item.Level(), item.Name(), 0); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, item); err != nil {
		uc.logger.Errorw("failed to create catalog item", "level", cmd.Level, "error", err)
		return nil, err
	}

	uc.logger.Infow("catalog item created", "level", item.Level(), "id", item.ID(), "name", item.Name())
	return dto.ToCatalogItemDTO(item), nil
}

// checkParent verifies the parent of a non-root item exists at the level above.
func checkParent(ctx context.Context, repo catalog.Repository, item *catalog.Item) error {
	parentLevel, ok := item.Level().Parent()
	if !ok {
		return nil
	}
	parent, err := repo.GetByID(ctx, parentLevel, *item.ParentID())
	if err != nil {
		return err
	}
	if parent == nil {
		return errors.NewValidationError(parentLevel.Label()+" does not exist", "parent_id")
	}
	return nil
}

// checkNameAvailable rejects a case-insensitive duplicate at the same level.
func checkNameAvailable(ctx context.Context, repo catalog.Repository, level catalog.Level, name string, selfID uint) error {
	existing, err := repo.GetByName(ctx, level, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID() != selfID {
		return errors.NewConflictError(fmt.Sprintf("%s with this name already exists", level.Label()), "name")
	}
	return nil
}

func itemValidationError(err error) error {
	switch err {
	case catalog.ErrNameRequired:
		return errors.NewValidationError(err.Error(), "name")
	case catalog.ErrParentRequired, catalog.ErrRootHasParent:
		return errors.NewValidationError(err.Error(), "parent_id")
	}
	return errors.NewValidationError(err.Error())
}
