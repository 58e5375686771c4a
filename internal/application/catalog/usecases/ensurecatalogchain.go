package usecases

import (
	"context"
	"fmt"

	"art/internal/domain/catalog"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

// CatalogPath names one node per level, root first.
type CatalogPath struct {
	Category    string
	SubCategory string
	Type        string
	Make        string
	ModelNumber string
}

func (p CatalogPath) names() []string {
	return []string{p.Category, p.SubCategory, p.Type, p.Make, p.ModelNumber}
}

// EnsureCatalogChainUseCase walks the five levels, reusing nodes that already
// exist by name and creating the rest. It returns the model number id.
type EnsureCatalogChainUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewEnsureCatalogChainUseCase(repo catalog.Repository, logger logger.Interface) *EnsureCatalogChainUseCase {
	return &EnsureCatalogChainUseCase{repo: repo, logger: logger}
}

func (uc *EnsureCatalogChainUseCase) Execute(ctx context.Context, path CatalogPath) (uint, error) {
	var parentID *uint
	names := path.names()

	for i, level := range catalog.Levels() {
		name := catalog.NormalizeName(names[i])
		if name == "" {
			return 0, errors.NewValidationError(level.Label()+" is required", level.String())
		}

		item, err := uc.repo.GetByName(ctx, level, name)
		if err != nil {
			return 0, err
		}
		if item == nil {
			item, err = catalog.NewItem(level, name, parentID)
			if err != nil {
				return 0, itemValidationError(err)
			}
			if err := uc.repo.Create(ctx, item); err != nil {
				return 0, err
			}
			uc.logger.Debugw("catalog item created by chain", "level", level, "name", name)
		} else if parentID != nil && (item.ParentID() == nil || *item.ParentID() != *parentID) {
			return 0, errors.NewValidationError(
				fmt.Sprintf("%s %q already exists under a different parent", level.Label(), name),
				level.String(),
			)
		}

		id := item.ID()
		parentID = &id
	}

	return *parentID, nil
}
