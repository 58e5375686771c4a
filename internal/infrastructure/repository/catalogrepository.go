package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"art/internal/domain/catalog"
	"art/internal/infrastructure/persistence/mappers"
	"art/internal/infrastructure/persistence/models"
	"art/internal/shared/db"
	apperrors "art/internal/shared/errors"
	"art/internal/shared/logger"
)

// CatalogRepositoryImpl stores the five catalog levels in their own tables
// sharing one row shape.
type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
	logger logger.Interface
}

func NewCatalogRepository(db *gorm.DB, logger logger.Interface) catalog.Repository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *CatalogRepositoryImpl) table(ctx context.Context, level catalog.Level) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).Table(mappers.CatalogTable(level))
}

func (r *CatalogRepositoryImpl) Create(ctx context.Context, item *catalog.Item) error {
	model := r.mapper.ToModel(item)
	if err := r.table(ctx, item.Level()).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("%s with this name already exists", item.Level().Label()), "name")
		}
		r.logger.Errorw("failed to create catalog item", "level", item.Level(), "name", item.Name(), "error", err)
		return fmt.Errorf("failed to create %s: %w", item.Level().Label(), err)
	}
	return item.SetID(model.ID)
}

func (r *CatalogRepositoryImpl) Update(ctx context.Context, item *catalog.Item) error {
	result := r.table(ctx, item.Level()).
		Where("id = ?", item.ID()).
		Updates(map[string]any{
			"name":       item.Name(),
			"updated_at": item.UpdatedAt(),
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(fmt.Sprintf("%s with this name already exists", item.Level().Label()), "name")
		}
		r.logger.Errorw("failed to update catalog item", "level", item.Level(), "id", item.ID(), "error", result.Error)
		return fmt.Errorf("failed to update %s: %w", item.Level().Label(), result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(item.Level().Label() + " not found")
	}
	return nil
}

func (r *CatalogRepositoryImpl) Delete(ctx context.Context, level catalog.Level, id uint) error {
	result := r.table(ctx, level).Where("id = ?", id).Delete(&models.CatalogItemModel{})
	if result.Error != nil {
		if apperrors.IsForeignKeyError(result.Error) {
			return apperrors.NewProtectedDeletionError(level.Label() + " is still referenced")
		}
		r.logger.Errorw("failed to delete catalog item", "level", level, "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete %s: %w", level.Label(), result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(level.Label() + " not found")
	}
	return nil
}

func (r *CatalogRepositoryImpl) GetByID(ctx context.Context, level catalog.Level, id uint) (*catalog.Item, error) {
	var model models.CatalogItemModel
	if err := r.table(ctx, level).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", level.Label(), err)
	}
	return r.mapper.ToEntity(level, &model)
}

func (r *CatalogRepositoryImpl) GetByName(ctx context.Context, level catalog.Level, name string) (*catalog.Item, error) {
	var model models.CatalogItemModel
	err := r.table(ctx, level).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s by name: %w", level.Label(), err)
	}
	return r.mapper.ToEntity(level, &model)
}

func (r *CatalogRepositoryImpl) List(ctx context.Context, filter catalog.Filter) ([]*catalog.Item, int64, error) {
	query := r.table(ctx, filter.Level)
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}
	query = query.Scopes(db.NameContains("name", filter.Search))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", filter.Level.Label(), err)
	}

	var rows []models.CatalogItemModel
	if err := query.Order("name ASC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", filter.Level.Label(), err)
	}

	items, err := r.mapper.ToEntities(filter.Level, rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// CountChildren counts child catalog rows, or for a model number the assets
// that reference it.
func (r *CatalogRepositoryImpl) CountChildren(ctx context.Context, level catalog.Level, id uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var (
		count int64
		err   error
	)
	if child, ok := level.Child(); ok {
		err = tx.Table(mappers.CatalogTable(child)).Where("parent_id = ?", id).Count(&count).Error
	} else {
		err = tx.Model(&models.AssetModel{}).Where("model_number_id = ?", id).Count(&count).Error
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count dependents of %s %d: %w", level.Label(), id, err)
	}
	return count, nil
}
