package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"art/internal/domain/asset"
	"art/internal/infrastructure/persistence/mappers"
	"art/internal/infrastructure/persistence/models"
	"art/internal/shared/db"
	apperrors "art/internal/shared/errors"
	"art/internal/shared/logger"
)

type ConditionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
	logger logger.Interface
}

func NewConditionRepository(db *gorm.DB, logger logger.Interface) asset.ConditionRepository {
	return &ConditionRepositoryImpl{db: db, mapper: mappers.NewAssetMapper(), logger: logger}
}

func (r *ConditionRepositoryImpl) Create(ctx context.Context, c *asset.Condition) error {
	model := r.mapper.ConditionToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create asset condition", "asset_id", c.AssetID(), "error", err)
		return fmt.Errorf("failed to create asset condition: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *ConditionRepositoryImpl) ListByAsset(ctx context.Context, assetID uint) ([]*asset.Condition, error) {
	var rows []models.AssetConditionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("asset_id = ?", assetID).
		Scopes(db.LatestFirst()).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list asset conditions: %w", err)
	}
	out := make([]*asset.Condition, 0, len(rows))
	for i := range rows {
		out = append(out, r.mapper.ConditionToEntity(&rows[i]))
	}
	return out, nil
}

type IncidentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
	logger logger.Interface
}

func NewIncidentRepository(db *gorm.DB, logger logger.Interface) asset.IncidentRepository {
	return &IncidentRepositoryImpl{db: db, mapper: mappers.NewAssetMapper(), logger: logger}
}

func (r *IncidentRepositoryImpl) Create(ctx context.Context, report *asset.IncidentReport) error {
	model := r.mapper.IncidentToModel(report)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create incident report", "asset_id", report.AssetID(), "type", report.IncidentType(), "error", err)
		return fmt.Errorf("failed to create incident report: %w", err)
	}
	return report.SetID(model.ID)
}

func (r *IncidentRepositoryImpl) ListByAsset(ctx context.Context, assetID uint) ([]*asset.IncidentReport, error) {
	var rows []models.AssetIncidentReportModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("asset_id = ?", assetID).
		Scopes(db.LatestFirst()).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list incident reports: %w", err)
	}
	out := make([]*asset.IncidentReport, 0, len(rows))
	for i := range rows {
		out = append(out, r.mapper.IncidentToEntity(&rows[i]))
	}
	return out, nil
}

type SpecsRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
	logger logger.Interface
}

func NewSpecsRepository(db *gorm.DB, logger logger.Interface) asset.SpecsRepository {
	return &SpecsRepositoryImpl{db: db, mapper: mappers.NewAssetMapper(), logger: logger}
}

func (r *SpecsRepositoryImpl) Create(ctx context.Context, s *asset.Specs) error {
	model := r.mapper.SpecsToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("asset specs with these values already exist", "specs")
		}
		r.logger.Errorw("failed to create asset specs", "error", err)
		return fmt.Errorf("failed to create asset specs: %w", err)
	}
	return s.SetID(model.ID)
}

func (r *SpecsRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AssetSpecsModel{}, id)
	if result.Error != nil {
		if err := translateWriteError(result.Error, "asset specs", "values"); err != nil {
			return err
		}
		return fmt.Errorf("failed to delete asset specs: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("asset specs not found")
	}
	return nil
}

func (r *SpecsRepositoryImpl) GetByID(ctx context.Context, id uint) (*asset.Specs, error) {
	var model models.AssetSpecsModel
	found, err := notFoundAsNil(db.GetTxFromContext(ctx, r.db).First(&model, id).Error)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset specs: %w", err)
	}
	if !found {
		return nil, nil
	}
	return r.mapper.SpecsToEntity(&model), nil
}

// GetByTuple matches the normalised tuple exactly. Empty fields match the
// stored empty string, not NULL.
func (r *SpecsRepositoryImpl) GetByTuple(ctx context.Context, tuple asset.SpecsTuple) (*asset.Specs, error) {
	t := tuple.Normalized()

	var model models.AssetSpecsModel
	found, err := notFoundAsNil(db.GetTxFromContext(ctx, r.db).
		Where("year_of_manufacture = ? AND processor_speed = ? AND screen_size = ? AND processor_type = ? AND storage = ? AND memory = ?",
			t.YearOfManufacture, t.ProcessorSpeed, t.ScreenSize, t.ProcessorType, t.Storage, t.Memory).
		First(&model).Error)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset specs: %w", err)
	}
	if !found {
		return nil, nil
	}
	return r.mapper.SpecsToEntity(&model), nil
}

func (r *SpecsRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*asset.Specs, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AssetSpecsModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count asset specs: %w", err)
	}

	var rows []models.AssetSpecsModel
	if err := query.Order("id ASC").Scopes(db.Paginate(page, pageSize)).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list asset specs: %w", err)
	}
	out := make([]*asset.Specs, 0, len(rows))
	for i := range rows {
		out = append(out, r.mapper.SpecsToEntity(&rows[i]))
	}
	return out, total, nil
}
