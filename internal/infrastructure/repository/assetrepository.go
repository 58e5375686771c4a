package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/infrastructure/persistence/mappers"
	"art/internal/infrastructure/persistence/models"
	"art/internal/shared/db"
	apperrors "art/internal/shared/errors"
	"art/internal/shared/logger"
)

type AssetRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
	logger logger.Interface
}

func NewAssetRepository(db *gorm.DB, logger logger.Interface) asset.Repository {
	return &AssetRepositoryImpl{
		db:     db,
		mapper: mappers.NewAssetMapper(),
		logger: logger,
	}
}

func (r *AssetRepositoryImpl) Create(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("asset with this asset code or serial number already exists", duplicateAssetField(err))
		}
		r.logger.Errorw("failed to create asset", "label", a.Label(), "error", err)
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return a.SetID(model.ID)
}

// Update is version checked. On success the entity's version is advanced to
// match the row.
func (r *AssetRepositoryImpl) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"asset_code":      model.AssetCode,
			"serial_number":   model.SerialNumber,
			"model_number_id": model.ModelNumberID,
			"assigned_to_id":  model.AssignedToID,
			"current_status":  model.CurrentStatus,
			"notes":           model.Notes,
			"specs_id":        model.SpecsID,
			"verified":        model.Verified,
			"purchase_date":   model.PurchaseDate,
			"version":         model.Version + 1,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("asset with this asset code or serial number already exists", duplicateAssetField(result.Error))
		}
		r.logger.Errorw("failed to update asset", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("asset was modified concurrently, please retry", "version")
	}

	a.IncrementVersion()
	return nil
}

// Delete removes the asset together with its ledgers, conditions and
// incident reports. Callers run it inside a transaction.
func (r *AssetRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for _, child := range []any{
		&models.AssetStatusModel{},
		&models.AllocationHistoryModel{},
		&models.AssetConditionModel{},
		&models.AssetIncidentReportModel{},
	} {
		if err := tx.Where("asset_id = ?", id).Delete(child).Error; err != nil {
			r.logger.Errorw("failed to delete asset dependents", "id", id, "error", err)
			return fmt.Errorf("failed to delete asset dependents: %w", err)
		}
	}

	result := tx.Delete(&models.AssetModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete asset", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("asset not found")
	}
	return nil
}

func (r *AssetRepositoryImpl) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	found, err := notFoundAsNil(db.GetTxFromContext(ctx, r.db).First(&model, id).Error)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if !found {
		return nil, nil
	}
	return r.mapper.ToEntity(&model)
}

func (r *AssetRepositoryImpl) GetByUUID(ctx context.Context, uuid string) (*asset.Asset, error) {
	var model models.AssetModel
	found, err := notFoundAsNil(db.GetTxFromContext(ctx, r.db).Where("uuid = ?", uuid).First(&model).Error)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset by uuid: %w", err)
	}
	if !found {
		return nil, nil
	}
	return r.mapper.ToEntity(&model)
}

func (r *AssetRepositoryImpl) ExistsByAssetCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	return r.exists(ctx, "asset_code", code, excludeID)
}

func (r *AssetRepositoryImpl) ExistsBySerialNumber(ctx context.Context, serial string, excludeID uint) (bool, error) {
	return r.exists(ctx, "serial_number", serial, excludeID)
}

func (r *AssetRepositoryImpl) exists(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AssetModel{}).Where(column+" = ?", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check asset %s: %w", column, err)
	}
	return count > 0, nil
}

func (r *AssetRepositoryImpl) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AssetModel{})

	if filter.Status != nil {
		query = query.Where("current_status = ?", filter.Status.String())
	}
	if filter.ModelNumberID != nil {
		query = query.Where("model_number_id = ?", *filter.ModelNumberID)
	}
	if filter.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.Verified != nil {
		query = query.Where("verified = ?", *filter.Verified)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(asset_code) LIKE ? OR LOWER(serial_number) LIKE ? OR uuid = ?", like, like, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	var rows []models.AssetModel
	if err := query.Order("created_at DESC").Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assets, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

func (r *AssetRepositoryImpl) CountByStatusAndModelNumber(ctx context.Context, status vo.AssetStatus, modelNumberID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.AssetModel{}).
		Where("current_status = ? AND model_number_id = ?", status.String(), modelNumberID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count assets by status: %w", err)
	}
	return count, nil
}

func (r *AssetRepositoryImpl) CountBySpecs(ctx context.Context, specsID uint) (int64, error) {
	return r.countWhere(ctx, "specs_id = ?", specsID)
}

func (r *AssetRepositoryImpl) CountByAssignee(ctx context.Context, assigneeID uint) (int64, error) {
	return r.countWhere(ctx, "assigned_to_id = ?", assigneeID)
}

func (r *AssetRepositoryImpl) countWhere(ctx context.Context, cond string, arg any) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AssetModel{}).Where(cond, arg).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}

// duplicateAssetField names the column a unique violation refers to, if the
// driver message says so.
func duplicateAssetField(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "serial_number"):
		return "serial_number"
	case strings.Contains(msg, "asset_code"):
		return "asset_code"
	}
	return ""
}
