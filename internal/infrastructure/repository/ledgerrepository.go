package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"art/internal/domain/asset"
	"art/internal/infrastructure/persistence/mappers"
	"art/internal/infrastructure/persistence/models"
	"art/internal/shared/db"
	"art/internal/shared/logger"
)

// StatusLedgerImpl is the append-only asset_statuses table. Rows are never
// updated or deleted by the application.
type StatusLedgerImpl struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
	logger logger.Interface
}

func NewStatusLedger(db *gorm.DB, logger logger.Interface) asset.StatusLedger {
	return &StatusLedgerImpl{db: db, mapper: mappers.NewAssetMapper(), logger: logger}
}

func (l *StatusLedgerImpl) Append(ctx context.Context, record *asset.StatusRecord) error {
	model := l.mapper.StatusToModel(record)
	if err := db.GetTxFromContext(ctx, l.db).Create(model).Error; err != nil {
		l.logger.Errorw("failed to append asset status", "asset_id", record.AssetID(), "status", record.CurrentStatus(), "error", err)
		return fmt.Errorf("failed to append asset status: %w", err)
	}
	return record.SetID(model.ID)
}

func (l *StatusLedgerImpl) Latest(ctx context.Context, assetID uint) (*asset.StatusRecord, error) {
	var model models.AssetStatusModel
	found, err := notFoundAsNil(db.GetTxFromContext(ctx, l.db).
		Where("asset_id = ?", assetID).
		Order("created_at DESC").
		Order("id DESC").
		Take(&model).Error)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest asset status: %w", err)
	}
	if !found {
		return nil, nil
	}
	return l.mapper.StatusToEntity(&model), nil
}

func (l *StatusLedgerImpl) History(ctx context.Context, assetID uint) ([]*asset.StatusRecord, error) {
	var rows []models.AssetStatusModel
	if err := db.GetTxFromContext(ctx, l.db).
		Where("asset_id = ?", assetID).
		Scopes(db.OldestFirst()).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read asset status history: %w", err)
	}
	out := make([]*asset.StatusRecord, 0, len(rows))
	for i := range rows {
		out = append(out, l.mapper.StatusToEntity(&rows[i]))
	}
	return out, nil
}

// AllocationLedgerImpl is the append-only allocation_histories table.
type AllocationLedgerImpl struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
	logger logger.Interface
}

func NewAllocationLedger(db *gorm.DB, logger logger.Interface) asset.AllocationLedger {
	return &AllocationLedgerImpl{db: db, mapper: mappers.NewAssetMapper(), logger: logger}
}

func (l *AllocationLedgerImpl) Append(ctx context.Context, record *asset.AllocationRecord) error {
	model := l.mapper.AllocationToModel(record)
	if err := db.GetTxFromContext(ctx, l.db).Create(model).Error; err != nil {
		l.logger.Errorw("failed to append allocation history", "asset_id", record.AssetID(), "error", err)
		return fmt.Errorf("failed to append allocation history: %w", err)
	}
	return record.SetID(model.ID)
}

func (l *AllocationLedgerImpl) Latest(ctx context.Context, assetID uint) (*asset.AllocationRecord, error) {
	var model models.AllocationHistoryModel
	found, err := notFoundAsNil(db.GetTxFromContext(ctx, l.db).
		Where("asset_id = ?", assetID).
		Order("created_at DESC").
		Order("id DESC").
		Take(&model).Error)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest allocation: %w", err)
	}
	if !found {
		return nil, nil
	}
	return l.mapper.AllocationToEntity(&model), nil
}

func (l *AllocationLedgerImpl) History(ctx context.Context, assetID uint) ([]*asset.AllocationRecord, error) {
	var rows []models.AllocationHistoryModel
	if err := db.GetTxFromContext(ctx, l.db).
		Where("asset_id = ?", assetID).
		Scopes(db.OldestFirst()).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read allocation history: %w", err)
	}
	out := make([]*asset.AllocationRecord, 0, len(rows))
	for i := range rows {
		out = append(out, l.mapper.AllocationToEntity(&rows[i]))
	}
	return out, nil
}
