package usecases

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

// AssetHistoryUseCase reads the status and allocation ledgers of one asset
// and the per-status stock of a model number.
type AssetHistoryUseCase struct {
	ledgers assetLedgers
	logger  logger.Interface
}

func NewAssetHistoryUseCase(
	assets asset.Repository,
	statuses asset.StatusLedger,
	allocations asset.AllocationLedger,
	logger logger.Interface,
) *AssetHistoryUseCase {
	return &AssetHistoryUseCase{
		ledgers: assetLedgers{assets: assets, statuses: statuses, allocations: allocations},
		logger:  logger,
	}
}

// StatusHistory returns every status row of the asset, oldest first.
func (uc *AssetHistoryUseCase) StatusHistory(ctx context.Context, assetID uint) ([]*dto.StatusRecordDTO, error) {
	if _, err := uc.ledgers.load(ctx, assetID); err != nil {
		return nil, err
	}
	records, err := uc.ledgers.statuses.History(ctx, assetID)
	if err != nil {
		uc.logger.Errorw("failed to read status history", "asset_id", assetID, "error", err)
		return nil, err
	}
	return dto.ToStatusRecordDTOs(records), nil
}

// AllocationHistory returns every allocation row of the asset, oldest first.
func (uc *AssetHistoryUseCase) AllocationHistory(ctx context.Context, assetID uint) ([]*dto.AllocationRecordDTO, error) {
	if _, err := uc.ledgers.load(ctx, assetID); err != nil {
		return nil, err
	}
	records, err := uc.ledgers.allocations.History(ctx, assetID)
	if err != nil {
		uc.logger.Errorw("failed to read allocation history", "asset_id", assetID, "error", err)
		return nil, err
	}
	return dto.ToAllocationRecordDTOs(records), nil
}

// StockSummary counts the assets of a model number per status.
func (uc *AssetHistoryUseCase) StockSummary(ctx context.Context, modelNumberID uint) ([]dto.StatusCount, error) {
	if modelNumberID == 0 {
		return nil, errors.NewValidationError("model number is required", "model_number_id")
	}
	statuses := vo.AllAssetStatuses()
	out := make([]dto.StatusCount, 0, len(statuses))
	for _, status := range statuses {
		n, err := uc.ledgers.assets.CountByStatusAndModelNumber(ctx, status, modelNumberID)
		if err != nil {
			uc.logger.Errorw("failed to count assets", "model_number_id", modelNumberID, "status", status, "error", err)
			return nil, err
		}
		out = append(out, dto.StatusCount{Status: status, Count: n})
	}
	return out, nil
}
