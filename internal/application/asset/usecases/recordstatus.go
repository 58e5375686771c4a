package usecases

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/shared/events"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type RecordStatusCommand struct {
	AssetID uint
	Status  string
}

type RecordStatusUseCase struct {
	ledgers   assetLedgers
	publisher events.EventPublisher
	txMgr     *db.TransactionManager
	logger    logger.Interface
}

func NewRecordStatusUseCase(
	assets asset.Repository,
	statuses asset.StatusLedger,
	allocations asset.AllocationLedger,
	publisher events.EventPublisher,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *RecordStatusUseCase {
	return &RecordStatusUseCase{
		ledgers:   assetLedgers{assets: assets, statuses: statuses, allocations: allocations},
		publisher: publisher,
		txMgr:     txMgr,
		logger:    logger,
	}
}

// Execute appends a status row and saves the asset in one transaction.
// Events are published only after the commit.
func (uc *RecordStatusUseCase) Execute(ctx context.Context, cmd RecordStatusCommand) (*dto.StatusRecordDTO, error) {
	uc.logger.Infow("executing record status use case", "asset_id", cmd.AssetID, "status", cmd.Status)

	status, err := vo.ParseAssetStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "status")
	}

	var (
		record    *asset.StatusRecord
		published []events.DomainEvent
	)
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.ledgers.load(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}
		record, published, err = uc.ledgers.appendStatus(txCtx, a, status)
		if err != nil {
			return err
		}
		return uc.ledgers.assets.Update(txCtx, a)
	})
	if err != nil {
		uc.logger.Errorw("failed to record asset status", "asset_id", cmd.AssetID, "status", cmd.Status, "error", err)
		return nil, err
	}

	publishAfterCommit(uc.publisher, uc.logger, published)

	uc.logger.Infow("asset status recorded", "asset_id", cmd.AssetID, "status", status)
	return dto.ToStatusRecordDTO(record), nil
}
