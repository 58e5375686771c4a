package usecases

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	"art/internal/domain/assignee"
	"art/internal/domain/shared/events"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

// RecordAllocationCommand names the new owner by assignee id or by owner ref.
// Leaving both nil releases the asset.
type RecordAllocationCommand struct {
	AssetID     uint
	AssigneeID  *uint
	AssigneeRef *assignee.Ref
}

type RecordAllocationUseCase struct {
	ledgers   assetLedgers
	assignees AssigneeResolver
	publisher events.EventPublisher
	txMgr     *db.TransactionManager
	logger    logger.Interface
}

func NewRecordAllocationUseCase(
	assets asset.Repository,
	statuses asset.StatusLedger,
	allocations asset.AllocationLedger,
	assignees AssigneeResolver,
	publisher events.EventPublisher,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *RecordAllocationUseCase {
	return &RecordAllocationUseCase{
		ledgers:   assetLedgers{assets: assets, statuses: statuses, allocations: allocations},
		assignees: assignees,
		publisher: publisher,
		txMgr:     txMgr,
		logger:    logger,
	}
}

// Execute appends an allocation row and saves the asset in one transaction.
// The availability check reads the status ledger inside that transaction.
func (uc *RecordAllocationUseCase) Execute(ctx context.Context, cmd RecordAllocationCommand) (*dto.AllocationRecordDTO, error) {
	uc.logger.Infow("executing record allocation use case", "asset_id", cmd.AssetID, "assignee_id", cmd.AssigneeID)

	var (
		record    *asset.AllocationRecord
		published []events.DomainEvent
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.ledgers.load(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}
		ownerID, err := uc.resolveOwner(txCtx, cmd)
		if err != nil {
			return err
		}
		record, published, err = uc.ledgers.appendAllocation(txCtx, a, ownerID)
		if err != nil {
			return err
		}
		return uc.ledgers.assets.Update(txCtx, a)
	})
	if err != nil {
		uc.logger.Errorw("failed to record asset allocation", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	publishAfterCommit(uc.publisher, uc.logger, published)

	uc.logger.Infow("asset allocation recorded", "asset_id", cmd.AssetID, "owner_id", record.CurrentOwnerID())
	return dto.ToAllocationRecordDTO(record), nil
}

func (uc *RecordAllocationUseCase) resolveOwner(ctx context.Context, cmd RecordAllocationCommand) (*uint, error) {
	switch {
	case cmd.AssigneeID != nil:
		resolved, err := uc.assignees.Resolve(ctx, *cmd.AssigneeID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("assignee does not exist", "assignee_id")
			}
			return nil, err
		}
		return &resolved.ID, nil
	case cmd.AssigneeRef != nil:
		a, err := uc.assignees.Lookup(ctx, *cmd.AssigneeRef)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("assignee does not exist", "assignee_ref")
			}
			return nil, err
		}
		id := a.ID()
		return &id, nil
	}
	return nil, nil
}
