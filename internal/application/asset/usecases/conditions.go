package usecases

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

type ConditionUseCase struct {
	assets     asset.Repository
	conditions asset.ConditionRepository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewConditionUseCase(
	assets asset.Repository,
	conditions asset.ConditionRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ConditionUseCase {
	return &ConditionUseCase{
		assets:     assets,
		conditions: conditions,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Add appends a condition note and copies it onto the asset's notes in the
// same transaction.
func (uc *ConditionUseCase) Add(ctx context.Context, assetID uint, notes string) (*dto.ConditionDTO, error) {
	uc.logger.Infow("executing add condition use case", "asset_id", assetID)

	condition, err := asset.NewCondition(assetID, utils.SanitizeText(notes))
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "notes")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assets.GetByID(txCtx, assetID)
		if err != nil {
			return err
		}
		if a == nil {
			return errors.NewNotFoundError("asset not found")
		}
		if err := uc.conditions.Create(txCtx, condition); err != nil {
			return err
		}
		a.SetNotes(condition.Notes())
		return uc.assets.Update(txCtx, a)
	})
	if err != nil {
		uc.logger.Errorw("failed to add asset condition", "asset_id", assetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("asset condition added", "asset_id", assetID, "condition_id", condition.ID())
	return dto.ToConditionDTO(condition), nil
}

func (uc *ConditionUseCase) List(ctx context.Context, assetID uint) ([]*dto.ConditionDTO, error) {
	a, err := uc.assets.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("asset not found")
	}
	conditions, err := uc.conditions.ListByAsset(ctx, assetID)
	if err != nil {
		uc.logger.Errorw("failed to list asset conditions", "asset_id", assetID, "error", err)
		return nil, err
	}
	out := make([]*dto.ConditionDTO, 0, len(conditions))
	for _, c := range conditions {
		out = append(out, dto.ToConditionDTO(c))
	}
	return out, nil
}
