package usecases

import (
	"context"

	"art/internal/domain/asset"
	"art/internal/shared/db"
	"art/internal/shared/logger"
)

type DeleteAssetUseCase struct {
	assets asset.Repository
	txMgr  *db.TransactionManager
	logger logger.Interface
}

func NewDeleteAssetUseCase(assets asset.Repository, txMgr *db.TransactionManager, logger logger.Interface) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{assets: assets, txMgr: txMgr, logger: logger}
}

// Execute removes the asset along with its ledgers and satellite rows.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, id uint) error {
	uc.logger.Infow("executing delete asset use case", "asset_id", id)

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.assets.Delete(txCtx, id)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete asset", "asset_id", id, "error", err)
		return err
	}

	uc.logger.Infow("asset deleted", "asset_id", id)
	return nil
}
