package usecases

import (
	"context"
	"time"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

// UpdateAssetCommand carries the editable fields. Nil leaves a field as is.
// A non-zero Version must match the stored version.
type UpdateAssetCommand struct {
	ID           uint
	AssetCode    *string
	SerialNumber *string
	Notes        *string
	SpecsID      *uint
	PurchaseDate *time.Time
	Verified     *bool
	Version      int
}

type UpdateAssetUseCase struct {
	assets asset.Repository
	specs  asset.SpecsRepository
	txMgr  *db.TransactionManager
	logger logger.Interface
}

func NewUpdateAssetUseCase(
	assets asset.Repository,
	specs asset.SpecsRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assets: assets,
		specs:  specs,
		txMgr:  txMgr,
		logger: logger,
	}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error) {
	uc.logger.Infow("executing update asset use case", "asset_id", cmd.ID)

	var updated *asset.Asset
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assets.GetByID(txCtx, cmd.ID)
		if err != nil {
			return err
		}
		if a == nil {
			return errors.NewNotFoundError("asset not found")
		}
		if cmd.Version != 0 && cmd.Version != a.Version() {
			return errors.NewConflictError("asset was modified concurrently, please retry", "version")
		}

		if cmd.AssetCode != nil || cmd.SerialNumber != nil {
			code := stringOr(cmd.AssetCode, a.AssetCode())
			serial := stringOr(cmd.SerialNumber, a.SerialNumber())
			if err := a.ChangeIdentity(code, serial); err != nil {
				return assetValidationError(err)
			}
			if err := checkIdentityAvailable(txCtx, uc.assets, a, a.ID()); err != nil {
				return err
			}
		}

		notes := a.Notes()
		if cmd.Notes != nil {
			notes = utils.SanitizeText(*cmd.Notes)
		}
		verified := a.Verified()
		if cmd.Verified != nil {
			verified = *cmd.Verified
		}
		purchaseDate := a.PurchaseDate()
		if cmd.PurchaseDate != nil {
			purchaseDate = cmd.PurchaseDate
		}
		specsID := a.SpecsID()
		if cmd.SpecsID != nil {
			if err := checkSpecs(txCtx, uc.specs, cmd.SpecsID); err != nil {
				return err
			}
			specsID = cmd.SpecsID
		}
		a.UpdateDetails(notes, verified, purchaseDate, specsID)

		if err := uc.assets.Update(txCtx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update asset", "asset_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("asset updated", "asset_id", updated.ID(), "version", updated.Version())
	return dto.ToAssetDTO(updated), nil
}

func stringOr(v *string, current *string) string {
	if v != nil {
		return *v
	}
	if current != nil {
		return *current
	}
	return ""
}
