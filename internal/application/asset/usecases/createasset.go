package usecases

import (
	"context"
	"time"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/catalog"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

type CreateAssetCommand struct {
	AssetCode     string
	SerialNumber  string
	ModelNumberID uint
	Notes         string
	SpecsID       *uint
	PurchaseDate  *time.Time
	Verified      bool
}

type CreateAssetUseCase struct {
	ledgers assetLedgers
	catalog catalog.Repository
	specs   asset.SpecsRepository
	txMgr   *db.TransactionManager
	logger  logger.Interface
}

func NewCreateAssetUseCase(
	assets asset.Repository,
	statuses asset.StatusLedger,
	allocations asset.AllocationLedger,
	catalogRepo catalog.Repository,
	specs asset.SpecsRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		ledgers: assetLedgers{assets: assets, statuses: statuses, allocations: allocations},
		catalog: catalogRepo,
		specs:   specs,
		txMgr:   txMgr,
		logger:  logger,
	}
}

// Execute stores a new asset and seeds its status ledger with Available.
func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error) {
	uc.logger.Infow("executing create asset use case",
		"asset_code", cmd.AssetCode,
		"serial_number", cmd.SerialNumber,
		"model_number_id", cmd.ModelNumberID,
	)

	a, err := asset.NewAsset(cmd.AssetCode, cmd.SerialNumber, cmd.ModelNumberID)
	if err != nil {
		return nil, assetValidationError(err)
	}
	a.UpdateDetails(utils.SanitizeText(cmd.Notes), cmd.Verified, cmd.PurchaseDate, cmd.SpecsID)

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := checkModelNumber(txCtx, uc.catalog, a.ModelNumberID()); err != nil {
			return err
		}
		if err := checkSpecs(txCtx, uc.specs, a.SpecsID()); err != nil {
			return err
		}
		if err := checkIdentityAvailable(txCtx, uc.ledgers.assets, a, 0); err != nil {
			return err
		}
		if err := uc.ledgers.assets.Create(txCtx, a); err != nil {
			return err
		}

		latest, err := uc.ledgers.statuses.Latest(txCtx, a.ID())
		if err != nil {
			return err
		}
		if latest != nil {
			return nil
		}
		initial, err := asset.NewStatusRecord(a.ID(), vo.StatusAvailable, nil)
		if err != nil {
			return err
		}
		return uc.ledgers.statuses.Append(txCtx, initial)
	})
	if err != nil {
		uc.logger.Errorw("failed to create asset", "asset_code", cmd.AssetCode, "serial_number", cmd.SerialNumber, "error", err)
		return nil, err
	}

	uc.logger.Infow("asset created", "asset_id", a.ID(), "uuid", a.UUID())
	return dto.ToAssetDTO(a), nil
}

func assetValidationError(err error) error {
	switch err {
	case asset.ErrIdentityRequired:
		return errors.NewValidationError(err.Error(), "asset_code", "serial_number")
	case asset.ErrModelNumberRequired:
		return errors.NewValidationError(err.Error(), "model_number_id")
	}
	return errors.NewValidationError(err.Error())
}

func checkModelNumber(ctx context.Context, repo catalog.Repository, id uint) error {
	item, err := repo.GetByID(ctx, catalog.LevelModelNumber, id)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.NewValidationError("asset model number does not exist", "model_number_id")
	}
	return nil
}

func checkSpecs(ctx context.Context, repo asset.SpecsRepository, id *uint) error {
	if id == nil {
		return nil
	}
	specs, err := repo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if specs == nil {
		return errors.NewValidationError("asset specs do not exist", "specs_id")
	}
	return nil
}

// checkIdentityAvailable rejects an asset code or serial number already used
// by another asset.
func checkIdentityAvailable(ctx context.Context, repo asset.Repository, a *asset.Asset, selfID uint) error {
	if code := a.AssetCode(); code != nil {
		exists, err := repo.ExistsByAssetCode(ctx, *code, selfID)
		if err != nil {
			return err
		}
		if exists {
			return errors.NewConflictError("asset with this asset code already exists", "asset_code")
		}
	}
	if serial := a.SerialNumber(); serial != nil {
		exists, err := repo.ExistsBySerialNumber(ctx, *serial, selfID)
		if err != nil {
			return err
		}
		if exists {
			return errors.NewConflictError("asset with this serial number already exists", "serial_number")
		}
	}
	return nil
}
