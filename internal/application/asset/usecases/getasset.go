package usecases

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type GetAssetUseCase struct {
	assets    asset.Repository
	assignees AssigneeResolver
	logger    logger.Interface
}

func NewGetAssetUseCase(assets asset.Repository, assignees AssigneeResolver, logger logger.Interface) *GetAssetUseCase {
	return &GetAssetUseCase{assets: assets, assignees: assignees, logger: logger}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, id uint) (*dto.AssetDTO, error) {
	a, err := uc.assets.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get asset", "asset_id", id, "error", err)
		return nil, err
	}
	return uc.present(ctx, a)
}

func (uc *GetAssetUseCase) ExecuteByUUID(ctx context.Context, uuid string) (*dto.AssetDTO, error) {
	a, err := uc.assets.GetByUUID(ctx, uuid)
	if err != nil {
		uc.logger.Errorw("failed to get asset", "uuid", uuid, "error", err)
		return nil, err
	}
	return uc.present(ctx, a)
}

// present adds the owner's display name. A broken assignee row is logged and
// left out rather than failing the read.
func (uc *GetAssetUseCase) present(ctx context.Context, a *asset.Asset) (*dto.AssetDTO, error) {
	if a == nil {
		return nil, errors.NewNotFoundError("asset not found")
	}
	out := dto.ToAssetDTO(a)
	if owner := a.AssignedToID(); owner != nil {
		resolved, err := uc.assignees.Resolve(ctx, *owner)
		if err != nil {
			uc.logger.Warnw("failed to resolve asset owner", "asset_id", a.ID(), "assignee_id", *owner, "error", err)
			return out, nil
		}
		out.AssignedTo = resolved.Name
	}
	return out, nil
}
