package usecases

import (
	"context"

	"art/internal/application/asset/dto"
	"art/internal/domain/asset"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

type ListSpecsResult struct {
	Items []*dto.SpecsDTO `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Size  int             `json:"page_size"`
}

type SpecsUseCase struct {
	specs  asset.SpecsRepository
	assets asset.Repository
	logger logger.Interface
}

func NewSpecsUseCase(specs asset.SpecsRepository, assets asset.Repository, logger logger.Interface) *SpecsUseCase {
	return &SpecsUseCase{specs: specs, assets: assets, logger: logger}
}

// Create rejects a tuple that matches an existing specs row on every field.
func (uc *SpecsUseCase) Create(ctx context.Context, tuple asset.SpecsTuple) (*dto.SpecsDTO, error) {
	uc.logger.Infow("executing create specs use case", "processor_type", tuple.ProcessorType, "memory", tuple.Memory)

	specs, err := asset.NewSpecs(tuple)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.specs.GetByTuple(ctx, specs.Tuple())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewValidationError("Similar asset specification already exist")
	}

	if err := uc.specs.Create(ctx, specs); err != nil {
		if errors.IsConflictError(err) {
			return nil, errors.NewValidationError("Similar asset specification already exist")
		}
		uc.logger.Errorw("failed to create asset specs", "error", err)
		return nil, err
	}

	uc.logger.Infow("asset specs created", "specs_id", specs.ID())
	return dto.ToSpecsDTO(specs), nil
}

func (uc *SpecsUseCase) Get(ctx context.Context, id uint) (*dto.SpecsDTO, error) {
	specs, err := uc.specs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if specs == nil {
		return nil, errors.NewNotFoundError("asset specs not found")
	}
	return dto.ToSpecsDTO(specs), nil
}

func (uc *SpecsUseCase) List(ctx context.Context, page, pageSize int) (*ListSpecsResult, error) {
	p := utils.ValidatePagination(page, pageSize)
	items, total, err := uc.specs.List(ctx, p.Page, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list asset specs", "error", err)
		return nil, err
	}
	out := make([]*dto.SpecsDTO, 0, len(items))
	for _, s := range items {
		out = append(out, dto.ToSpecsDTO(s))
	}
	return &ListSpecsResult{Items: out, Total: total, Page: p.Page, Size: p.PageSize}, nil
}

// Delete refuses while any asset still references the specs.
func (uc *SpecsUseCase) Delete(ctx context.Context, id uint) error {
	uc.logger.Infow("executing delete specs use case", "specs_id", id)

	n, err := uc.assets.CountBySpecs(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errors.NewProtectedDeletionError("asset specs are referenced by assets", "specs_id")
	}
	if err := uc.specs.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete asset specs", "specs_id", id, "error", err)
		return err
	}

	uc.logger.Infow("asset specs deleted", "specs_id", id)
	return nil
}
