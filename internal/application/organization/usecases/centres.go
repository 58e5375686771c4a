package usecases

import (
	"context"
	"fmt"

	"art/internal/application/organization/dto"
	"art/internal/domain/organization"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type CentreUseCase struct {
	centres organization.CentreRepository
	logger  logger.Interface
}

func NewCentreUseCase(centres organization.CentreRepository, logger logger.Interface) *CentreUseCase {
	return &CentreUseCase{centres: centres, logger: logger}
}

func (uc *CentreUseCase) Create(ctx context.Context, req dto.CentreRequest) (*dto.CentreDTO, error) {
	centre, err := organization.NewCentre(req.Name, req.Country)
	if err != nil {
		return nil, validationError(err, "name")
	}
	if err := uc.checkName(ctx, centre.Name(), 0); err != nil {
		return nil, err
	}
	if err := uc.centres.Create(ctx, centre); err != nil {
		uc.logger.Errorw("failed to create centre", "name", centre.Name(), "error", err)
		return nil, err
	}
	uc.logger.Infow("centre created", "centre_id", centre.ID(), "name", centre.Name())
	return dto.ToCentreDTO(centre), nil
}

func (uc *CentreUseCase) Update(ctx context.Context, id uint, req dto.CentreRequest) (*dto.CentreDTO, error) {
	centre, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := centre.Update(req.Name, req.Country); err != nil {
		return nil, validationError(err, "name")
	}
	if err := uc.checkName(ctx, centre.Name(), centre.ID()); err != nil {
		return nil, err
	}
	if err := uc.centres.Update(ctx, centre); err != nil {
		uc.logger.Errorw("failed to update centre", "centre_id", id, "error", err)
		return nil, err
	}
	return dto.ToCentreDTO(centre), nil
}

func (uc *CentreUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	count, err := uc.centres.CountDependents(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewProtectedDeletionError(fmt.Sprintf("cannot delete centre: %d floors or users still reference it", count))
	}
	if err := uc.centres.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete centre", "centre_id", id, "error", err)
		return err
	}
	uc.logger.Infow("centre deleted", "centre_id", id)
	return nil
}

func (uc *CentreUseCase) Get(ctx context.Context, id uint) (*dto.CentreDTO, error) {
	centre, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCentreDTO(centre), nil
}

func (uc *CentreUseCase) List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.CentreDTO], error) {
	p := normalizePage(filter.Page, filter.PageSize)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	centres, total, err := uc.centres.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[*dto.CentreDTO]{Items: dto.ToCentreDTOs(centres), Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}

func (uc *CentreUseCase) get(ctx context.Context, id uint) (*organization.Centre, error) {
	centre, err := uc.centres.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if centre == nil {
		return nil, errors.NewNotFoundError("centre not found")
	}
	return centre, nil
}

func (uc *CentreUseCase) checkName(ctx context.Context, name string, selfID uint) error {
	existing, err := uc.centres.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID() != selfID {
		return errors.NewConflictError("centre with this name already exists", "name")
	}
	return nil
}
