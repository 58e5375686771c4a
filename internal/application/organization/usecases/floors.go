package usecases

import (
	"context"
	"fmt"

	"art/internal/application/organization/dto"
	"art/internal/domain/organization"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type FloorUseCase struct {
	floors  organization.FloorRepository
	centres organization.CentreRepository
	logger  logger.Interface
}

func NewFloorUseCase(floors organization.FloorRepository, centres organization.CentreRepository, logger logger.Interface) *FloorUseCase {
	return &FloorUseCase{floors: floors, centres: centres, logger: logger}
}

func (uc *FloorUseCase) Create(ctx context.Context, req dto.FloorRequest) (*dto.FloorDTO, error) {
	floor, err := organization.NewFloor(req.Number, req.CentreID)
	if err != nil {
		return nil, validationError(err, "number")
	}
	centre, err := uc.centres.GetByID(ctx, req.CentreID)
	if err != nil {
		return nil, err
	}
	if centre == nil {
		return nil, errors.NewValidationError("centre does not exist", "centre_id")
	}
	if err := uc.checkNumber(ctx, floor.CentreID(), floor.Number(), 0); err != nil {
		return nil, err
	}
	if err := uc.floors.Create(ctx, floor); err != nil {
		uc.logger.Errorw("failed to create office floor", "centre_id", req.CentreID, "number", req.Number, "error", err)
		return nil, err
	}
	uc.logger.Infow("office floor created", "floor_id", floor.ID(), "centre_id", floor.CentreID())
	return dto.ToFloorDTO(floor), nil
}

func (uc *FloorUseCase) Update(ctx context.Context, id uint, number int) (*dto.FloorDTO, error) {
	floor, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := floor.Renumber(number); err != nil {
		return nil, validationError(err, "number")
	}
	if err := uc.checkNumber(ctx, floor.CentreID(), floor.Number(), floor.ID()); err != nil {
		return nil, err
	}
	if err := uc.floors.Update(ctx, floor); err != nil {
		return nil, err
	}
	return dto.ToFloorDTO(floor), nil
}

func (uc *FloorUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	count, err := uc.floors.CountWorkspaces(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewProtectedDeletionError(fmt.Sprintf("cannot delete office floor: %d workspaces still reference it", count))
	}
	if err := uc.floors.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete office floor", "floor_id", id, "error", err)
		return err
	}
	uc.logger.Infow("office floor deleted", "floor_id", id)
	return nil
}

func (uc *FloorUseCase) Get(ctx context.Context, id uint) (*dto.FloorDTO, error) {
	floor, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToFloorDTO(floor), nil
}

func (uc *FloorUseCase) List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.FloorDTO], error) {
	p := normalizePage(filter.Page, filter.PageSize)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	floors, total, err := uc.floors.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[*dto.FloorDTO]{Items: dto.ToFloorDTOs(floors), Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}

func (uc *FloorUseCase) get(ctx context.Context, id uint) (*organization.Floor, error) {
	floor, err := uc.floors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if floor == nil {
		return nil, errors.NewNotFoundError("office floor not found")
	}
	return floor, nil
}

func (uc *FloorUseCase) checkNumber(ctx context.Context, centreID uint, number int, selfID uint) error {
	existing, err := uc.floors.GetByNumber(ctx, centreID, number)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID() != selfID {
		return errors.NewConflictError("floor number already exists in this centre", "number")
	}
	return nil
}
