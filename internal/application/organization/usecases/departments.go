package usecases

import (
	"context"
	"fmt"

	"art/internal/application/organization/dto"
	"art/internal/domain/assignee"
	"art/internal/domain/organization"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type DepartmentUseCase struct {
	departments organization.DepartmentRepository
	users       organization.UserRepository
	assignees   AssigneeManager
	assets      AssetCounter
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func NewDepartmentUseCase(
	departments organization.DepartmentRepository,
	users organization.UserRepository,
	assignees AssigneeManager,
	assets AssetCounter,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DepartmentUseCase {
	return &DepartmentUseCase{
		departments: departments,
		users:       users,
		assignees:   assignees,
		assets:      assets,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *DepartmentUseCase) Create(ctx context.Context, req dto.DepartmentRequest) (*dto.DepartmentDTO, error) {
	dept, err := organization.NewDepartment(req.Name)
	if err != nil {
		return nil, validationError(err, "name")
	}

	var assigneeID uint
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.checkName(txCtx, dept.Name(), 0); err != nil {
			return err
		}
		if err := uc.departments.Create(txCtx, dept); err != nil {
			return err
		}
		a, err := uc.assignees.Ensure(txCtx, assignee.DepartmentRef(dept.ID()))
		if err != nil {
			return err
		}
		assigneeID = a.ID()
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create department", "name", req.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("department created", "department_id", dept.ID(), "assignee_id", assigneeID)
	out := dto.ToDepartmentDTO(dept)
	out.AssigneeID = &assigneeID
	return out, nil
}

// Update renames the department and ensures its assignee row.
func (uc *DepartmentUseCase) Update(ctx context.Context, id uint, req dto.DepartmentRequest) (*dto.DepartmentDTO, error) {
	var (
		dept       *organization.Department
		assigneeID uint
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		dept, err = uc.get(txCtx, id)
		if err != nil {
			return err
		}
		if err := dept.Rename(req.Name); err != nil {
			return validationError(err, "name")
		}
		if err := uc.checkName(txCtx, dept.Name(), dept.ID()); err != nil {
			return err
		}
		if err := uc.departments.Update(txCtx, dept); err != nil {
			return err
		}
		a, err := uc.assignees.Ensure(txCtx, assignee.DepartmentRef(dept.ID()))
		if err != nil {
			return err
		}
		assigneeID = a.ID()
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to update department", "department_id", id, "error", err)
		return nil, err
	}

	out := dto.ToDepartmentDTO(dept)
	out.AssigneeID = &assigneeID
	return out, nil
}

// Delete is refused while users belong to the department or assets are
// allocated to it.
func (uc *DepartmentUseCase) Delete(ctx context.Context, id uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.get(txCtx, id); err != nil {
			return err
		}
		_, members, err := uc.users.List(txCtx, organization.ListFilter{ParentID: &id, Page: 1, PageSize: 1})
		if err != nil {
			return err
		}
		if members > 0 {
			return errors.NewProtectedDeletionError(fmt.Sprintf("cannot delete department: %d users belong to it", members))
		}
		if err := releaseAssignee(txCtx, uc.assignees, uc.assets, assignee.DepartmentRef(id), "department"); err != nil {
			return err
		}
		return uc.departments.Delete(txCtx, id)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete department", "department_id", id, "error", err)
		return err
	}
	uc.logger.Infow("department deleted", "department_id", id)
	return nil
}

func (uc *DepartmentUseCase) Get(ctx context.Context, id uint) (*dto.DepartmentDTO, error) {
	dept, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToDepartmentDTO(dept)
	if out.AssigneeID, err = assigneeIDOf(ctx, uc.assignees, assignee.DepartmentRef(dept.ID())); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *DepartmentUseCase) List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.DepartmentDTO], error) {
	p := normalizePage(filter.Page, filter.PageSize)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	items, total, err := uc.departments.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[*dto.DepartmentDTO]{Items: dto.ToDepartmentDTOs(items), Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}

func (uc *DepartmentUseCase) get(ctx context.Context, id uint) (*organization.Department, error) {
	dept, err := uc.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, errors.NewNotFoundError("department not found")
	}
	return dept, nil
}

func (uc *DepartmentUseCase) checkName(ctx context.Context, name string, selfID uint) error {
	existing, err := uc.departments.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID() != selfID {
		return errors.NewConflictError("department with this name already exists", "name")
	}
	return nil
}
