package usecases

import (
	"context"

	"art/internal/application/organization/dto"
	"art/internal/domain/assignee"
	"art/internal/domain/organization"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

type UserUseCase struct {
	users       organization.UserRepository
	centres     organization.CentreRepository
	departments organization.DepartmentRepository
	assignees   AssigneeManager
	assets      AssetCounter
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func NewUserUseCase(
	users organization.UserRepository,
	centres organization.CentreRepository,
	departments organization.DepartmentRepository,
	assignees AssigneeManager,
	assets AssetCounter,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UserUseCase {
	return &UserUseCase{
		users:       users,
		centres:     centres,
		departments: departments,
		assignees:   assignees,
		assets:      assets,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *UserUseCase) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserDTO, error) {
	user, err := organization.NewUser(req.Email, req.Name, organization.Role(req.Role), req.CentreID, req.DepartmentID)
	if err != nil {
		return nil, validationError(err, "email")
	}

	var assigneeID uint
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.checkMembership(txCtx, user.CentreID(), user.DepartmentID()); err != nil {
			return err
		}
		existing, err := uc.users.GetByEmail(txCtx, user.Email())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewConflictError("user with this email already exists", "email")
		}
		if err := uc.users.Create(txCtx, user); err != nil {
			return err
		}
		a, err := uc.assignees.Ensure(txCtx, assignee.UserRef(user.ID()))
		if err != nil {
			return err
		}
		assigneeID = a.ID()
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create user", "email", user.Email(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", user.ID(), "assignee_id", assigneeID)
	out := dto.ToUserDTO(user)
	out.AssigneeID = &assigneeID
	return out, nil
}

// Update saves the profile and ensures the user's assignee row, which users
// created before the assignee table existed may lack.
func (uc *UserUseCase) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserDTO, error) {
	var (
		user       *organization.User
		assigneeID uint
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		user, err = uc.get(txCtx, id)
		if err != nil {
			return err
		}
		role := organization.Role(req.Role)
		if role == "" {
			role = user.Role()
		}
		if err := uc.checkMembership(txCtx, req.CentreID, req.DepartmentID); err != nil {
			return err
		}
		if err := user.UpdateProfile(req.Name, role, req.CentreID, req.DepartmentID); err != nil {
			return validationError(err, "role")
		}
		if err := uc.users.Update(txCtx, user); err != nil {
			return err
		}
		a, err := uc.assignees.Ensure(txCtx, assignee.UserRef(user.ID()))
		if err != nil {
			return err
		}
		assigneeID = a.ID()
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	out := dto.ToUserDTO(user)
	out.AssigneeID = &assigneeID
	return out, nil
}

// Delete is refused while assets are allocated to the user.
func (uc *UserUseCase) Delete(ctx context.Context, id uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.get(txCtx, id); err != nil {
			return err
		}
		if err := releaseAssignee(txCtx, uc.assignees, uc.assets, assignee.UserRef(id), "user"); err != nil {
			return err
		}
		return uc.users.Delete(txCtx, id)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete user", "user_id", id, "error", err)
		return err
	}
	uc.logger.Infow("user deleted", "user_id", id)
	return nil
}

func (uc *UserUseCase) Get(ctx context.Context, id uint) (*dto.UserDTO, error) {
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserDTO(user)
	if out.AssigneeID, err = assigneeIDOf(ctx, uc.assignees, assignee.UserRef(user.ID())); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserDTO, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return dto.ToUserDTO(user), nil
}

func (uc *UserUseCase) List(ctx context.Context, filter organization.ListFilter) (*dto.ListResult[*dto.UserDTO], error) {
	p := normalizePage(filter.Page, filter.PageSize)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	items, total, err := uc.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[*dto.UserDTO]{Items: dto.ToUserDTOs(items), Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}

func (uc *UserUseCase) get(ctx context.Context, id uint) (*organization.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return user, nil
}

func (uc *UserUseCase) checkMembership(ctx context.Context, centreID, departmentID *uint) error {
	if centreID != nil {
		centre, err := uc.centres.GetByID(ctx, *centreID)
		if err != nil {
			return err
		}
		if centre == nil {
			return errors.NewValidationError("centre does not exist", "centre_id")
		}
	}
	if departmentID != nil {
		dept, err := uc.departments.GetByID(ctx, *departmentID)
		if err != nil {
			return err
		}
		if dept == nil {
			return errors.NewValidationError("department does not exist", "department_id")
		}
	}
	return nil
}
