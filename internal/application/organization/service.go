package organization

import (
	"art/internal/application/organization/usecases"
	"art/internal/domain/organization"
	"art/internal/shared/db"
	"art/internal/shared/logger"
)

// Repositories groups the persistence ports of the organisation service.
type Repositories struct {
	Centres     organization.CentreRepository
	Floors      organization.FloorRepository
	Workspaces  organization.WorkspaceRepository
	Departments organization.DepartmentRepository
	Users       organization.UserRepository
}

// ServiceDDD exposes one use case per organisation entity.
type ServiceDDD struct {
	Centres     *usecases.CentreUseCase
	Floors      *usecases.FloorUseCase
	Workspaces  *usecases.WorkspaceUseCase
	Departments *usecases.DepartmentUseCase
	Users       *usecases.UserUseCase
}

func NewServiceDDD(
	repos Repositories,
	assignees usecases.AssigneeManager,
	assets usecases.AssetCounter,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		Centres:     usecases.NewCentreUseCase(repos.Centres, logger),
		Floors:      usecases.NewFloorUseCase(repos.Floors, repos.Centres, logger),
		Workspaces:  usecases.NewWorkspaceUseCase(repos.Workspaces, repos.Floors, assignees, assets, txMgr, logger),
		Departments: usecases.NewDepartmentUseCase(repos.Departments, repos.Users, assignees, assets, txMgr, logger),
		Users:       usecases.NewUserUseCase(repos.Users, repos.Centres, repos.Departments, assignees, assets, txMgr, logger),
	}
}
