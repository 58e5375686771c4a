package http

import (
	"gorm.io/gorm"

	"art/internal/domain/asset"
	"art/internal/domain/assignee"
	"art/internal/domain/catalog"
	"art/internal/domain/organization"
	"art/internal/infrastructure/repository"
	"art/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	assetRepo      asset.Repository
	statusLedger   asset.StatusLedger
	allocLedger    asset.AllocationLedger
	conditionRepo  asset.ConditionRepository
	incidentRepo   asset.IncidentRepository
	specsRepo      asset.SpecsRepository
	catalogRepo    catalog.Repository
	assigneeRepo   assignee.Repository
	centreRepo     organization.CentreRepository
	floorRepo      organization.FloorRepository
	workspaceRepo  organization.WorkspaceRepository
	departmentRepo organization.DepartmentRepository
	userRepo       organization.UserRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		assetRepo:      repository.NewAssetRepository(db, log),
		statusLedger:   repository.NewStatusLedger(db, log),
		allocLedger:    repository.NewAllocationLedger(db, log),
		conditionRepo:  repository.NewConditionRepository(db, log),
		incidentRepo:   repository.NewIncidentRepository(db, log),
		specsRepo:      repository.NewSpecsRepository(db, log),
		catalogRepo:    repository.NewCatalogRepository(db, log),
		assigneeRepo:   repository.NewAssigneeRepository(db, log),
		centreRepo:     repository.NewCentreRepository(db, log),
		floorRepo:      repository.NewFloorRepository(db, log),
		workspaceRepo:  repository.NewWorkspaceRepository(db, log),
		departmentRepo: repository.NewDepartmentRepository(db, log),
		userRepo:       repository.NewUserRepository(db, log),
	}
}
