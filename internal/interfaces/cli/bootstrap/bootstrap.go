// Package bootstrap loads configuration, the logger and the database for the
// CLI commands, and builds the application services they drive.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	assetApp "art/internal/application/asset"
	assigneeApp "art/internal/application/assignee"
	catalogApp "art/internal/application/catalog"
	organizationApp "art/internal/application/organization"
	"art/internal/infrastructure/config"
	"art/internal/infrastructure/database"
	"art/internal/infrastructure/repository"
	"art/internal/shared/db"
	"art/internal/shared/logger"
)

// Env is what every command needs after startup.
type Env struct {
	Name   string
	Config *config.Config
	Log    logger.Interface
}

// Load reads the config for environment name and initialises the process
// logger. configPath may be empty to search ./configs.
func Load(name, configPath string) (*Env, error) {
	cfg, err := config.LoadFile(configPath, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = MapEnvToGinMode(name)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Env{Name: name, Config: cfg, Log: logger.NewLogger()}, nil
}

// OpenDatabase initialises the process-wide database handle.
func (e *Env) OpenDatabase() (*gorm.DB, error) {
	if err := database.Init(&e.Config.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return database.Get(), nil
}

// Close releases the database handle opened by OpenDatabase.
func (e *Env) Close() {
	if err := database.Close(); err != nil {
		e.Log.Warnw("failed to close database", "error", err)
	}
}

// Services are the application services used outside the HTTP server. They
// publish no events, so bulk commands send no notifications.
type Services struct {
	TxManager    *db.TransactionManager
	Assets       *assetApp.ServiceDDD
	Catalog      *catalogApp.ServiceDDD
	Organization *organizationApp.ServiceDDD
}

// NewServices builds the services on gdb.
func NewServices(gdb *gorm.DB, log logger.Interface) *Services {
	assets := repository.NewAssetRepository(gdb, log)
	catalogRepo := repository.NewCatalogRepository(gdb, log)
	users := repository.NewUserRepository(gdb, log)
	departments := repository.NewDepartmentRepository(gdb, log)
	workspaces := repository.NewWorkspaceRepository(gdb, log)
	txMgr := db.NewTransactionManager(gdb)

	assignees := assigneeApp.NewService(repository.NewAssigneeRepository(gdb, log), users, departments, workspaces, log)

	return &Services{
		TxManager: txMgr,
		Assets: assetApp.NewServiceDDD(assetApp.Repositories{
			Assets:      assets,
			Statuses:    repository.NewStatusLedger(gdb, log),
			Allocations: repository.NewAllocationLedger(gdb, log),
			Conditions:  repository.NewConditionRepository(gdb, log),
			Incidents:   repository.NewIncidentRepository(gdb, log),
			Specs:       repository.NewSpecsRepository(gdb, log),
			Catalog:     catalogRepo,
		}, assignees, nil, txMgr, log),
		Catalog: catalogApp.NewServiceDDD(catalogRepo, log),
		Organization: organizationApp.NewServiceDDD(organizationApp.Repositories{
			Centres:     repository.NewCentreRepository(gdb, log),
			Floors:      repository.NewFloorRepository(gdb, log),
			Workspaces:  workspaces,
			Departments: departments,
			Users:       users,
		}, assignees, assets, txMgr, log),
	}
}

// MapEnvToGinMode maps an environment name onto a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
