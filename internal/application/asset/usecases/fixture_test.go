package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	assigneeapp "art/internal/application/assignee"
	"art/internal/domain/asset"
	"art/internal/domain/assignee"
	"art/internal/domain/catalog"
	"art/internal/domain/organization"
	"art/internal/domain/shared/events"
	"art/internal/infrastructure/persistence/models"
	"art/internal/infrastructure/repository"
	"art/internal/shared/db"
	"art/internal/shared/logger"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(event events.DomainEvent) error {
	return p.PublishAll([]events.DomainEvent{event})
}

func (p *recordingPublisher) PublishAll(list []events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, list...)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.GetEventType())
	}
	return out
}

// fixture wires the asset use cases to an in-memory sqlite database holding a
// catalog chain and two department owners.
type fixture struct {
	db          *gorm.DB
	assets      asset.Repository
	statuses    asset.StatusLedger
	allocations asset.AllocationLedger
	conditions  asset.ConditionRepository
	incidents   asset.IncidentRepository
	specs       asset.SpecsRepository
	catalog     catalog.Repository
	assignees   *assigneeapp.Service
	publisher   *recordingPublisher
	txMgr       *db.TransactionManager
	log         logger.Interface

	modelNumberID uint
	financeID     uint
	facilitiesID  uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewDiscardLogger()
	f := &fixture{
		db:          gdb,
		assets:      repository.NewAssetRepository(gdb, log),
		statuses:    repository.NewStatusLedger(gdb, log),
		allocations: repository.NewAllocationLedger(gdb, log),
		conditions:  repository.NewConditionRepository(gdb, log),
		incidents:   repository.NewIncidentRepository(gdb, log),
		specs:       repository.NewSpecsRepository(gdb, log),
		catalog:     repository.NewCatalogRepository(gdb, log),
		publisher:   &recordingPublisher{},
		txMgr:       db.NewTransactionManager(gdb),
		log:         log,
	}
	departments := repository.NewDepartmentRepository(gdb, log)
	f.assignees = assigneeapp.NewService(
		repository.NewAssigneeRepository(gdb, log),
		repository.NewUserRepository(gdb, log),
		departments,
		repository.NewWorkspaceRepository(gdb, log),
		log,
	)

	ctx := context.Background()
	var parentID *uint
	for _, step := range []struct {
		level catalog.Level
		name  string
	}{
		{catalog.LevelCategory, "Electronics"},
		{catalog.LevelSubCategory, "Computers"},
		{catalog.LevelType, "Laptop"},
		{catalog.LevelMake, "Lenovo"},
		{catalog.LevelModelNumber, "T480"},
	} {
		item, err := catalog.NewItem(step.level, step.name, parentID)
		require.NoError(t, err)
		require.NoError(t, f.catalog.Create(ctx, item))
		id := item.ID()
		parentID = &id
	}
	f.modelNumberID = *parentID

	f.financeID = f.department(t, departments, "Finance")
	f.facilitiesID = f.department(t, departments, "Facilities")
	return f
}

func (f *fixture) department(t *testing.T, repo organization.DepartmentRepository, name string) uint {
	t.Helper()
	ctx := context.Background()
	d, err := organization.NewDepartment(name)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, d))
	a, err := f.assignees.Ensure(ctx, assignee.DepartmentRef(d.ID()))
	require.NoError(t, err)
	return a.ID()
}

func (f *fixture) createAsset() *CreateAssetUseCase {
	return NewCreateAssetUseCase(f.assets, f.statuses, f.allocations, f.catalog, f.specs, f.txMgr, f.log)
}

func (f *fixture) recordStatus() *RecordStatusUseCase {
	return NewRecordStatusUseCase(f.assets, f.statuses, f.allocations, f.publisher, f.txMgr, f.log)
}

func (f *fixture) recordAllocation() *RecordAllocationUseCase {
	return NewRecordAllocationUseCase(f.assets, f.statuses, f.allocations, f.assignees, f.publisher, f.txMgr, f.log)
}

func (f *fixture) history() *AssetHistoryUseCase {
	return NewAssetHistoryUseCase(f.assets, f.statuses, f.allocations, f.log)
}

func (f *fixture) newAsset(t *testing.T, code, serial string) uint {
	t.Helper()
	out, err := f.createAsset().Execute(context.Background(), CreateAssetCommand{
		AssetCode:     code,
		SerialNumber:  serial,
		ModelNumberID: f.modelNumberID,
	})
	require.NoError(t, err)
	return out.ID
}

func uptr(v uint) *uint { return &v }
