package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	assigneeapp "art/internal/application/assignee"
	catalogapp "art/internal/application/catalog"
	orgapp "art/internal/application/organization"
	"art/internal/domain/catalog"
	"art/internal/domain/organization"
	"art/internal/infrastructure/persistence/models"
	"art/internal/infrastructure/repository"
	"art/internal/shared/db"
	"art/internal/shared/logger"
)

const sampleSeed = `
catalog:
  - {category: Electronics, sub_category: Computers, type: Laptop, make: Lenovo, model_number: T480}
  - {category: electronics, sub_category: computers, type: laptop, make: dell, model_number: Latitude 5400}
departments: [Finance, IT]
centres:
  - name: Nairobi HQ
    country: Kenya
    floors:
      - number: 1
        workspaces: [Desk A, Desk B]
      - number: 2
users:
  - {email: Jane@Example.com, name: Jane, role: admin, centre: nairobi hq, department: finance}
  - {email: joe@example.com, name: Joe}
policies:
  - [user, asset, export]
`

type fakePolicies struct {
	calls [][][]string
}

func (f *fakePolicies) SeedPolicies(extra [][]string) error {
	f.calls = append(f.calls, extra)
	return nil
}

type harness struct {
	seeder   *Seeder
	catalog  catalog.Repository
	org      *orgapp.ServiceDDD
	policies *fakePolicies
}

func newHarness(t *testing.T) *harness {
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
	repos := orgapp.Repositories{
		Centres:     repository.NewCentreRepository(gdb, log),
		Floors:      repository.NewFloorRepository(gdb, log),
		Workspaces:  repository.NewWorkspaceRepository(gdb, log),
		Departments: repository.NewDepartmentRepository(gdb, log),
		Users:       repository.NewUserRepository(gdb, log),
	}
	assignees := assigneeapp.NewService(
		repository.NewAssigneeRepository(gdb, log), repos.Users, repos.Departments, repos.Workspaces, log,
	)
	org := orgapp.NewServiceDDD(repos, assignees, repository.NewAssetRepository(gdb, log), db.NewTransactionManager(gdb), log)
	catalogRepo := repository.NewCatalogRepository(gdb, log)
	policies := &fakePolicies{}

	return &harness{
		seeder: &Seeder{
			Catalog:     catalogapp.NewServiceDDD(catalogRepo, log),
			Centres:     org.Centres,
			Floors:      org.Floors,
			Workspaces:  org.Workspaces,
			Departments: org.Departments,
			Users:       org.Users,
			Policies:    policies,
			Logger:      log,
		},
		catalog:  catalogRepo,
		org:      org,
		policies: policies,
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("catalogue: []\n"))
	assert.Error(t, err)
}

func TestDecode_EmptyFile(t *testing.T) {
	file, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, file.Catalog)
}

func TestApply_SeedsEverything(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	file, err := Decode(strings.NewReader(sampleSeed))
	require.NoError(t, err)

	summary, err := h.seeder.Apply(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, &Summary{
		ModelNumbers: 2,
		Departments:  2,
		Centres:      1,
		Floors:       2,
		Workspaces:   2,
		Users:        2,
		Policies:     1,
	}, summary)

	categories, _, err := h.catalog.List(ctx, catalog.Filter{Level: catalog.LevelCategory})
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Electronics", categories[0].Name())

	jane, err := h.org.Users.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", jane.Role)
	require.NotNil(t, jane.CentreID)
	require.NotNil(t, jane.DepartmentID)

	require.Len(t, h.policies.calls, 1)
	assert.Equal(t, [][]string{{"user", "asset", "export"}}, h.policies.calls[0])
}

func TestApply_IsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	file, err := Decode(strings.NewReader(sampleSeed))
	require.NoError(t, err)

	_, err = h.seeder.Apply(ctx, file)
	require.NoError(t, err)
	summary, err := h.seeder.Apply(ctx, file)
	require.NoError(t, err)

	assert.Zero(t, summary.Departments)
	assert.Zero(t, summary.Centres)
	assert.Zero(t, summary.Floors)
	assert.Zero(t, summary.Workspaces)
	assert.Zero(t, summary.Users)

	floors, err := h.org.Floors.List(ctx, organization.ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, floors.Total)
}

func TestApply_UnknownDepartmentReference(t *testing.T) {
	h := newHarness(t)

	file := &File{Users: []UserEntry{{Email: "a@example.com", Department: "Legal"}}}
	_, err := h.seeder.Apply(context.Background(), file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `department "Legal" is not in the seed file`)
}
