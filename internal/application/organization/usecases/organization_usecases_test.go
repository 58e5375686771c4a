package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	assigneeapp "art/internal/application/assignee"
	"art/internal/application/organization/dto"
	"art/internal/domain/assignee"
	"art/internal/infrastructure/persistence/models"
	"art/internal/infrastructure/repository"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
)

// stubCounter reports a fixed number of allocated assets per assignee.
type stubCounter map[uint]int64

func (s stubCounter) CountByAssignee(_ context.Context, assigneeID uint) (int64, error) {
	return s[assigneeID], nil
}

type orgFixture struct {
	assigneeRepo assignee.Repository
	assignees    *assigneeapp.Service
	centres      *CentreUseCase
	floors       *FloorUseCase
	workspaces   *WorkspaceUseCase
	departments  *DepartmentUseCase
	users        *UserUseCase
	counter      stubCounter
}

func newOrgFixture(t *testing.T) *orgFixture {
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
	centres := repository.NewCentreRepository(gdb, log)
	floors := repository.NewFloorRepository(gdb, log)
	workspaces := repository.NewWorkspaceRepository(gdb, log)
	departments := repository.NewDepartmentRepository(gdb, log)
	users := repository.NewUserRepository(gdb, log)
	assigneeRepo := repository.NewAssigneeRepository(gdb, log)
	txMgr := db.NewTransactionManager(gdb)

	f := &orgFixture{
		assigneeRepo: assigneeRepo,
		assignees:    assigneeapp.NewService(assigneeRepo, users, departments, workspaces, log),
		counter:      stubCounter{},
	}
	f.centres = NewCentreUseCase(centres, log)
	f.floors = NewFloorUseCase(floors, centres, log)
	f.workspaces = NewWorkspaceUseCase(workspaces, floors, f.assignees, f.counter, txMgr, log)
	f.departments = NewDepartmentUseCase(departments, users, f.assignees, f.counter, txMgr, log)
	f.users = NewUserUseCase(users, centres, departments, f.assignees, f.counter, txMgr, log)
	return f
}

func TestUserUseCase_CreateEnsuresAssignee(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	dept, err := f.departments.Create(ctx, dto.DepartmentRequest{Name: "finance"})
	require.NoError(t, err)
	require.NotNil(t, dept.AssigneeID)

	user, err := f.users.Create(ctx, dto.CreateUserRequest{
		Email:        "Jane.Doe@Example.com",
		Name:         "Jane",
		DepartmentID: &dept.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, user.AssigneeID)

	a, err := f.assigneeRepo.GetByRef(ctx, assignee.UserRef(user.ID))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, *user.AssigneeID, a.ID())

	resolved, err := f.assignees.Resolve(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, user.Email, resolved.Name)
	assert.Equal(t, assignee.KindUser, resolved.Kind)

	_, err = f.users.Create(ctx, dto.CreateUserRequest{Email: user.Email})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestUserUseCase_CreateRejectsUnknownDepartment(t *testing.T) {
	f := newOrgFixture(t)
	missing := uint(77)

	_, err := f.users.Create(context.Background(), dto.CreateUserRequest{Email: "a@example.com", DepartmentID: &missing})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUserUseCase_DeleteProtectedWhileHoldingAssets(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	user, err := f.users.Create(ctx, dto.CreateUserRequest{Email: "holder@example.com"})
	require.NoError(t, err)
	f.counter[*user.AssigneeID] = 2

	err = f.users.Delete(ctx, user.ID)
	require.Error(t, err)
	assert.True(t, errors.IsProtectedDeletionError(err))

	_, err = f.users.Get(ctx, user.ID)
	require.NoError(t, err)

	delete(f.counter, *user.AssigneeID)
	require.NoError(t, f.users.Delete(ctx, user.ID))

	a, err := f.assigneeRepo.GetByRef(ctx, assignee.UserRef(user.ID))
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestDepartmentUseCase_DeleteProtectedByMembers(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	dept, err := f.departments.Create(ctx, dto.DepartmentRequest{Name: "Facilities"})
	require.NoError(t, err)
	_, err = f.users.Create(ctx, dto.CreateUserRequest{Email: "member@example.com", DepartmentID: &dept.ID})
	require.NoError(t, err)

	err = f.departments.Delete(ctx, dept.ID)
	require.Error(t, err)
	assert.True(t, errors.IsProtectedDeletionError(err))
}

func TestWorkspaceUseCase_Lifecycle(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	centre, err := f.centres.Create(ctx, dto.CentreRequest{Name: "Nairobi", Country: "Kenya"})
	require.NoError(t, err)
	floor, err := f.floors.Create(ctx, dto.FloorRequest{Number: 3, CentreID: centre.ID})
	require.NoError(t, err)

	_, err = f.floors.Create(ctx, dto.FloorRequest{Number: 3, CentreID: centre.ID})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	ws, err := f.workspaces.Create(ctx, dto.WorkspaceRequest{Name: "Reception", FloorID: floor.ID})
	require.NoError(t, err)
	require.NotNil(t, ws.AssigneeID)

	err = f.floors.Delete(ctx, floor.ID)
	require.Error(t, err)
	assert.True(t, errors.IsProtectedDeletionError(err))

	require.NoError(t, f.workspaces.Delete(ctx, ws.ID))
	require.NoError(t, f.floors.Delete(ctx, floor.ID))
	require.NoError(t, f.centres.Delete(ctx, centre.ID))
}

func TestWorkspaceUseCase_CreateRequiresFloor(t *testing.T) {
	f := newOrgFixture(t)

	_, err := f.workspaces.Create(context.Background(), dto.WorkspaceRequest{Name: "Lab", FloorID: 5})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCentreUseCase_Validation(t *testing.T) {
	f := newOrgFixture(t)

	_, err := f.centres.Create(context.Background(), dto.CentreRequest{Name: " ", Country: "Kenya"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdate_RestoresMissingAssignee(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	centre, err := f.centres.Create(ctx, dto.CentreRequest{Name: "Nairobi", Country: "Kenya"})
	require.NoError(t, err)
	floor, err := f.floors.Create(ctx, dto.FloorRequest{Number: 1, CentreID: centre.ID})
	require.NoError(t, err)
	dept, err := f.departments.Create(ctx, dto.DepartmentRequest{Name: "finance"})
	require.NoError(t, err)
	ws, err := f.workspaces.Create(ctx, dto.WorkspaceRequest{Name: "Reception", FloorID: floor.ID})
	require.NoError(t, err)
	user, err := f.users.Create(ctx, dto.CreateUserRequest{Email: "legacy@example.com"})
	require.NoError(t, err)

	// Rows created before the assignee table existed have no assignee.
	require.NoError(t, f.assignees.Remove(ctx, assignee.UserRef(user.ID)))
	require.NoError(t, f.assignees.Remove(ctx, assignee.DepartmentRef(dept.ID)))
	require.NoError(t, f.assignees.Remove(ctx, assignee.WorkspaceRef(ws.ID)))

	gotUser, err := f.users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gotUser.AssigneeID)

	updatedUser, err := f.users.Update(ctx, user.ID, dto.UpdateUserRequest{Name: "Legacy"})
	require.NoError(t, err)
	require.NotNil(t, updatedUser.AssigneeID)
	a, err := f.assigneeRepo.GetByRef(ctx, assignee.UserRef(user.ID))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, a.ID(), *updatedUser.AssigneeID)

	updatedDept, err := f.departments.Update(ctx, dept.ID, dto.DepartmentRequest{Name: "Finance"})
	require.NoError(t, err)
	require.NotNil(t, updatedDept.AssigneeID)
	a, err = f.assigneeRepo.GetByRef(ctx, assignee.DepartmentRef(dept.ID))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, a.ID(), *updatedDept.AssigneeID)

	updatedWS, err := f.workspaces.Update(ctx, ws.ID, "Front desk")
	require.NoError(t, err)
	require.NotNil(t, updatedWS.AssigneeID)
	a, err = f.assigneeRepo.GetByRef(ctx, assignee.WorkspaceRef(ws.ID))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, a.ID(), *updatedWS.AssigneeID)

	// A second update keeps the same assignee.
	again, err := f.workspaces.Update(ctx, ws.ID, "Front desk")
	require.NoError(t, err)
	assert.Equal(t, *updatedWS.AssigneeID, *again.AssigneeID)
}

func TestUpdate_FailedValidationLeavesAssigneeMissing(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	dept, err := f.departments.Create(ctx, dto.DepartmentRequest{Name: "finance"})
	require.NoError(t, err)
	_, err = f.departments.Create(ctx, dto.DepartmentRequest{Name: "facilities"})
	require.NoError(t, err)
	require.NoError(t, f.assignees.Remove(ctx, assignee.DepartmentRef(dept.ID)))

	_, err = f.departments.Update(ctx, dept.ID, dto.DepartmentRequest{Name: "facilities"})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	a, err := f.assigneeRepo.GetByRef(ctx, assignee.DepartmentRef(dept.ID))
	require.NoError(t, err)
	assert.Nil(t, a)
}
