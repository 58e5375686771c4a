package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"art/internal/domain/organization"
	apperrors "art/internal/shared/errors"
)

func TestOrganizationRepositories_CentreFloorWorkspace(t *testing.T) {
	db := setupTestDB(t)
	centres := NewCentreRepository(db, testLogger())
	floors := NewFloorRepository(db, testLogger())
	workspaces := NewWorkspaceRepository(db, testLogger())
	ctx := context.Background()

	centre, err := organization.NewCentre("Nairobi", "Kenya")
	require.NoError(t, err)
	require.NoError(t, centres.Create(ctx, centre))

	floor, err := organization.NewFloor(3, centre.ID())
	require.NoError(t, err)
	require.NoError(t, floors.Create(ctx, floor))

	t.Run("floor numbers are unique per centre", func(t *testing.T) {
		dup, err := organization.NewFloor(3, centre.ID())
		require.NoError(t, err)
		assert.True(t, apperrors.IsConflictError(floors.Create(ctx, dup)))

		found, err := floors.GetByNumber(ctx, centre.ID(), 3)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, floor.ID(), found.ID())
	})

	t.Run("workspaces are counted as floor dependents", func(t *testing.T) {
		ws, err := organization.NewWorkspace("Hot desk 1", floor.ID())
		require.NoError(t, err)
		require.NoError(t, workspaces.Create(ctx, ws))

		count, err := floors.CountWorkspaces(ctx, floor.ID())
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		count, err = centres.CountDependents(ctx, centre.ID())
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		found, err := workspaces.GetByName(ctx, floor.ID(), "Hot desk 1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, ws.ID(), found.ID())
	})

	t.Run("list floors by centre", func(t *testing.T) {
		other, err := organization.NewCentre("Lagos", "Nigeria")
		require.NoError(t, err)
		require.NoError(t, centres.Create(ctx, other))
		otherFloor, err := organization.NewFloor(1, other.ID())
		require.NoError(t, err)
		require.NoError(t, floors.Create(ctx, otherFloor))

		parent := centre.ID()
		list, total, err := floors.List(ctx, organization.ListFilter{ParentID: &parent, Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, 3, list[0].Number())
	})
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db, testLogger())
	departments := NewDepartmentRepository(db, testLogger())
	ctx := context.Background()

	dept, err := organization.NewDepartment("Finance")
	require.NoError(t, err)
	require.NoError(t, departments.Create(ctx, dept))

	deptID := dept.ID()
	u, err := organization.NewUser("Jane.Doe@Example.com", "Jane Doe", organization.RoleUser, nil, &deptID)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, u))

	other, err := organization.NewUser("ops@example.com", "", organization.RoleAdmin, nil, nil)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, other))

	found, err := users.GetByEmail(ctx, "jane.doe@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID(), found.ID())

	list, total, err := users.List(ctx, organization.ListFilter{ParentID: &deptID, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Jane Doe", list[0].Name())

	list, total, err = users.List(ctx, organization.ListFilter{Search: "ops", Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.True(t, list[0].IsAdmin())

	dup, err := organization.NewUser("JANE.DOE@example.com", "", organization.RoleUser, nil, nil)
	require.NoError(t, err)
	assert.True(t, apperrors.IsConflictError(users.Create(ctx, dup)))
}
