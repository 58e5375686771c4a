package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"art/internal/domain/asset"
	vo "art/internal/domain/asset/valueobjects"
	"art/internal/domain/assignee"
	apperrors "art/internal/shared/errors"
)

func createAsset(t *testing.T, repo asset.Repository, code, serial string) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(code, serial, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestAssetRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db, testLogger())
	ctx := context.Background()

	t.Run("stores asset and reads it back by id and uuid", func(t *testing.T) {
		a := createAsset(t, repo, "IC001", "SN001")
		assert.NotZero(t, a.ID())

		byID, err := repo.GetByID(ctx, a.ID())
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "IC001", *byID.AssetCode())
		assert.Equal(t, vo.StatusAvailable, byID.CurrentStatus())
		assert.Equal(t, 1, byID.Version())

		byUUID, err := repo.GetByUUID(ctx, a.UUID())
		require.NoError(t, err)
		require.NotNil(t, byUUID)
		assert.Equal(t, a.ID(), byUUID.ID())
	})

	t.Run("duplicate serial number is a conflict", func(t *testing.T) {
		a, err := asset.NewAsset("IC002", "SN001", 1)
		require.NoError(t, err)

		err = repo.Create(ctx, a)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("several assets may omit the asset code", func(t *testing.T) {
		createAsset(t, repo, "", "SN100")
		createAsset(t, repo, "", "SN101")
	})

	t.Run("exists checks honour the excluded id", func(t *testing.T) {
		a := createAsset(t, repo, "IC200", "")

		exists, err := repo.ExistsByAssetCode(ctx, "IC200", 0)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByAssetCode(ctx, "IC200", a.ID())
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsBySerialNumber(ctx, "SN404", 0)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestAssetRepository_UpdateIsVersionChecked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db, testLogger())
	ctx := context.Background()

	a := createAsset(t, repo, "IC001", "SN001")

	first, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)

	_, err = first.ApplyStatus(vo.StatusDamaged)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, 2, first.Version())

	second.SetNotes("stale write")
	err = repo.Update(ctx, second)
	assert.True(t, apperrors.IsConflictError(err))

	stored, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusDamaged, stored.CurrentStatus())
	assert.Empty(t, stored.Notes())
	assert.Equal(t, 2, stored.Version())

	t.Run("several saves of one loaded asset succeed", func(t *testing.T) {
		first.SetNotes("first")
		require.NoError(t, repo.Update(ctx, first))
		first.SetNotes("second")
		require.NoError(t, repo.Update(ctx, first))
		assert.Equal(t, 4, first.Version())
	})
}

func TestAssetRepository_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db, testLogger())
	ctx := context.Background()

	createAsset(t, repo, "IC001", "SN001")
	createAsset(t, repo, "IC002", "SN002")
	damaged := createAsset(t, repo, "LAP-9", "")
	_, err := damaged.ApplyStatus(vo.StatusDamaged)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, damaged))

	status := vo.StatusAvailable
	items, total, err := repo.List(ctx, asset.Filter{Status: &status, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)

	items, total, err = repo.List(ctx, asset.Filter{Search: "lap", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, damaged.ID(), items[0].ID())

	items, _, err = repo.List(ctx, asset.Filter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	count, err := repo.CountByStatusAndModelNumber(ctx, vo.StatusAvailable, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestLedgers_LatestAndHistoryOrdering(t *testing.T) {
	db := setupTestDB(t)
	assets := NewAssetRepository(db, testLogger())
	statuses := NewStatusLedger(db, testLogger())
	allocations := NewAllocationLedger(db, testLogger())
	ctx := context.Background()

	a := createAsset(t, assets, "IC001", "SN001")

	latest, err := statuses.Latest(ctx, a.ID())
	require.NoError(t, err)
	assert.Nil(t, latest)

	for _, s := range []vo.AssetStatus{vo.StatusAvailable, vo.StatusAllocated, vo.StatusDamaged} {
		record, err := asset.NewStatusRecord(a.ID(), s, latest)
		require.NoError(t, err)
		require.NoError(t, statuses.Append(ctx, record))
		latest = record
	}

	got, err := statuses.Latest(ctx, a.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, vo.StatusDamaged, got.CurrentStatus())
	require.NotNil(t, got.PreviousStatus())
	assert.Equal(t, vo.StatusAllocated, *got.PreviousStatus())

	history, err := statuses.History(ctx, a.ID())
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, vo.StatusAvailable, history[0].CurrentStatus())
	assert.Nil(t, history[0].PreviousStatus())

	owner := uint(5)
	first, err := asset.NewAllocationRecord(a.ID(), &owner, nil)
	require.NoError(t, err)
	require.NoError(t, allocations.Append(ctx, first))
	release, err := asset.NewAllocationRecord(a.ID(), nil, first)
	require.NoError(t, err)
	require.NoError(t, allocations.Append(ctx, release))

	lastAlloc, err := allocations.Latest(ctx, a.ID())
	require.NoError(t, err)
	require.NotNil(t, lastAlloc)
	assert.True(t, lastAlloc.IsDeallocation())
	require.NotNil(t, lastAlloc.PreviousOwnerID())
	assert.Equal(t, owner, *lastAlloc.PreviousOwnerID())
}

func TestAssigneeRepository_GetByRef(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssigneeRepository(db, testLogger())
	ctx := context.Background()

	userAssignee, err := assignee.NewAssignee(assignee.UserRef(7))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, userAssignee))

	deptAssignee, err := assignee.NewAssignee(assignee.DepartmentRef(7))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, deptAssignee))

	found, err := repo.GetByRef(ctx, assignee.DepartmentRef(7))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, deptAssignee.ID(), found.ID())
	assert.Equal(t, assignee.KindDepartment, found.Ref().Kind())

	dup, err := assignee.NewAssignee(assignee.UserRef(7))
	require.NoError(t, err)
	assert.True(t, apperrors.IsConflictError(repo.Create(ctx, dup)))

	require.NoError(t, repo.DeleteByRef(ctx, assignee.UserRef(7)))
	found, err = repo.GetByRef(ctx, assignee.UserRef(7))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSpecsRepository_TupleLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpecsRepository(db, testLogger())
	ctx := context.Background()

	tuple := asset.SpecsTuple{YearOfManufacture: 2019, ProcessorSpeed: "2.4GHz", Memory: "16GB"}
	specs, err := asset.NewSpecs(tuple)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, specs))

	found, err := repo.GetByTuple(ctx, asset.SpecsTuple{YearOfManufacture: 2019, ProcessorSpeed: " 2.4GHz ", Memory: "16GB"})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, specs.ID(), found.ID())

	again, err := asset.NewSpecs(tuple)
	require.NoError(t, err)
	assert.True(t, apperrors.IsConflictError(repo.Create(ctx, again)))

	missing, err := repo.GetByTuple(ctx, asset.SpecsTuple{YearOfManufacture: 2020})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestConditionAndIncidentRepositories(t *testing.T) {
	db := setupTestDB(t)
	conditions := NewConditionRepository(db, testLogger())
	incidents := NewIncidentRepository(db, testLogger())
	ctx := context.Background()

	for _, notes := range []string{"scratched lid", "cracked screen"} {
		c, err := asset.NewCondition(3, notes)
		require.NoError(t, err)
		require.NoError(t, conditions.Create(ctx, c))
		time.Sleep(time.Millisecond)
	}
	list, err := conditions.ListByAsset(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "cracked screen", list[0].Notes())

	report, err := asset.NewIncidentReport(3, vo.IncidentLoss, asset.IncidentDetails{
		Location:    "Nairobi office",
		Description: "left in a taxi",
	}, nil)
	require.NoError(t, err)
	require.NoError(t, incidents.Create(ctx, report))

	reports, err := incidents.ListByAsset(ctx, 3)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, vo.IncidentLoss, reports[0].IncidentType())
	assert.Equal(t, "left in a taxi", reports[0].Details().Description)
}
