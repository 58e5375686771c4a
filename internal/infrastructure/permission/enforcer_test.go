package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"art/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) (*Enforcer, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, "", logger.NewDiscardLogger())
	require.NoError(t, err)
	return e, db
}

func TestSeedPolicies_RoleMatrix(t *testing.T) {
	e, _ := newTestEnforcer(t)
	require.NoError(t, SeedPolicies(e, nil, logger.NewDiscardLogger()))

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{"user", ResourceAsset, ActionRead, true},
		{"user", ResourceAsset, ActionReport, true},
		{"user", ResourceAsset, ActionAllocate, false},
		{"user", ResourceCatalog, ActionDelete, false},
		{"admin", ResourceAsset, ActionAllocate, true},
		{"admin", ResourceAsset, ActionRead, true},
		{"admin", ResourceSpecs, ActionCreate, true},
		{"guest", ResourceAsset, ActionRead, false},
	}
	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestSeedPolicies_IsIdempotentAndPersisted(t *testing.T) {
	e, db := newTestEnforcer(t)
	log := logger.NewDiscardLogger()

	require.NoError(t, SeedPolicies(e, [][]string{{"user", ResourceAsset, ActionExport}}, log))
	require.NoError(t, SeedPolicies(e, nil, log))

	reloaded, err := NewEnforcer(db, "", log)
	require.NoError(t, err)

	allowed, err := reloaded.Enforce("user", ResourceAsset, ActionExport)
	require.NoError(t, err)
	assert.True(t, allowed)

	perms, err := reloaded.GetPermissionsForRole("admin")
	require.NoError(t, err)
	assert.Len(t, perms, len(DefaultPolicies())+1)
}

func TestSeedPolicies_RejectsMalformedPolicy(t *testing.T) {
	e, _ := newTestEnforcer(t)
	assert.Error(t, SeedPolicies(e, [][]string{{"user", "asset"}}, logger.NewDiscardLogger()))
}

func TestRemovePolicy(t *testing.T) {
	e, _ := newTestEnforcer(t)
	require.NoError(t, e.AddPolicy("user", ResourceAsset, ActionRead))
	require.NoError(t, e.RemovePolicy("user", ResourceAsset, ActionRead))

	allowed, err := e.Enforce("user", ResourceAsset, ActionRead)
	require.NoError(t, err)
	assert.False(t, allowed)
}
