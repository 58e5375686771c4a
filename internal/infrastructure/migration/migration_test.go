package migration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"art/internal/domain/catalog"
	"art/internal/infrastructure/repository"
	"art/internal/shared/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGooseStrategy_UpStatusDown(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	log := logger.NewDiscardLogger()

	strategy, err := NewGooseStrategy("sqlite", log)
	require.NoError(t, err)

	require.NoError(t, NewManagerWithStrategy(strategy, log).Migrate(ctx, db))

	version, err := strategy.GetVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	statuses, err := strategy.Status(ctx, db)
	require.NoError(t, err)
	require.NotEmpty(t, statuses)
	assert.True(t, statuses[0].Applied)

	assert.True(t, db.Migrator().HasTable("assets"))
	assert.True(t, db.Migrator().HasTable("allocation_histories"))

	require.NoError(t, strategy.MigrateDown(ctx, db, 1))
	assert.False(t, db.Migrator().HasTable("assets"))
}

func TestGooseStrategy_SchemaEnforcesProtectedDeletion(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	log := logger.NewDiscardLogger()

	strategy, err := NewGooseStrategy("sqlite", log)
	require.NoError(t, err)
	require.NoError(t, strategy.Migrate(ctx, db))

	repo := repository.NewCatalogRepository(db, log)
	category, err := catalog.NewItem(catalog.LevelCategory, "electronics", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, category))

	parentID := category.ID()
	sub, err := catalog.NewItem(catalog.LevelSubCategory, "computers", &parentID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, sub))

	err = db.Exec("DELETE FROM asset_categories WHERE id = ?", parentID).Error
	assert.Error(t, err)

	err = db.Exec(
		"INSERT INTO asset_assignees (user_id, department_id, created_at) VALUES (NULL, NULL, CURRENT_TIMESTAMP)",
	).Error
	assert.Error(t, err, "an assignee must reference exactly one owner")
}

func TestNewManager_SelectsStrategy(t *testing.T) {
	log := logger.NewDiscardLogger()

	m, err := NewManager("development", "sqlite", log)
	require.NoError(t, err)
	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())

	m, err = NewManager("production", "mysql", log)
	require.NoError(t, err)
	assert.Equal(t, "goose", m.GetStrategy().GetName())

	_, err = NewManager("production", "oracle", log)
	assert.Error(t, err)
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, NewGormAutoMigrateStrategy(logger.NewDiscardLogger()).Migrate(context.Background(), db))
	assert.True(t, db.Migrator().HasTable("asset_specs"))
}
