package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food_truck_tracker/internal/models"
)

func TestInitDBSQLiteMigratesSchema(t *testing.T) {
	db, err := InitDB(Config{
		DBDriver:     DriverSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "init.db"),
		LogLevel:     "error",
		MaxOpenConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	m := db.Migrator()
	for _, table := range []string{"food_trucks", "locations", "schedules"} {
		assert.True(t, m.HasTable(table), "table %s", table)
	}
	assert.True(t, m.HasColumn(&models.Schedule{}, "truck_id"))
	assert.True(t, m.HasColumn(&models.Schedule{}, "location_id"))

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestInitDBRejectsUnknownDriver(t *testing.T) {
	_, err := InitDB(Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, `unsupported DB_DRIVER "oracle"`)
}
