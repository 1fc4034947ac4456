// Package testutil opens throwaway sqlite stores for tests and seeds them
// with a small, known data set.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"food_truck_tracker/internal/config"
	"food_truck_tracker/internal/models"
	"food_truck_tracker/internal/repository"
)

// SetupTestDB opens a fresh sqlite database under t.TempDir with the full
// schema and foreign key enforcement.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.InitDB(config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "foodtrucks.db"),
		LogLevel:   "error",
	})
	require.NoError(t, err, "open test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SetupTestStore returns a Store over a fresh test database.
func SetupTestStore(t *testing.T) *repository.Store {
	t.Helper()
	store, err := repository.NewStore(SetupTestDB(t))
	require.NoError(t, err)
	return store
}

// Fixtures holds the rows inserted by Seed.
type Fixtures struct {
	BurgerBuds  *models.Truck
	CurryCart   *models.Truck
	CapitolSq   *models.Location
	LibraryMall *models.Location

	// ThursdayCapitol: BurgerBuds at CapitolSq on 5/7/2026.
	ThursdayCapitol *models.Schedule
	// FridayCapitol: BurgerBuds at CapitolSq on 5/8/2026.
	FridayCapitol *models.Schedule
	// FridayLibrary: CurryCart at LibraryMall on 5/8/2026.
	FridayLibrary *models.Schedule
}

// Seed inserts two trucks, two locations and three schedule entries.
func Seed(t *testing.T, db *gorm.DB) Fixtures {
	t.Helper()

	f := Fixtures{
		BurgerBuds:  models.NewTruck("ANM Burger Buds", "Burgers"),
		CurryCart:   models.NewTruck("Curry Cart", "Indian"),
		CapitolSq:   models.NewLocation("Capitol Square", "2 E Main St", "WI", 53703, "USA", 43.0747, -89.3841),
		LibraryMall: models.NewLocation("Library Mall", "728 State St", "WI", 53706, "USA", 43.0752, -89.3980),
	}
	require.NoError(t, db.Create(f.BurgerBuds).Error)
	require.NoError(t, db.Create(f.CurryCart).Error)
	require.NoError(t, db.Create(f.CapitolSq).Error)
	require.NoError(t, db.Create(f.LibraryMall).Error)

	f.ThursdayCapitol = models.NewSchedule(f.BurgerBuds, f.CapitolSq, "Thursday", "5/7/2026", "8:00am", "4:00pm")
	f.FridayCapitol = models.NewSchedule(f.BurgerBuds, f.CapitolSq, "Friday", "5/8/2026", "8:00am", "4:00pm")
	f.FridayLibrary = models.NewSchedule(f.CurryCart, f.LibraryMall, "Friday", "5/8/2026", "11:00am", "2:00pm")
	for _, s := range []*models.Schedule{f.ThursdayCapitol, f.FridayCapitol, f.FridayLibrary} {
		require.NoError(t, db.Omit("Truck", "Location").Create(s).Error)
	}
	return f
}
