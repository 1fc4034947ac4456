package repository

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"food_truck_tracker/internal/models"
)

// Store bundles the repositories and lookup helpers over one database handle.
type Store struct {
	db *gorm.DB

	Trucks    *Repository[models.Truck]
	Locations *Repository[models.Location]
	Schedules *Repository[models.Schedule]

	TruckData    *TruckData
	LocationData *LocationData
}

func NewStore(db *gorm.DB) (*Store, error) {
	trucks, err := New[models.Truck](db)
	if err != nil {
		return nil, err
	}
	locations, err := New[models.Location](db)
	if err != nil {
		return nil, err
	}
	schedules, err := New[models.Schedule](db)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:           db,
		Trucks:       trucks,
		Locations:    locations,
		Schedules:    schedules,
		TruckData:    NewTruckData(db),
		LocationData: NewLocationData(db),
	}, nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SchedulesForTruck returns the schedule entries referencing the truck.
func (s *Store) SchedulesForTruck(ctx context.Context, truckID uint) ([]models.Schedule, error) {
	return s.Schedules.GetByPropertyEqual(ctx, "truck_id", formatID(truckID))
}

// SchedulesForLocation returns the schedule entries referencing the location.
func (s *Store) SchedulesForLocation(ctx context.Context, locationID uint) ([]models.Schedule, error) {
	return s.Schedules.GetByPropertyEqual(ctx, "location_id", formatID(locationID))
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
