package repository

import (
	"context"

	"food_truck_tracker/internal/models"
)

// ScheduleFilter narrows a schedule listing. Nil fields are not applied.
type ScheduleFilter struct {
	Date       *string
	LocationID *uint
}

// FindSchedules applies the listing rules: the date is matched exactly in
// the store, then rows are narrowed to those whose location has the given
// id. A location id nothing refers to gives an empty result.
func (s *Store) FindSchedules(ctx context.Context, f ScheduleFilter) ([]models.Schedule, error) {
	var (
		schedules []models.Schedule
		err       error
	)
	if f.Date != nil {
		schedules, err = s.Schedules.GetByPropertyEqual(ctx, "date", *f.Date)
	} else {
		schedules, err = s.Schedules.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if f.LocationID == nil {
		return schedules, nil
	}
	return AtLocation(schedules, *f.LocationID), nil
}

// AtLocation keeps the schedules whose location reference has the given id.
// Schedules without a loaded location are dropped.
func AtLocation(schedules []models.Schedule, locationID uint) []models.Schedule {
	out := make([]models.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if s.Location != nil && s.Location.ID == locationID {
			out = append(out, s)
		}
	}
	return out
}

// TruckFilter narrows a truck listing. Empty fields are not applied.
type TruckFilter struct {
	FoodType string
	Name     string
}

// FindTrucks matches FoodType exactly and Name as a substring.
func (s *Store) FindTrucks(ctx context.Context, f TruckFilter) ([]models.Truck, error) {
	var conds []Condition
	if f.FoodType != "" {
		conds = append(conds, Equal("foodType", f.FoodType))
	}
	if f.Name != "" {
		conds = append(conds, Like("name", f.Name))
	}
	return s.Trucks.Where(ctx, conds...)
}

// LocationFilter narrows a location listing. Empty fields are not applied.
type LocationFilter struct {
	State string
	Name  string
}

// FindLocations matches State exactly and Name as a substring.
func (s *Store) FindLocations(ctx context.Context, f LocationFilter) ([]models.Location, error) {
	var conds []Condition
	if f.State != "" {
		conds = append(conds, Equal("state", f.State))
	}
	if f.Name != "" {
		conds = append(conds, Like("name", f.Name))
	}
	return s.Locations.Where(ctx, conds...)
}
