package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"food_truck_tracker/internal/models"
)

// TruckData looks up single trucks by id.
type TruckData struct {
	db *gorm.DB
}

func NewTruckData(db *gorm.DB) *TruckData {
	return &TruckData{db: db}
}

// GetByID returns the truck, or nil if no truck has that id.
func (d *TruckData) GetByID(ctx context.Context, id uint) (*models.Truck, error) {
	return lookupByID[models.Truck](ctx, d.db, id)
}

// LocationData looks up single locations by id.
type LocationData struct {
	db *gorm.DB
}

func NewLocationData(db *gorm.DB) *LocationData {
	return &LocationData{db: db}
}

// GetByID returns the location, or nil if no location has that id.
func (d *LocationData) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	return lookupByID[models.Location](ctx, d.db, id)
}

func lookupByID[T models.Entity](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var entity T
	err := db.WithContext(ctx).Session(&gorm.Session{}).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}
