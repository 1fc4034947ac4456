package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/geo"
	"food_truck_tracker/internal/middleware"
	"food_truck_tracker/internal/models"
	"food_truck_tracker/internal/repository"
)

// ListLocations returns all locations, optionally filtered by ?state=
// (exact) and ?name= (substring).
func ListLocations(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		locations, err := store.FindLocations(c.Request.Context(), repository.LocationFilter{
			State: c.Query("state"),
			Name:  c.Query("name"),
		})
		if err != nil {
			respondStoreError(c, err, "Could not fetch locations")
			return
		}
		c.JSON(http.StatusOK, locations)
	}
}

// LocationsGeoJSON returns every location with coordinates as a GeoJSON
// FeatureCollection.
func LocationsGeoJSON(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		locations, err := store.Locations.GetAll(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, "Could not fetch locations")
			return
		}
		body, err := json.Marshal(geo.FeatureCollection(locations))
		if err != nil {
			middleware.Log(c).WithError(err).Error("LocationsGeoJSON: encoding failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize response"})
			return
		}
		c.Data(http.StatusOK, "application/geo+json", body)
	}
}

// GetLocation returns a single location.
func GetLocation(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		location, err := store.Locations.GetByID(c.Request.Context(), id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch location")
			return
		}
		if location == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		c.JSON(http.StatusOK, location)
	}
}

// CreateLocation registers a new location and returns it as stored.
func CreateLocation(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Location
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location: " + err.Error()})
			return
		}
		input.ID = 0

		ctx := c.Request.Context()
		id, err := store.Locations.Insert(ctx, &input)
		if err != nil {
			respondStoreError(c, err, "Could not create location")
			return
		}
		created, err := store.Locations.GetByID(ctx, id)
		if err != nil || created == nil {
			created = &input
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateLocation replaces every field of an existing location.
func UpdateLocation(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		existing, err := store.Locations.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch location")
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}

		var input models.Location
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location: " + err.Error()})
			return
		}
		input.ID = id

		if err := store.Locations.Update(ctx, &input); err != nil {
			respondStoreError(c, err, "Could not update location")
			return
		}
		updated, err := store.Locations.GetByID(ctx, id)
		if err != nil || updated == nil {
			updated = &input
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteLocation removes a location together with its schedule entries.
func DeleteLocation(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		existing, err := store.Locations.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch location")
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		if err := store.Locations.Delete(ctx, existing); err != nil {
			respondStoreError(c, err, "Could not delete location")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ListLocationSchedules returns the schedule entries at one location.
func ListLocationSchedules(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		location, err := store.LocationData.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch location")
			return
		}
		if location == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		schedules, err := store.SchedulesForLocation(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch schedules")
			return
		}
		c.JSON(http.StatusOK, schedules)
	}
}
