package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/models"
	"food_truck_tracker/internal/repository"
)

// ListTrucks returns all trucks, optionally filtered by ?food_type= (exact)
// and ?name= (substring).
func ListTrucks(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		trucks, err := store.FindTrucks(c.Request.Context(), repository.TruckFilter{
			FoodType: c.Query("food_type"),
			Name:     c.Query("name"),
		})
		if err != nil {
			respondStoreError(c, err, "Could not fetch trucks")
			return
		}
		c.JSON(http.StatusOK, trucks)
	}
}

// GetTruck returns a single truck.
func GetTruck(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		truck, err := store.Trucks.GetByID(c.Request.Context(), id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch truck")
			return
		}
		if truck == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
			return
		}
		c.JSON(http.StatusOK, truck)
	}
}

// CreateTruck registers a new truck and returns it as stored.
func CreateTruck(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Truck
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck: " + err.Error()})
			return
		}
		input.ID = 0

		ctx := c.Request.Context()
		id, err := store.Trucks.Insert(ctx, &input)
		if err != nil {
			respondStoreError(c, err, "Could not create truck")
			return
		}
		created, err := store.Trucks.GetByID(ctx, id)
		if err != nil || created == nil {
			created = &input
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateTruck replaces every field of an existing truck.
func UpdateTruck(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		existing, err := store.Trucks.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch truck")
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
			return
		}

		var input models.Truck
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck: " + err.Error()})
			return
		}
		input.ID = id

		if err := store.Trucks.Update(ctx, &input); err != nil {
			respondStoreError(c, err, "Could not update truck")
			return
		}
		updated, err := store.Trucks.GetByID(ctx, id)
		if err != nil || updated == nil {
			updated = &input
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteTruck removes a truck together with its schedule entries.
func DeleteTruck(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		existing, err := store.Trucks.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch truck")
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
			return
		}
		if err := store.Trucks.Delete(ctx, existing); err != nil {
			respondStoreError(c, err, "Could not delete truck")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ListTruckSchedules returns the schedule entries for one truck.
func ListTruckSchedules(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		truck, err := store.TruckData.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch truck")
			return
		}
		if truck == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
			return
		}
		schedules, err := store.SchedulesForTruck(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch schedules")
			return
		}
		c.JSON(http.StatusOK, schedules)
	}
}
