package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/middleware"
	"food_truck_tracker/internal/models"
	"food_truck_tracker/internal/repository"
)

type reference struct {
	ID uint `json:"id" binding:"required"`
}

// scheduleInput is the request body for creating or replacing a schedule
// entry. Only the ids of the truck and location are read.
type scheduleInput struct {
	Truck     *reference `json:"truck" binding:"required"`
	Location  *reference `json:"location" binding:"required"`
	DayOfWeek string     `json:"dayOfWeek"`
	Date      string     `json:"date"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
}

// toSchedule resolves the referenced truck and location. A reference that
// does not exist is reported through msg with a nil error.
func (in scheduleInput) toSchedule(ctx context.Context, store *repository.Store) (*models.Schedule, string, error) {
	truck, err := store.TruckData.GetByID(ctx, in.Truck.ID)
	if err != nil {
		return nil, "", err
	}
	if truck == nil {
		return nil, fmt.Sprintf("Truck %d not found", in.Truck.ID), nil
	}
	location, err := store.LocationData.GetByID(ctx, in.Location.ID)
	if err != nil {
		return nil, "", err
	}
	if location == nil {
		return nil, fmt.Sprintf("Location %d not found", in.Location.ID), nil
	}
	return models.NewSchedule(truck, location, in.DayOfWeek, in.Date, in.StartTime, in.EndTime), "", nil
}

// ListSchedules returns schedule entries, filtered by ?date= (exact string)
// and/or ?location_id=.
func ListSchedules(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter repository.ScheduleFilter
		if date := c.Query("date"); date != "" {
			filter.Date = &date
		}
		if raw := c.Query("location_id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location_id: " + raw})
				return
			}
			locationID := uint(id)
			filter.LocationID = &locationID
		}

		schedules, err := store.FindSchedules(c.Request.Context(), filter)
		if err != nil {
			respondStoreError(c, err, "Failed to fetch schedule results")
			return
		}
		middleware.Log(c).WithField("count", len(schedules)).Debug("ListSchedules")
		c.JSON(http.StatusOK, schedules)
	}
}

// GetSchedule returns a single schedule entry with its truck and location.
func GetSchedule(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		schedule, err := store.Schedules.GetByID(c.Request.Context(), id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch schedule")
			return
		}
		if schedule == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusOK, schedule)
	}
}

// CreateSchedule books a truck at a location.
func CreateSchedule(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input scheduleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule: " + err.Error()})
			return
		}

		ctx := c.Request.Context()
		schedule, msg, err := input.toSchedule(ctx, store)
		if err != nil {
			respondStoreError(c, err, "Could not resolve schedule references")
			return
		}
		if schedule == nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
			return
		}

		id, err := store.Schedules.Insert(ctx, schedule)
		if err != nil {
			respondStoreError(c, err, "Could not create schedule")
			return
		}
		created, err := store.Schedules.GetByID(ctx, id)
		if err != nil || created == nil {
			created = schedule
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateSchedule replaces every field of an existing schedule entry,
// including which truck and location it refers to.
func UpdateSchedule(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		existing, err := store.Schedules.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch schedule")
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}

		var input scheduleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule: " + err.Error()})
			return
		}
		schedule, msg, err := input.toSchedule(ctx, store)
		if err != nil {
			respondStoreError(c, err, "Could not resolve schedule references")
			return
		}
		if schedule == nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
			return
		}
		schedule.ID = id

		if err := store.Schedules.Update(ctx, schedule); err != nil {
			respondStoreError(c, err, "Could not update schedule")
			return
		}
		updated, err := store.Schedules.GetByID(ctx, id)
		if err != nil || updated == nil {
			updated = schedule
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteSchedule removes one schedule entry. Its truck and location stay.
func DeleteSchedule(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		existing, err := store.Schedules.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Could not fetch schedule")
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		if err := store.Schedules.Delete(ctx, existing); err != nil {
			respondStoreError(c, err, "Could not delete schedule")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
