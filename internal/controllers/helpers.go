package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/middleware"
	"food_truck_tracker/internal/repository"
)

// parseID reads the :id path parameter. On failure it has already
// answered 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + c.Param("id")})
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps repository failures to a status and JSON error body.
func respondStoreError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msg + ": not found"})
	case errors.Is(err, repository.ErrInvalidProperty), errors.Is(err, repository.ErrInvalidValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": msg + ": " + err.Error()})
	case repository.IsConstraintViolation(err):
		middleware.Log(c).WithError(err).Warn(msg)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg + ": constraint violation"})
	default:
		middleware.Log(c).WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
