package controllers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/middleware"
	"food_truck_tracker/internal/repository"
)

//go:embed openapi.yaml
var openAPISpec []byte

// Health reports whether the database answers a ping.
func Health(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			middleware.Log(c).WithError(err).Warn("Health: database unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// OpenAPI serves the API description.
func OpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", openAPISpec)
}
