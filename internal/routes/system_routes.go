package routes

import (
	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/controllers"
	"food_truck_tracker/internal/metrics"
	"food_truck_tracker/internal/repository"
)

func SystemRoutes(r *gin.Engine, store *repository.Store) {
	r.GET("/healthz", controllers.Health(store))
	r.GET("/metrics", metrics.Handler())
	r.GET("/api/openapi.yaml", controllers.OpenAPI)
}
