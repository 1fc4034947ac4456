package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/logger"
	"food_truck_tracker/internal/metrics"
	"food_truck_tracker/internal/middleware"
	"food_truck_tracker/internal/repository"
)

// SetupRouter builds the engine with middleware and every route group.
func SetupRouter(store *repository.Store, corsOrigins []string) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	// Request logging middleware
	r.Use(ginlog.SetLogger(
		ginlog.WithUTC(true),
		ginlog.WithWriter(logger.Writer()),
		ginlog.WithSkipPath([]string{"/healthz", "/metrics"}),
	))
	r.Use(metrics.Middleware())
	r.Use(middleware.EnableCORS(corsOrigins))

	SystemRoutes(r, store)

	api := r.Group("/api")
	TruckRoutes(api, store)
	LocationRoutes(api, store)
	ScheduleRoutes(api, store)

	return r
}
