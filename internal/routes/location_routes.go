package routes

import (
	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/controllers"
	"food_truck_tracker/internal/repository"
)

func LocationRoutes(api *gin.RouterGroup, store *repository.Store) {
	locations := api.Group("/locations")
	{
		locations.GET("", controllers.ListLocations(store))
		locations.POST("", controllers.CreateLocation(store))
		locations.GET("/geojson", controllers.LocationsGeoJSON(store))
		locations.GET("/:id", controllers.GetLocation(store))
		locations.PUT("/:id", controllers.UpdateLocation(store))
		locations.DELETE("/:id", controllers.DeleteLocation(store))
		locations.GET("/:id/schedules", controllers.ListLocationSchedules(store))
	}
}
