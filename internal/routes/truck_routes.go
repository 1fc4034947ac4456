package routes

import (
	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/controllers"
	"food_truck_tracker/internal/repository"
)

func TruckRoutes(api *gin.RouterGroup, store *repository.Store) {
	trucks := api.Group("/trucks")
	{
		trucks.GET("", controllers.ListTrucks(store))
		trucks.POST("", controllers.CreateTruck(store))
		trucks.GET("/:id", controllers.GetTruck(store))
		trucks.PUT("/:id", controllers.UpdateTruck(store))
		trucks.DELETE("/:id", controllers.DeleteTruck(store))
		trucks.GET("/:id/schedules", controllers.ListTruckSchedules(store))
	}
}
