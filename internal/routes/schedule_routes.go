package routes

import (
	"github.com/gin-gonic/gin"

	"food_truck_tracker/internal/controllers"
	"food_truck_tracker/internal/repository"
)

func ScheduleRoutes(api *gin.RouterGroup, store *repository.Store) {
	schedule := api.Group("/schedule")
	{
		schedule.GET("", controllers.ListSchedules(store))
		schedule.POST("", controllers.CreateSchedule(store))
		schedule.GET("/:id", controllers.GetSchedule(store))
		schedule.PUT("/:id", controllers.UpdateSchedule(store))
		schedule.DELETE("/:id", controllers.DeleteSchedule(store))
	}
}
