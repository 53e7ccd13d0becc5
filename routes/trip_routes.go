package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/trip-planner/api-go/controllers"
)

func SetupTripRoutes(api *gin.RouterGroup, tripController *controllers.TripController) {
	trips := api.Group("/trips")
	{
		trips.POST("/plan", tripController.PlanTrip)
		trips.GET("", tripController.ListTrips)
		trips.GET("/:id", tripController.GetTrip)
	}
}
