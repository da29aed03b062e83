package routes

import (
	"nagarsetu-be/controllers"

	"github.com/gin-gonic/gin"
)

// LocationRoutes sets up the location directory routes
func LocationRoutes(r *gin.Engine) {
	location := r.Group("/api/location")
	{
		location.GET("/states", controllers.GetStates)
		location.GET("/states/:state/cities", controllers.GetCities)
	}
}
