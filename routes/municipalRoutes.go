package routes

import (
	"nagarsetu-be/controllers"
	"nagarsetu-be/middlewares"

	"github.com/gin-gonic/gin"
)

// MunicipalRoutes sets up the municipal team routes
func MunicipalRoutes(r *gin.Engine) {
	municipal := r.Group("/api/municipal")
	{
		municipal.POST("/login", controllers.LoginTeam)
		municipal.GET("/me", middlewares.MunicipalAuthMiddleware(), controllers.GetTeamMe)
		municipal.GET("/teams", controllers.GetTeamsForCity)
	}
}
