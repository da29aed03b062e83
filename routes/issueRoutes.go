package routes

import (
	"nagarsetu-be/controllers"
	"nagarsetu-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes. Listings are public reads; creation
// is citizen-only and rate limited; status transitions are municipal-only.
func IssueRoutes(r *gin.Engine) {
	issue := r.Group("/api/issue")
	{
		issue.POST("/create", middlewares.AuthMiddleware(), middlewares.IssueRateLimiter(10), controllers.CreateIssue)
		issue.GET("", controllers.GetAllIssues)
		issue.GET("/stats", controllers.GetIssueStats)
		issue.GET("/recent", controllers.RecentIssues)
		issue.GET("/mine", middlewares.AuthMiddleware(), controllers.GetMyIssues)
		issue.GET("/:id", controllers.GetIssue)
		issue.PATCH("/:id/status", middlewares.MunicipalAuthMiddleware(), controllers.UpdateIssueStatus)
	}
}
