package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"nagarsetu-be/config"
	"nagarsetu-be/controllers"
	"nagarsetu-be/directory"
	"nagarsetu-be/notify"
	"nagarsetu-be/repositories"
	"nagarsetu-be/routes"
	"nagarsetu-be/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	if err := config.EnsureIndexes(); err != nil {
		log.Printf("Failed to ensure indexes: %v", err)
	}

	config.ConnectRedis()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// The location directory is reference data: seeded once, loaded once,
	// immutable for the life of the process.
	locationColl := config.GetCollection(config.LocationsCollection)
	if err := directory.Seed(ctx, locationColl); err != nil {
		log.Fatalf("Failed to seed locations: %v", err)
	}
	dir, err := directory.Load(ctx, locationColl)
	if err != nil {
		log.Fatalf("Failed to load location directory: %v", err)
	}

	notifier := notify.NewEmailNotifier(
		os.Getenv("NOTIFY_EMAIL_ENDPOINT"),
		os.Getenv("NOTIFY_EMAIL_API_KEY"),
		config.GetCollection(config.NotificationsCollection),
	)

	issueRepo := repositories.NewMongoIssueRepository(config.GetCollection(config.IssuesCollection))
	teamRepo := repositories.NewMongoTeamRepository(config.GetCollection(config.TeamsCollection))
	issueService := services.NewIssueService(issueRepo, teamRepo, dir, notifier)

	controllers.Init(
		issueService,
		dir,
		config.GetCollection(config.ProfilesCollection),
		config.GetCollection(config.TeamsCollection),
	)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("CLIENT_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	routes.AuthRoutes(r)
	routes.MunicipalRoutes(r)
	routes.IssueRoutes(r)
	routes.LocationRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
