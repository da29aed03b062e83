package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"nagarsetu-be/models"
	authUtils "nagarsetu-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginTeam handles municipal team login. Inactive teams cannot sign in.
func LoginTeam(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var team models.MunicipalTeam
	err := teamCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&team)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !team.IsActive || !team.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateToken(team.ID.Hex(), authUtils.KindMunicipal)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"id":        team.ID,
		"teamName":  team.TeamName,
		"cityName":  team.CityName,
		"stateName": team.StateName,
		"email":     team.Email,
		"token":     token,
	})
}

// GetTeamMe retrieves the authenticated team's record
func GetTeamMe(c *gin.Context) {
	teamID, exists := c.Get("team_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Team not authenticated"})
		return
	}

	objectID, err := primitive.ObjectIDFromHex(teamID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var team models.MunicipalTeam
	err = teamCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&team)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamsForCity lists the active teams serving a city, used by the
// submission form to offer an assignment choice.
func GetTeamsForCity(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	teams, err := issueService.TeamsForCity(ctx, city)
	if err != nil {
		respondError(c, err)
		return
	}
	if teams == nil {
		teams = []models.MunicipalTeam{}
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}
