package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"nagarsetu-be/models"
	"nagarsetu-be/repositories"
	"nagarsetu-be/services"

	"github.com/gin-gonic/gin"
)

// CreateIssue handles a citizen submission
func CreateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title          string   `json:"title" binding:"required,max=200"`
		Description    string   `json:"description" binding:"required,max=1000"`
		Priority       *string  `json:"priority,omitempty"`
		ImageURL       *string  `json:"imageUrl,omitempty"`
		State          string   `json:"state" binding:"max=100"`
		City           string   `json:"city" binding:"max=100"`
		ExactLocation  string   `json:"exactLocation" binding:"max=200"`
		UserLatitude   *float64 `json:"userLatitude,omitempty"`
		UserLongitude  *float64 `json:"userLongitude,omitempty"`
		AssignedTeamID *string  `json:"assignedTeamId,omitempty"`
		ContactPhone   string   `json:"contactPhone" binding:"max=20"`
		ContactEmail   string   `json:"contactEmail" binding:"omitempty,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := services.IssueDraft{
		Title:          input.Title,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		State:          input.State,
		City:           input.City,
		ExactLocation:  input.ExactLocation,
		UserLatitude:   input.UserLatitude,
		UserLongitude:  input.UserLongitude,
		AssignedTeamID: input.AssignedTeamID,
		ContactPhone:   input.ContactPhone,
		ContactEmail:   input.ContactEmail,
	}
	if input.Priority != nil {
		draft.Priority = models.IssuePriority(*input.Priority)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issue, err := issueService.CreateIssue(ctx, draft, userID.(string))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// parseIssueFilter builds the listing filter from query parameters. Every
// recognized option narrows by exact match; absent options impose no
// constraint.
func parseIssueFilter(c *gin.Context) repositories.IssueFilter {
	filter := repositories.IssueFilter{
		State:          c.Query("state"),
		City:           c.Query("city"),
		AssignedTeamID: c.Query("assignedTeamId"),
	}

	if status := c.Query("status"); status != "" && status != "all" {
		filter.Status = models.IssueStatus(status)
	}
	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter
}

// GetAllIssues handles the filtered listing, newest first
func GetAllIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issues, err := issueService.ListIssues(ctx, parseIssueFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if issues == nil {
		issues = []models.Issue{}
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
	})
}

// GetIssue retrieves an issue by its ID
func GetIssue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issue, err := issueService.GetIssue(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// GetMyIssues retrieves the authenticated citizen's own issues
func GetMyIssues(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issues, err := issueService.ListIssues(ctx, repositories.IssueFilter{ReporterID: userID.(string)})
	if err != nil {
		respondError(c, err)
		return
	}
	if issues == nil {
		issues = []models.Issue{}
	}

	c.JSON(http.StatusOK, gin.H{"issues": issues})
}

// UpdateIssueStatus transitions an issue through the lifecycle. Municipal
// team actors only; the middleware has already verified the actor kind.
func UpdateIssueStatus(c *gin.Context) {
	teamID, _ := c.Get("team_id")
	actor := services.Actor{Kind: services.ActorMunicipal}
	if id, ok := teamID.(string); ok {
		actor.ID = id
	}

	var input struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issue, err := issueService.UpdateStatus(ctx, c.Param("id"), models.IssueStatus(input.Status), actor, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// GetIssueStats returns status counts over the filtered listing for the
// dashboard cards
func GetIssueStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	counts, err := issueService.StatusCounts(ctx, parseIssueFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

// RecentIssues returns the most recent issues that carry coordinates, as map
// pins
func RecentIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issues, err := issueService.ListIssues(ctx, repositories.IssueFilter{WithCoords: true, Limit: 19})
	if err != nil {
		respondError(c, err)
		return
	}

	type pin struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Status    string    `json:"status"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		City      string    `json:"city"`
		State     string    `json:"state"`
		CreatedAt time.Time `json:"createdAt"`
	}

	pins := make([]pin, 0, len(issues))
	for _, issue := range issues {
		if issue.Latitude == nil || issue.Longitude == nil {
			continue
		}
		pins = append(pins, pin{
			ID:        issue.ID.Hex(),
			Title:     issue.Title,
			Status:    string(issue.Status),
			Latitude:  *issue.Latitude,
			Longitude: *issue.Longitude,
			City:      issue.City,
			State:     issue.State,
			CreatedAt: issue.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, pins)
}
