package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"nagarsetu-be/directory"
	"nagarsetu-be/errs"
	"nagarsetu-be/services"
)

var (
	issueService   *services.IssueService
	locations      *directory.LocationDirectory
	userCollection *mongo.Collection
	teamCollection *mongo.Collection
)

// Init wires the handlers to their dependencies. Called once from main
// before the routes are registered.
func Init(svc *services.IssueService, dir *directory.LocationDirectory, users, teams *mongo.Collection) {
	issueService = svc
	locations = dir
	userCollection = users
	teamCollection = teams
}

// respondError maps the sentinel error taxonomy onto HTTP statuses.
// Store failures get a generic retryable message instead of internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
