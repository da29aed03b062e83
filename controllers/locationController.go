package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStates returns the known state names
func GetStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": locations.States()})
}

// GetCities returns the city names for one state, empty if unknown
func GetCities(c *gin.Context) {
	state := c.Param("state")
	c.JSON(http.StatusOK, gin.H{
		"state":  state,
		"cities": locations.CitiesForState(state),
	})
}
