package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authUtils "nagarsetu-be/utils"
)

// bearerToken pulls the token from the Authorization header, falling back to
// the auth cookie the login handlers set for browser clients.
func bearerToken(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return authHeader[7:]
		}
		return authHeader
	}

	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware guards citizen endpoints. On success the citizen's profile
// id is stored under "user_id".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		subjectID, actorKind, err := authUtils.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}
		if actorKind != authUtils.KindCitizen {
			c.JSON(http.StatusForbidden, gin.H{"error": "Citizen account required"})
			c.Abort()
			return
		}

		c.Set("user_id", subjectID)
		c.Next()
	}
}

// MunicipalAuthMiddleware guards municipal endpoints. On success the team id
// is stored under "team_id".
func MunicipalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		subjectID, actorKind, err := authUtils.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}
		if actorKind != authUtils.KindMunicipal {
			c.JSON(http.StatusForbidden, gin.H{"error": "Municipal team account required"})
			c.Abort()
			return
		}

		c.Set("team_id", subjectID)
		c.Next()
	}
}
