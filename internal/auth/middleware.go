// Package auth resolves the viewer identity of a request from a bearer token.
// Issuing tokens is the job of the login service; this package only checks
// them.
package auth

import (
	"net/http"
	"strings"

	"dishlist/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware rejects requests without a valid token and sets the userID
// otherwise.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required", "code": "UNAUTHORIZED"})
			return
		}

		userID, err := jwt.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "code": "UNAUTHORIZED"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware inspects for a token and sets the userID if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if userID, err := jwt.ParseToken(tokenString, secret); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// ViewerID returns the authenticated user, or 0 for an anonymous request.
func ViewerID(c *gin.Context) uint {
	if id, ok := c.Get(userIDKey); ok {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}
