package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserChecker reports whether a user still exists.
type UserChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// RequireKnownUser rejects tokens whose subject has been deleted.
// It must be used AFTER AuthMiddleware.
func RequireKnownUser(users UserChecker, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := ViewerID(c)
		if userID == 0 {
			// This should not happen if AuthMiddleware is used before it
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated", "code": "UNAUTHORIZED"})
			return
		}

		exists, err := users.Exists(c.Request.Context(), userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Failed to look up authenticated user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": "INTERNAL"})
			return
		}
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authenticated user not found", "code": "UNAUTHORIZED"})
			return
		}

		c.Next()
	}
}
