package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sheyman13214/todoright-api/internal/constants"
	apierrors "github.com/Sheyman13214/todoright-api/internal/errors"
	"github.com/Sheyman13214/todoright-api/internal/services"
)

// RequireAuth verifies the bearer token and stores the subject user ID
// in the request context. There is no anonymous task access.
func RequireAuth(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.AuthorizationHeader)
		if header == "" || !strings.HasPrefix(header, constants.BearerPrefix) {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := tokenService.Verify(strings.TrimPrefix(header, constants.BearerPrefix))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
