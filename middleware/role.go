package middleware

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole loads the authenticated user and rejects the request unless
// the user carries the given role. Must run after AuthMiddleware.
func RequireRole(users usecase.UserStore, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			utils.InternalError(c, "Failed to resolve user")
			c.Abort()
			return
		}
		if user == nil {
			utils.Unauthorized(c, "Unknown user")
			c.Abort()
			return
		}
		if user.Role != role {
			utils.TrackError("auth", "role_mismatch")
			utils.Forbidden(c, "Insufficient role")
			c.Abort()
			return
		}

		c.Next()
	}
}
