package handler

import (
	"strings"

	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutHandler blacklists the presented tokens and deactivates the
// caller's sessions.
func LogoutHandler(c *gin.Context, sessionsRepo *repository.SessionsRepo) {
	userID := c.GetString("user_id")

	accessToken := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	var req logoutRequest
	_ = c.ShouldBindJSON(&req) // refresh token is optional

	if err := services.BlacklistToken(accessToken); err != nil {
		utils.TrackError("auth", "blacklist_access")
		utils.InternalError(c, "Failed to log out")
		return
	}
	if req.RefreshToken != "" {
		if err := services.BlacklistToken(req.RefreshToken); err != nil {
			utils.TrackError("auth", "blacklist_refresh")
			utils.InternalError(c, "Failed to log out")
			return
		}
	}

	if _, err := sessionsRepo.EndUserSessions(c.Request.Context(), userID); err != nil {
		utils.TrackError("session", "session_end")
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	utils.Success(c, gin.H{"message": "logged out"})
}
