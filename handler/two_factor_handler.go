package handler

import (
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type verifyTwoFactorRequest struct {
	Code string `json:"code" binding:"required"`
}

// Enable2FAHandler generates a TOTP secret and recovery codes for the
// caller. The secret only becomes active once a code is verified.
func Enable2FAHandler(c *gin.Context, usersService *usecase.UsersService) {
	userID := c.GetString("user_id")

	user, err := usersService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	key, err := services.GenerateTOTPSecret(user.Username)
	if err != nil {
		utils.TrackError("auth", "2fa_secret_generation")
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}

	if err := usersService.EnableTwoFactor(c.Request.Context(), userID, key.Secret(), recoveryCodes); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"secret":         key.Secret(),
		"otpauth_url":    key.URL(),
		"recovery_codes": recoveryCodes,
	})
}

// Verify2FAHandler checks a TOTP code against the caller's stored secret.
func Verify2FAHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req verifyTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "code is required")
		return
	}

	userID := c.GetString("user_id")
	user, err := usersService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if user.TwoFactorSecret == "" {
		utils.BadRequest(c, "2FA is not set up")
		return
	}

	if !services.ValidateTOTPCode(req.Code, user.TwoFactorSecret) {
		utils.TrackAuthAttempt("failure", "2fa")
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	}

	utils.TrackAuthAttempt("success", "2fa")
	utils.Success(c, gin.H{"message": "2FA code verified"})
}

func Disable2FAHandler(c *gin.Context, usersService *usecase.UsersService) {
	userID := c.GetString("user_id")

	if err := usersService.DisableTwoFactor(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "2FA disabled"})
}
