package handler

import (
	"errors"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP error taxonomy. Anything
// that is not a known sentinel becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, usecase.ErrValidation):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrConflict):
		utils.Conflict(c, err.Error())
	default:
		utils.InternalError(c, "Internal server error")
	}
}
