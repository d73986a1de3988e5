package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUserHandler creates a new user account. Open endpoint; the
// response never includes credentials.
func RegisterUserHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "username and password are required")
		return
	}

	user, err := usersService.Register(c.Request.Context(), req.Username, req.Password, req.Role, req.IsStaff)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, dto.ToUserResponse(user))
}

func GetUserHandler(c *gin.Context, usersService *usecase.UsersService) {
	userID := c.Param("id")

	user, err := usersService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

func ListUsersHandler(c *gin.Context, usersService *usecase.UsersService) {
	users, err := usersService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToUserResponses(users))
}

// UpdateUserHandler changes username, role or staff flag. Admin-only,
// enforced by the role middleware on the route.
func UpdateUserHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	userID := c.Param("id")
	user, err := usersService.UpdateUser(c.Request.Context(), userID, usecase.UserUpdate{
		Username: req.Username,
		Role:     req.Role,
		IsStaff:  req.IsStaff,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

// DeleteUserHandler removes a user account. Any authenticated caller may
// delete any account.
func DeleteUserHandler(c *gin.Context, usersService *usecase.UsersService) {
	userID := c.Param("id")

	if err := usersService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "user has been deleted"})
}
