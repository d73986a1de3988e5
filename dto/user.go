package dto

import (
	"main/model"
)

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	IsStaff  bool   `json:"is_staff"`
}

// UpdateUserRequest uses pointers so absent fields are left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Role     *string `json:"role"`
	IsStaff  *bool   `json:"is_staff"`
}

type LoginRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"two_factor_code"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsStaff  bool   `json:"is_staff"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.UserID,
		Username: user.Username,
		Role:     user.Role,
		IsStaff:  user.IsStaff,
	}
}

func ToUserResponses(users []*model.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
