package model

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	UserID           string    `bson:"user_id" json:"id"`
	Username         string    `bson:"username" json:"username" validate:"required,min=4,max=20"`
	Password         string    `bson:"password" json:"-"`
	Role             string    `bson:"role" json:"role"`
	IsStaff          bool      `bson:"is_staff" json:"is_staff"`
	TwoFactorSecret  string    `bson:"two_factor_secret,omitempty" json:"-"`
	TwoFactorEnabled bool      `bson:"two_factor_enabled" json:"-"`
	RecoveryCodes    []string  `bson:"recovery_codes,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
