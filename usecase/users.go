package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"main/model"
	"main/services"
	"main/utils"
)

type UsersService struct {
	UsersRepo UserStore
}

// Register creates a new user with a hashed password. Usernames are unique;
// a taken name fails with ErrConflict before anything is written.
func (svc *UsersService) Register(ctx context.Context, username, password, role string, isStaff bool) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	existing, err := svc.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with username %s", ErrConflict, username)
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleAdmin && role != model.RoleUser {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	user := &model.User{
		UserID:    utils.GenerateID(),
		Username:  username,
		Password:  hashed,
		Role:      role,
		IsStaff:   isStaff,
		CreatedAt: time.Now(),
	}

	if err := svc.UsersRepo.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (svc *UsersService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user with id=%s", ErrNotFound, userID)
	}
	return user, nil
}

func (svc *UsersService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return svc.UsersRepo.FindAll(ctx)
}

// UpdateUser applies the fields present in the update. Renames re-check
// username uniqueness; role values are validated.
func (svc *UsersService) UpdateUser(ctx context.Context, userID string, update UserUpdate) (*model.User, error) {
	user, err := svc.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user with id=%s", ErrNotFound, userID)
	}

	if update.Username != nil {
		name := strings.TrimSpace(*update.Username)
		if name == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", ErrValidation)
		}
		if name != user.Username {
			existing, err := svc.UsersRepo.FindByUsername(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, fmt.Errorf("%w: user with username %s", ErrConflict, name)
			}
		}
		update.Username = &name
	}

	if update.Role != nil && *update.Role != model.RoleAdmin && *update.Role != model.RoleUser {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *update.Role)
	}

	if _, err := svc.UsersRepo.Update(ctx, userID, update); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.IsStaff != nil {
		user.IsStaff = *update.IsStaff
	}
	return user, nil
}

func (svc *UsersService) DeleteUser(ctx context.Context, userID string) error {
	deleted, err := svc.UsersRepo.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: user with id=%s", ErrNotFound, userID)
	}
	return nil
}

func (svc *UsersService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return svc.UsersRepo.FindByUsername(ctx, username)
}

// EnableTwoFactor stores a fresh TOTP secret and recovery codes for the user.
func (svc *UsersService) EnableTwoFactor(ctx context.Context, userID, secret string, recoveryCodes []string) error {
	user, err := svc.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user with id=%s", ErrNotFound, userID)
	}
	if user.TwoFactorEnabled {
		return fmt.Errorf("%w: two-factor auth is already enabled", ErrConflict)
	}
	return svc.UsersRepo.SetTwoFactor(ctx, userID, secret, true, recoveryCodes)
}

func (svc *UsersService) DisableTwoFactor(ctx context.Context, userID string) error {
	user, err := svc.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user with id=%s", ErrNotFound, userID)
	}
	return svc.UsersRepo.SetTwoFactor(ctx, userID, "", false, nil)
}
