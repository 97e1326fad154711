// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"account/internal/domain/entity"
)

// UserFields carries optional overrides applied on top of the creation defaults.
// A nil field keeps the default; a non-nil field replaces it, including explicit false.
type UserFields struct {
	FirstName   *string
	LastName    *string
	Role        *entity.Role
	IsStaff     *bool
	IsSuperuser *bool
	IsActive    *bool
}

// --- Input DTOs ---

// RegisterInput defines the data required for a public sign-up.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserFactory creates users. CreatePrivilegedUser always yields staff, superuser and admin role.
type UserFactory interface {
	CreateUser(ctx context.Context, email, password string, fields UserFields) (*entity.User, error)
	CreatePrivilegedUser(ctx context.Context, email, password string, fields UserFields) (*entity.User, error)
}

// AccountUsecase defines the account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	UserFactory
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
