// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"account/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	BirthDate *time.Time
	Gender    *entity.Gender
	Phone     *string
}
