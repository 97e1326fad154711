package repository

import (
	"context"

	"account/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence operations for user profiles.
type ProfileRepository interface {
	// Create persists a new profile. The owning user must exist.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves a profile together with its user and default address.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindByUserIDForUpdate retrieves a profile and locks its row until the transaction ends.
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Update writes the mutable personal fields of a profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// AssignDefaultAddressIfEmpty points the profile at addressID only when it has no default yet.
	// It reports whether the assignment happened.
	AssignDefaultAddressIfEmpty(ctx context.Context, userID, addressID uuid.UUID) (bool, error)

	// SetDefaultAddress points the profile at addressID unconditionally.
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error

	// Delete removes a profile and, through the schema, all of its addresses.
	Delete(ctx context.Context, userID uuid.UUID) error

	// List returns one page of profiles matching the filter, with users and default addresses loaded.
	List(ctx context.Context, filter ProfileListFilter) ([]*entity.Profile, int64, error)
}
