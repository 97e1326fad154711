package repository

import (
	"context"

	"account/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for delivery address persistence.
type AddressRepository interface {
	// Create persists a new address. The owning profile must exist.
	Create(ctx context.Context, address *entity.DeliveryAddress) error

	// Update modifies an existing address record.
	Update(ctx context.Context, address *entity.DeliveryAddress) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAddress, error)

	// FindByProfile retrieves all addresses of a profile ordered by creation time.
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.DeliveryAddress, error)

	// Delete removes an address. A profile that used it as default loses its default.
	Delete(ctx context.Context, id uuid.UUID) error
}
