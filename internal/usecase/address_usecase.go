// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"account/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput holds the editable fields of a delivery address.
// Its validate tags are the only place the field limits are declared.
type AddressInput struct {
	House      string  `json:"house" validate:"required,max=20"`
	Street     string  `json:"street" validate:"required,max=50"`
	Block      *string `json:"block" validate:"omitempty,max=20"`
	Area       string  `json:"area" validate:"required,max=100"`
	City       string  `json:"city" validate:"required,max=50"`
	PostalCode string  `json:"postal_code" validate:"required,max=10"`
}

// AddressUsecase defines the delivery address operations of a profile owner.
type AddressUsecase interface {
	// SaveAddress persists the address and makes it the profile default when none is set.
	SaveAddress(ctx context.Context, address *entity.DeliveryAddress) error
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.DeliveryAddress, error)
	AddAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.DeliveryAddress, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *AddressInput) (*entity.DeliveryAddress, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
