// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeliveryAddress is a shipping location that belongs to exactly one Profile.
type DeliveryAddress struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the address.
	ProfileID  uuid.UUID // Owning profile, which is also the owning user's ID.
	House      string
	Street     string
	Block      *string // Optional.
	Area       string
	City       string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// String renders the address on one line, skipping the block when absent.
func (a *DeliveryAddress) String() string {
	parts := []string{a.House, a.Street}
	if a.Block != nil && *a.Block != "" {
		parts = append(parts, *a.Block)
	}
	parts = append(parts, a.Area, a.City, a.PostalCode)

	return strings.Join(parts, ", ")
}
