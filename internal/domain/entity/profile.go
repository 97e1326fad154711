package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the optional self-declared gender stored on a Profile.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// IsValid checks if the Gender is one of the known codes.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Label returns the human readable name of the Gender.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return string(g)
	}
}

// Profile holds personal data of a User. It shares the User's ID as its identity.
type Profile struct {
	UserID           uuid.UUID        // Primary key; also the owning User's ID.
	BirthDate        *time.Time       // Date only, optional.
	Gender           *Gender          // Optional.
	Phone            *string          // Optional, up to 20 characters.
	DefaultAddressID *uuid.UUID       // Nil until the first address is saved.
	DefaultAddress   *DeliveryAddress // Loaded on demand.
	User             *User            // Loaded on demand.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasDefaultAddress reports whether the profile designates a default address.
func (p *Profile) HasDefaultAddress() bool {
	return p.DefaultAddressID != nil && *p.DefaultAddressID != uuid.Nil
}
