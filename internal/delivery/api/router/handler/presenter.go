package handler

import (
	"time"

	"account/internal/domain/entity"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// UserResponse is the public view of a user. The password hash never leaves the service.
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	FullName   string     `json:"full_name"`
	Role       string     `json:"role"`
	RoleLabel  string     `json:"role_label"`
	IsStaff    bool       `json:"is_staff"`
	IsActive   bool       `json:"is_active"`
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login"`
}

// AddressResponse is the public view of a delivery address.
type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	House      string    `json:"house"`
	Street     string    `json:"street"`
	Block      *string   `json:"block"`
	Area       string    `json:"area"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Display    string    `json:"display"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	UserID           uuid.UUID        `json:"user_id"`
	BirthDate        *string          `json:"birth_date"`
	Gender           *string          `json:"gender"`
	GenderLabel      string           `json:"gender_label,omitempty"`
	Phone            *string          `json:"phone"`
	DefaultAddressID *uuid.UUID       `json:"default_address_id"`
	DefaultAddress   *AddressResponse `json:"default_address"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// PageResponse wraps one page of a staff listing.
type PageResponse[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// UserRow is one line of the staff user listing.
type UserRow struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	DateJoined time.Time `json:"date_joined"`
}

// ProfileRow is one line of the staff profile listing.
type ProfileRow struct {
	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Gender         string    `json:"gender"`
	DefaultAddress string    `json:"default_address"`
	CreatedAt      time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		FullName:   user.FullName(),
		Role:       user.Role.String(),
		RoleLabel:  user.Role.Label(),
		IsStaff:    user.IsStaff,
		IsActive:   user.IsActive,
		DateJoined: user.DateJoined,
		LastLogin:  user.LastLogin,
	}
}

func newAddressResponse(address *entity.DeliveryAddress, defaultID *uuid.UUID) *AddressResponse {
	if address == nil {
		return nil
	}

	return &AddressResponse{
		ID:         address.ID,
		House:      address.House,
		Street:     address.Street,
		Block:      address.Block,
		Area:       address.Area,
		City:       address.City,
		PostalCode: address.PostalCode,
		Display:    address.String(),
		IsDefault:  defaultID != nil && *defaultID == address.ID,
		CreatedAt:  address.CreatedAt,
		UpdatedAt:  address.UpdatedAt,
	}
}

func newProfileResponse(profile *entity.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		UserID:           profile.UserID,
		Phone:            profile.Phone,
		DefaultAddressID: profile.DefaultAddressID,
		DefaultAddress:   newAddressResponse(profile.DefaultAddress, profile.DefaultAddressID),
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}
	if profile.BirthDate != nil {
		birthDate := profile.BirthDate.Format(dateLayout)
		resp.BirthDate = &birthDate
	}
	if profile.Gender != nil {
		gender := string(*profile.Gender)
		resp.Gender = &gender
		resp.GenderLabel = profile.Gender.Label()
	}

	return resp
}

func newUserRow(user *entity.User) UserRow {
	return UserRow{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.FullName(),
		Role:       user.Role.Label(),
		IsActive:   user.IsActive,
		DateJoined: user.DateJoined,
	}
}

func newProfileRow(profile *entity.Profile) ProfileRow {
	row := ProfileRow{
		UserID:    profile.UserID,
		CreatedAt: profile.CreatedAt,
	}
	if profile.User != nil {
		row.Email = profile.User.Email
		row.Name = profile.User.FullName()
	}
	if profile.Phone != nil {
		row.Phone = *profile.Phone
	}
	if profile.Gender != nil {
		row.Gender = profile.Gender.Label()
	}
	if profile.DefaultAddress != nil {
		row.DefaultAddress = profile.DefaultAddress.String()
	}

	return row
}
