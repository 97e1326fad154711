package repository

import (
	"time"

	"account/internal/domain/entity"
)

// Page selects a window of a sorted result set. Number starts at 1.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}

// UserListFilter narrows the staff user listing.
// Search matches email, first name or last name case-insensitively.
type UserListFilter struct {
	Search   string
	Role     *entity.Role
	IsActive *bool
	Page     Page
}

// ProfileListFilter narrows the staff profile listing.
// Search matches the user's email, first name, last name or the profile phone.
type ProfileListFilter struct {
	Search        string
	Gender        *entity.Gender
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Page          Page
}
