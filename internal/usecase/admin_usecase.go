// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"account/internal/domain/entity"
)

// UserListQuery selects a page of the staff user listing. Page starts at 1.
type UserListQuery struct {
	Search   string
	Role     *entity.Role
	IsActive *bool
	Page     int
}

// ProfileListQuery selects a page of the staff profile listing. Page starts at 1.
type ProfileListQuery struct {
	Search        string
	Gender        *entity.Gender
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Page          int
}

// PageInfo describes the window returned by a listing.
type PageInfo struct {
	Page     int
	PageSize int
	Total    int64
}

// UserPage is one page of users ordered by first name then last name.
type UserPage struct {
	Users []*entity.User
	PageInfo
}

// ProfilePage is one page of profiles ordered by creation time.
type ProfilePage struct {
	Profiles []*entity.Profile
	PageInfo
}

// AdminUsecase defines the staff reporting operations.
type AdminUsecase interface {
	ListUsers(ctx context.Context, query *UserListQuery) (*UserPage, error)
	ListProfiles(ctx context.Context, query *ProfileListQuery) (*ProfilePage, error)
}
