// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// unusablePasswordPrefix marks a password hash that can never match a login attempt.
const unusablePasswordPrefix = "!"

// User is the core entity in the system, representing a unique authenticated account.
// The email address is the login identifier; there is no separate username.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email        string     // Normalized email, unique across all users.
	FirstName    string     // May be blank.
	LastName     string     // May be blank.
	Role         Role       // Business role, defaults to RoleCustomer.
	PasswordHash string     // Hashed credential, or an unusable marker.
	IsStaff      bool       // Grants access to the staff reporting endpoints.
	IsSuperuser  bool       // Grants every permission.
	IsActive     bool       // Inactive users cannot log in.
	DateJoined   time.Time  // Set once at creation.
	LastLogin    *time.Time // Nil until the first successful login.
	Profile      *Profile   // Loaded on demand; nil otherwise.
}

var (
	_ Authenticatable  = (*User)(nil)
	_ PermissionHolder = (*User)(nil)
)

// FullName joins first and last name, trimming the separator when either is blank.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// LoginIdentifier returns the email address used to authenticate.
func (u *User) LoginIdentifier() string {
	return u.Email
}

// CredentialHash returns the stored password hash.
func (u *User) CredentialHash() string {
	return u.PasswordHash
}

// HasUsablePassword reports whether a password was set for the user.
func (u *User) HasUsablePassword() bool {
	return u.PasswordHash != "" && !strings.HasPrefix(u.PasswordHash, unusablePasswordPrefix)
}

// SetUnusablePassword stores a marker that no password check will accept.
func (u *User) SetUnusablePassword() {
	u.PasswordHash = unusablePasswordPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// CanAuthenticate reports whether the account is allowed to log in.
func (u *User) CanAuthenticate() bool {
	return u.IsActive
}

// HasStaffAccess reports whether the user may use the staff reporting endpoints.
func (u *User) HasStaffAccess() bool {
	return u.IsActive && u.IsStaff
}

// IsPrivileged reports whether the user holds every permission.
func (u *User) IsPrivileged() bool {
	return u.IsActive && u.IsSuperuser
}

// TokenRoles returns the role claims issued in access tokens.
func (u *User) TokenRoles() Roles {
	roles := Roles{u.Role}
	if u.IsStaff && u.Role != RoleStaff {
		roles = append(roles, RoleStaff)
	}

	return roles
}
