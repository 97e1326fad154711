package entity

// Authenticatable is implemented by accounts that can log in with a credential.
type Authenticatable interface {
	LoginIdentifier() string
	CredentialHash() string
	HasUsablePassword() bool
	CanAuthenticate() bool
}

// PermissionHolder is implemented by accounts that carry staff and superuser flags.
type PermissionHolder interface {
	HasStaffAccess() bool
	IsPrivileged() bool
}
