package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases domain only", input: "John.Doe@Example.COM", want: "John.Doe@example.com"},
		{name: "trims whitespace", input: "  a@B.io \n", want: "a@b.io"},
		{name: "splits at last at-sign", input: `"a@b"@Host.Org`, want: `"a@b"@host.org`},
		{name: "no at-sign kept as is", input: " Plain ", want: "Plain"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.input))
		})
	}
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&User{FirstName: "Ada", LastName: "Lovelace"}).FullName())
	assert.Equal(t, "Ada", (&User{FirstName: "Ada"}).FullName())
	assert.Equal(t, "Lovelace", (&User{LastName: "Lovelace"}).FullName())
	assert.Equal(t, "", (&User{}).FullName())
}

func TestUser_UnusablePassword(t *testing.T) {
	user := &User{PasswordHash: "$2a$10$abc"}
	assert.True(t, user.HasUsablePassword())

	user.SetUnusablePassword()
	assert.False(t, user.HasUsablePassword())
	assert.True(t, len(user.PasswordHash) > 1)

	assert.False(t, (&User{}).HasUsablePassword())
}

func TestUser_Permissions(t *testing.T) {
	admin := &User{IsActive: true, IsStaff: true, IsSuperuser: true, Role: RoleAdmin}
	assert.True(t, admin.HasStaffAccess())
	assert.True(t, admin.IsPrivileged())
	assert.Equal(t, Roles{RoleAdmin, RoleStaff}, admin.TokenRoles())

	inactive := &User{IsActive: false, IsStaff: true, IsSuperuser: true}
	assert.False(t, inactive.HasStaffAccess())
	assert.False(t, inactive.IsPrivileged())
	assert.False(t, inactive.CanAuthenticate())

	customer := &User{IsActive: true, Role: RoleCustomer}
	assert.False(t, customer.HasStaffAccess())
	assert.Equal(t, Roles{RoleCustomer}, customer.TokenRoles())

	staff := &User{IsActive: true, IsStaff: true, Role: RoleStaff}
	assert.Equal(t, Roles{RoleStaff}, staff.TokenRoles())
}

func TestRoleAndGenderLabels(t *testing.T) {
	assert.Equal(t, "Kitchen Staff", RoleStaff.Label())
	assert.Equal(t, "Customer", RoleCustomer.Label())
	assert.Equal(t, "Admin", RoleAdmin.Label())
	assert.False(t, Role("merchant").IsValid())

	assert.Equal(t, "Other", GenderOther.Label())
	assert.True(t, GenderFemale.IsValid())
	assert.False(t, Gender("X").IsValid())
}

func TestProfile_HasDefaultAddress(t *testing.T) {
	p := &Profile{}
	assert.False(t, p.HasDefaultAddress())

	nilID := uuid.Nil
	p.DefaultAddressID = &nilID
	assert.False(t, p.HasDefaultAddress())

	id := uuid.New()
	p.DefaultAddressID = &id
	assert.True(t, p.HasDefaultAddress())
}

func TestDeliveryAddress_String(t *testing.T) {
	block := "B2"
	addr := &DeliveryAddress{House: "12", Street: "Main St", Area: "Downtown", City: "Springfield", PostalCode: "12345"}
	assert.Equal(t, "12, Main St, Downtown, Springfield, 12345", addr.String())

	addr.Block = &block
	assert.Equal(t, "12, Main St, B2, Downtown, Springfield, 12345", addr.String())
}
