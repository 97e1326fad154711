// Package model holds the GORM table mappings of the account schema.
package model

// All lists every persisted model in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&DeliveryAddressModel{},
	}
}
