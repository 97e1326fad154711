package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryAddressModel is the GORM-specific struct for the 'delivery_addresses' table.
type DeliveryAddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID  uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_addresses_profile"`
	House      string    `gorm:"type:varchar(20);not null"`
	Street     string    `gorm:"type:varchar(50);not null"`
	Block      *string   `gorm:"type:varchar(20)"`
	Area       string    `gorm:"type:varchar(100);not null"`
	City       string    `gorm:"type:varchar(50);not null"`
	PostalCode string    `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Profile *ProfileModel `gorm:"foreignKey:ProfileID;references:UserID;constraint:fk_delivery_addresses_profile,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAddressModel) TableName() string {
	return "delivery_addresses"
}

// BeforeCreate assigns a time-ordered ID when the caller did not.
func (m *DeliveryAddressModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
