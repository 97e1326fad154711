package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAddressConstraint names the profiles -> delivery_addresses foreign key.
// It is created after both tables exist because the two tables reference each other.
const DefaultAddressConstraint = "fk_profiles_default_address"

// DefaultAddressIndex names the unique index that keeps one profile per default address.
const DefaultAddressIndex = "idx_profiles_default_address"

// ProfileModel mirrors the 'profiles' table. UserID is both the primary key and users.id.
type ProfileModel struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BirthDate        *time.Time `gorm:"type:date"`
	Gender           *string    `gorm:"type:varchar(1);index;check:chk_profiles_gender,gender IN ('M','F','O')"`
	Phone            *string    `gorm:"type:varchar(20)"`
	DefaultAddressID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_profiles_default_address"`
	CreatedAt        time.Time  `gorm:"not null;index"`
	UpdatedAt        time.Time  `gorm:"not null"`

	User           *UserModel            `gorm:"foreignKey:UserID;references:ID;constraint:fk_profiles_user,OnDelete:CASCADE"`
	DefaultAddress *DeliveryAddressModel `gorm:"foreignKey:DefaultAddressID;references:ID;constraint:fk_profiles_default_address,OnDelete:SET NULL;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
