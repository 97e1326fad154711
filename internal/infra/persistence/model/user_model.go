package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:varchar(254);uniqueIndex:idx_users_email;not null"`
	FirstName    string     `gorm:"type:varchar(50);not null;index:idx_users_name,priority:1"`
	LastName     string     `gorm:"type:varchar(50);not null;index:idx_users_name,priority:2"`
	Role         string     `gorm:"type:varchar(20);not null;check:chk_users_role,role IN ('customer','staff','admin')"`
	PasswordHash string     `gorm:"type:varchar(128);not null"`
	IsStaff      bool       `gorm:"not null"`
	IsSuperuser  bool       `gorm:"not null"`
	IsActive     bool       `gorm:"not null;index"`
	DateJoined   time.Time  `gorm:"not null;autoCreateTime"`
	LastLogin    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered ID when the caller did not.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
