package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID              uint64    `gorm:"primaryKey"`
	Username        string    `gorm:"size:50;not null;uniqueIndex:idx_users_username"`
	Password        string    `gorm:"size:100;not null"`
	DefaultLocation *string   `gorm:"size:100"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
