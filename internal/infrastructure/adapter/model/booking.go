package model

import (
	"time"
)

// Booking represents the database model for reservations. The overlap
// exclusion constraint on (place_id, [start_time, end_time)) is created by
// the migration layer; GORM tags cannot express it.
type Booking struct {
	ID        uint64    `gorm:"primaryKey"`
	PlaceID   uint64    `gorm:"not null;index:idx_bookings_place_id"`
	UserID    uint64    `gorm:"not null;index:idx_bookings_user_id"`
	StartTime time.Time `gorm:"not null;index:idx_bookings_start_time"`
	EndTime   time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
