package entity

import "time"

// BookingFilter narrows report queries to an optional start-time range and
// an optional location. Nil/empty fields mean "no restriction".
type BookingFilter struct {
	From     *time.Time // Inclusive lower bound on booking start
	To       *time.Time // Inclusive upper bound on booking start
	Location string     // Restrict to one location when non-empty
}

// UserStats aggregates one user's bookings within a report window
type UserStats struct {
	Username     string  `json:"username"`
	BookingCount int     `json:"booking_count"`
	TotalHours   float64 `json:"total_hours"`
	AvgHours     float64 `json:"avg_duration"`
	LastBooking  string  `json:"last_booking"` // Most recent start date, DateLayout
}

// WeekdayCount is one bucket of the Monday-first weekday histogram
type WeekdayCount struct {
	Weekday string `json:"day"`
	Count   int    `json:"count"`
}

// LocationCount is one bucket of the per-location histogram. Catalog
// locations always appear, zero counts included.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// HourCount is one bucket of the start-hour histogram over the working window
type HourCount struct {
	Hour  string `json:"hour"` // "08:00" style label
	Count int    `json:"count"`
}

// OccupancyReport relates actual bookings to the theoretical maximum
// (desks times days) over a range, as a percentage
type OccupancyReport struct {
	Location     string  `json:"location,omitempty"`
	BookingCount int     `json:"booking_count"`
	DeskCount    int     `json:"desk_count"`
	Days         int     `json:"days"`
	Ratio        float64 `json:"occupancy_percent"`
}

// ExportRow is the flat per-booking row handed to the external spreadsheet
// collaborator
type ExportRow struct {
	Username      string  `json:"username"`
	Location      string  `json:"location"`
	DeskNumber    int     `json:"desk_number"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Weekday       string  `json:"weekday"`
	DurationHours float64 `json:"duration_hours"`
}
