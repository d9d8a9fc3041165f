package entity

import (
	"fmt"
	"time"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
)

// Wire formats for dates and times-of-day. Timestamps are timezone-naive
// wall-clock values; combination happens in the host's local zone.
const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

// CombineDateTime combines a calendar date ("2006-01-02") with a time of day
// ("15:04") into an absolute timestamp. This is the single combination
// routine used by every entry point; its only failure mode is
// ErrMalformedTime.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+"T"+TimeOfDayLayout, date+"T"+timeOfDay, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", errs.ErrMalformedTime, date, timeOfDay)
	}
	return t, nil
}

// ParseDate parses a calendar date in the wire format
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errs.ErrMalformedTime, date)
	}
	return t, nil
}

// DayBounds returns the half-open [00:00, next-day 00:00) window of a date
func DayBounds(date string) (time.Time, time.Time, error) {
	start, err := ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}

// DaysInclusive counts calendar days between two dates, both endpoints
// included. Used as the occupancy denominator.
func DaysInclusive(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	if toDay.Before(fromDay) {
		return 0
	}
	return int(toDay.Sub(fromDay).Hours()/24) + 1
}

// WithinWorkingHours reports whether [start, end) fits the working window:
// the start hour must fall in [openHour, closeHour) and the end hour in
// (openHour, closeHour]. A booking ending exactly at closing time is
// allowed.
func WithinWorkingHours(start, end time.Time, openHour, closeHour int) bool {
	return start.Hour() >= openHour && start.Hour() < closeHour &&
		end.Hour() > openHour && end.Hour() <= closeHour
}
