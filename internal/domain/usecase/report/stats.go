package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// weekdays is the Monday-first bucket order of the weekday histogram
var weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// UserStatistics aggregates booking count, total and average duration and
// the most recent booking date per user, sorted by count descending.
// Ties break on username so repeated runs stay deterministic.
func (s *Service) UserStatistics(ctx context.Context, filter entity.BookingFilter) ([]entity.UserStats, error) {
	bookings, err := s.bookingRepo.ListDetailed(ctx, filter)
	if err != nil {
		return nil, err
	}

	type accum struct {
		count int
		hours float64
		last  entity.BookingDetail
	}
	byUser := make(map[string]*accum)
	for _, b := range bookings {
		a, ok := byUser[b.Username]
		if !ok {
			a = &accum{last: b}
			byUser[b.Username] = a
		}
		a.count++
		a.hours += b.EndTime.Sub(b.StartTime).Hours()
		if b.StartTime.After(a.last.StartTime) {
			a.last = b
		}
	}

	stats := make([]entity.UserStats, 0, len(byUser))
	for username, a := range byUser {
		avg := 0.0
		if a.count > 0 {
			avg = a.hours / float64(a.count)
		}
		stats = append(stats, entity.UserStats{
			Username:     username,
			BookingCount: a.count,
			TotalHours:   entity.RoundHours(a.hours),
			AvgHours:     entity.RoundHours(avg),
			LastBooking:  a.last.StartTime.Format(entity.DateLayout),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].BookingCount != stats[j].BookingCount {
			return stats[i].BookingCount > stats[j].BookingCount
		}
		return stats[i].Username < stats[j].Username
	})
	return stats, nil
}

// WeekdayDistribution buckets bookings by the weekday of their start,
// always returning all seven buckets Monday through Sunday
func (s *Service) WeekdayDistribution(ctx context.Context, filter entity.BookingFilter) ([]entity.WeekdayCount, error) {
	bookings, err := s.bookingRepo.ListDetailed(ctx, filter)
	if err != nil {
		return nil, err
	}

	counts := [7]int{}
	for _, b := range bookings {
		// time.Weekday is Sunday-first; shift to Monday-first buckets
		counts[(int(b.StartTime.Weekday())+6)%7]++
	}

	result := make([]entity.WeekdayCount, 7)
	for i, day := range weekdays {
		result[i] = entity.WeekdayCount{Weekday: day, Count: counts[i]}
	}
	return result, nil
}

// LocationDistribution buckets bookings by location. Every catalog location
// appears even with zero bookings; locations present only in the data are
// appended after the catalog, sorted by name.
func (s *Service) LocationDistribution(ctx context.Context, filter entity.BookingFilter) ([]entity.LocationCount, error) {
	bookings, err := s.bookingRepo.ListDetailed(ctx, filter)
	if err != nil {
		return nil, err
	}
	known, err := s.workplaceRepo.Locations(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.Location]++
	}

	result := make([]entity.LocationCount, 0, len(known))
	seen := make(map[string]bool, len(known))
	for _, loc := range known {
		result = append(result, entity.LocationCount{Location: loc, Count: counts[loc]})
		seen[loc] = true
	}

	var extra []string
	for loc := range counts {
		if !seen[loc] {
			extra = append(extra, loc)
		}
	}
	sort.Strings(extra)
	for _, loc := range extra {
		result = append(result, entity.LocationCount{Location: loc, Count: counts[loc]})
	}
	return result, nil
}

// HourDistribution buckets bookings by their start hour over the working
// window, one bucket per hour from open through close inclusive. Starts
// outside the window are silently excluded.
func (s *Service) HourDistribution(ctx context.Context, filter entity.BookingFilter) ([]entity.HourCount, error) {
	bookings, err := s.bookingRepo.ListDetailed(ctx, filter)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, b := range bookings {
		hour := b.StartTime.Hour()
		if hour >= s.window.OpenHour && hour <= s.window.CloseHour {
			counts[hour]++
		}
	}

	result := make([]entity.HourCount, 0, s.window.CloseHour-s.window.OpenHour+1)
	for hour := s.window.OpenHour; hour <= s.window.CloseHour; hour++ {
		result = append(result, entity.HourCount{
			Hour:  fmt.Sprintf("%02d:00", hour),
			Count: counts[hour],
		})
	}
	return result, nil
}
