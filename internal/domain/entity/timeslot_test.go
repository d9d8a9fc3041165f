package entity

import (
	"testing"
	"time"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	t.Run("Valid combination", func(t *testing.T) {
		got, err := CombineDateTime("2026-03-02", "09:30")

		require.NoError(t, err)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 2, got.Day())
		assert.Equal(t, 9, got.Hour())
		assert.Equal(t, 30, got.Minute())
	})

	t.Run("Malformed date", func(t *testing.T) {
		_, err := CombineDateTime("02.03.2026", "09:30")
		assert.ErrorIs(t, err, errs.ErrMalformedTime)
	})

	t.Run("Malformed time of day", func(t *testing.T) {
		_, err := CombineDateTime("2026-03-02", "9:30am")
		assert.ErrorIs(t, err, errs.ErrMalformedTime)
	})

	t.Run("Nonexistent calendar date", func(t *testing.T) {
		_, err := CombineDateTime("2026-02-30", "09:30")
		assert.ErrorIs(t, err, errs.ErrMalformedTime)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		got, err := ParseDate("2026-03-02")

		require.NoError(t, err)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 2, got.Day())
		assert.Equal(t, 0, got.Hour())
	})

	t.Run("Malformed date", func(t *testing.T) {
		_, err := ParseDate("March 2nd")
		assert.ErrorIs(t, err, errs.ErrMalformedTime)
	})
}

func TestDayBounds(t *testing.T) {
	t.Run("Returns midnight to next midnight", func(t *testing.T) {
		start, end, err := DayBounds("2026-03-02")

		require.NoError(t, err)
		assert.Equal(t, 0, start.Hour())
		assert.Equal(t, 24*time.Hour, end.Sub(start))
	})

	t.Run("Malformed date", func(t *testing.T) {
		_, _, err := DayBounds("not-a-date")
		assert.ErrorIs(t, err, errs.ErrMalformedTime)
	})
}

func TestDaysInclusive(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("Same day counts as one", func(t *testing.T) {
		assert.Equal(t, 1, DaysInclusive(day(2), day(2)))
	})

	t.Run("Both endpoints included", func(t *testing.T) {
		assert.Equal(t, 7, DaysInclusive(day(2), day(8)))
	})

	t.Run("Time of day is ignored", func(t *testing.T) {
		from := time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)
		to := time.Date(2026, 3, 3, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, 2, DaysInclusive(from, to))
	})

	t.Run("Reversed range is zero", func(t *testing.T) {
		assert.Equal(t, 0, DaysInclusive(day(8), day(2)))
	})
}

func TestWithinWorkingHours(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC)
	}

	t.Run("Inside the window", func(t *testing.T) {
		assert.True(t, WithinWorkingHours(at(9), at(17), 8, 18))
	})

	t.Run("Full window is allowed", func(t *testing.T) {
		assert.True(t, WithinWorkingHours(at(8), at(18), 8, 18))
	})

	t.Run("Ending exactly at close is allowed", func(t *testing.T) {
		assert.True(t, WithinWorkingHours(at(17), at(18), 8, 18))
	})

	t.Run("Starting before open is rejected", func(t *testing.T) {
		assert.False(t, WithinWorkingHours(at(7), at(9), 8, 18))
	})

	t.Run("Ending after close is rejected", func(t *testing.T) {
		assert.False(t, WithinWorkingHours(at(17), at(19), 8, 18))
	})

	t.Run("Starting at close is rejected", func(t *testing.T) {
		assert.False(t, WithinWorkingHours(at(18), at(19), 8, 18))
	})
}
