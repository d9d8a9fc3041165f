package entity

import (
	"testing"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkplace(t *testing.T) {
	t.Run("Valid workplace", func(t *testing.T) {
		desk, err := NewWorkplace(3, "HQ")

		require.NoError(t, err)
		assert.Equal(t, 3, desk.Number)
		assert.Equal(t, "HQ", desk.Location)
	})

	t.Run("Non-positive number", func(t *testing.T) {
		desk, err := NewWorkplace(0, "HQ")

		assert.ErrorIs(t, err, errs.ErrWorkplaceNotFound)
		assert.Nil(t, desk)
	})

	t.Run("Empty location", func(t *testing.T) {
		desk, err := NewWorkplace(3, "")

		assert.ErrorIs(t, err, errs.ErrUnknownLocation)
		assert.Nil(t, desk)
	})
}

func TestWorkplaceLabel(t *testing.T) {
	desk := &Workplace{Number: 3, Location: "HQ"}
	assert.Equal(t, "HQ #3", desk.Label())
}
