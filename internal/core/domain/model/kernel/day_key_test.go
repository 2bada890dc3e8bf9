package kernel_test

import (
	"testing"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayKey(t *testing.T) {
	t.Run("accepts calendar day", func(t *testing.T) {
		k, err := kernel.ParseDayKey("2024-02-29")

		require.NoError(t, err)
		assert.Equal(t, kernel.DayKey("2024-02-29"), k)
	})

	t.Run("rejects impossible day", func(t *testing.T) {
		_, err := kernel.ParseDayKey("2023-02-29")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := kernel.ParseDayKey("01.02.2024")
		require.Error(t, err)
	})
}

func TestDayKey_Arithmetic(t *testing.T) {
	k := kernel.DayKey("2024-12-30")

	assert.Equal(t, kernel.DayKey("2025-01-02"), k.AddDays(3))
	assert.Equal(t, kernel.DayKey("2024-12-29"), k.AddDays(-1))
	assert.Equal(t, 3, k.AddDays(3).DaysSince(k))
	assert.Equal(t, -1, k.AddDays(-1).DaysSince(k))
	assert.True(t, k.Before(k.AddDays(1)))
	assert.True(t, k.AddDays(1).After(k))
	assert.False(t, k.Before(k))
}

func TestDayKey_DaysSinceAcrossDST(t *testing.T) {
	// 2024-03-31 has 23 hours in Europe/Berlin; civil arithmetic still counts one day.
	assert.Equal(t, 1, kernel.DayKey("2024-04-01").DaysSince("2024-03-31"))
	assert.Equal(t, 1, kernel.DayKey("2024-10-28").DaysSince("2024-10-27"))
}

func TestDayKey_IsZero(t *testing.T) {
	var k kernel.DayKey
	assert.True(t, k.IsZero())
	assert.False(t, kernel.DayKey("2024-01-01").IsZero())
}
