package kernel_test

import (
	"testing"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCalendar(t *testing.T, offsetHours int) kernel.Calendar {
	t.Helper()
	cal, err := kernel.NewCalendar(time.FixedZone("test", offsetHours*3600))
	require.NoError(t, err)
	return cal
}

func TestNewCalendar(t *testing.T) {
	_, err := kernel.NewCalendar(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.LoadCalendar("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.LoadCalendar("Nowhere/Atlantis")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cal, err := kernel.LoadCalendar("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cal.Location())
}

func TestCalendar_Parse(t *testing.T) {
	cal := fixedCalendar(t, 2)

	testCases := []struct {
		name string
		raw  string
		day  kernel.DayKey
		hour int
	}{
		{name: "rfc3339 utc", raw: "2024-05-10T23:30:00Z", day: "2024-05-11", hour: 1},
		{name: "rfc3339 fractional", raw: "2024-05-10T08:15:00.123+02:00", day: "2024-05-10", hour: 8},
		{name: "local t separator", raw: "2024-05-10T06:00:00", day: "2024-05-10", hour: 6},
		{name: "local space separator", raw: "2024-05-10 21:45:10", day: "2024-05-10", hour: 21},
		{name: "local minutes", raw: "2024-05-10 13:45", day: "2024-05-10", hour: 13},
		{name: "date only", raw: "2024-05-10", day: "2024-05-10", hour: 0},
		{name: "german date", raw: "10.05.2024", day: "2024-05-10", hour: 0},
		{name: "german date time", raw: "10.05.2024 17:20", day: "2024-05-10", hour: 17},
		{name: "surrounding spaces", raw: "  2024-05-10  ", day: "2024-05-10", hour: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, ok := cal.Parse(tc.raw)

			require.True(t, ok)
			assert.Equal(t, tc.day, cal.DayKey(ts))
			assert.Equal(t, tc.hour, cal.HourOfDay(ts))
		})
	}
}

func TestCalendar_ParseInstant(t *testing.T) {
	cal := fixedCalendar(t, 2)

	ts, ok := cal.ParseInstant("2024-05-10 13:45")
	require.True(t, ok)
	assert.Equal(t, 13, cal.HourOfDay(ts))

	for _, raw := range []string{"2024-05-10", " 10.05.2024 ", "", "garbage"} {
		_, ok = cal.ParseInstant(raw)
		assert.False(t, ok, raw)
	}
}

func TestCalendar_ParseRejectsMalformed(t *testing.T) {
	cal := fixedCalendar(t, 0)

	for _, raw := range []string{"", "   ", "yesterday", "2024-13-01", "31.02.2024", "45000"} {
		_, ok := cal.Parse(raw)
		assert.False(t, ok, raw)
	}
}

func TestCalendar_DayBoundaryUsesZone(t *testing.T) {
	instant := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, kernel.DayKey("2024-01-01"), fixedCalendar(t, 0).DayKey(instant))
	assert.Equal(t, kernel.DayKey("2024-01-02"), fixedCalendar(t, 1).DayKey(instant))
	assert.Equal(t, kernel.DayKey("2024-01-01"), fixedCalendar(t, -5).DayKey(instant))
}

func TestCalendar_MinuteOfDayAndDayStart(t *testing.T) {
	cal := fixedCalendar(t, 1)
	ts := cal.MustParse("2024-03-05 13:44")

	assert.Equal(t, 13*60+44, cal.MinuteOfDay(ts))

	start := cal.DayStart("2024-03-05")
	assert.Equal(t, kernel.DayKey("2024-03-05"), cal.DayKey(start))
	assert.Equal(t, 0, cal.MinuteOfDay(start))
}

func TestCalendar_MustParsePanics(t *testing.T) {
	cal := fixedCalendar(t, 0)
	assert.Panics(t, func() { cal.MustParse("garbage") })
}

func TestClocks(t *testing.T) {
	at := time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, at, kernel.FixedClock{At: at}.Now())
	assert.WithinDuration(t, time.Now(), kernel.SystemClock{}.Now(), time.Minute)
}
