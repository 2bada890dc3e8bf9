package kernel

import (
	"fmt"
	"time"

	"dashboard/internal/pkg/errs"
)

// DayKeyLayout is the wire and map-key layout of a DayKey.
const DayKeyLayout = "2006-01-02"

const hoursPerDay = 24

// DayKey identifies one calendar day in the calendar's zone. Keys compare
// chronologically as plain strings.
type DayKey string

// ParseDayKey validates s as a YYYY-MM-DD calendar day.
func ParseDayKey(s string) (DayKey, error) {
	t, err := time.Parse(DayKeyLayout, s)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("day key", fmt.Errorf("%q is not YYYY-MM-DD: %w", s, err))
	}
	return DayKey(t.Format(DayKeyLayout)), nil
}

// String returns the YYYY-MM-DD form.
func (k DayKey) String() string {
	return string(k)
}

// IsZero reports whether k is the "no date" sentinel.
func (k DayKey) IsZero() bool {
	return k == ""
}

// Before reports whether k is strictly earlier than other.
func (k DayKey) Before(other DayKey) bool {
	return k < other
}

// After reports whether k is strictly later than other.
func (k DayKey) After(other DayKey) bool {
	return k > other
}

// AddDays returns the key n calendar days after k (n may be negative).
func (k DayKey) AddDays(n int) DayKey {
	return DayKey(k.civil().AddDate(0, 0, n).Format(DayKeyLayout))
}

// DaysSince returns the number of whole calendar days from other to k.
// Computed on civil dates so DST transitions never shorten a day.
func (k DayKey) DaysSince(other DayKey) int {
	return int(k.civil().Sub(other.civil()).Hours() / hoursPerDay)
}

// civil maps k to midnight UTC of the same calendar date.
func (k DayKey) civil() time.Time {
	t, err := time.Parse(DayKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}
