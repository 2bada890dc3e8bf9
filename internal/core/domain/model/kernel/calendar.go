package kernel

import (
	"fmt"
	"strings"
	"time"

	"dashboard/internal/pkg/errs"
)

// DefaultTimezone is the deployment zone used when none is configured.
const DefaultTimezone = "Europe/Berlin"

const minutesPerHour = 60

// zonedLayouts carry their own offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// localLayouts are interpreted in the calendar's zone.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	DayKeyLayout,
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
}

// dateOnlyLayouts name a day without a time of day.
var dateOnlyLayouts = []string{
	DayKeyLayout,
	"02.01.2006",
}

// Calendar buckets instants into calendar days and hours of one fixed zone.
// The zero value buckets in UTC.
type Calendar struct {
	loc *time.Location
}

// NewCalendar returns a calendar for loc.
func NewCalendar(loc *time.Location) (Calendar, error) {
	if loc == nil {
		return Calendar{}, errs.NewValueIsRequiredError("calendar location")
	}
	return Calendar{loc: loc}, nil
}

// LoadCalendar resolves an IANA zone name such as "Europe/Berlin".
func LoadCalendar(name string) (Calendar, error) {
	if strings.TrimSpace(name) == "" {
		return Calendar{}, errs.NewValueIsRequiredError("timezone")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Calendar{}, errs.NewValueIsInvalidErrorWithCause("timezone", err)
	}
	return Calendar{loc: loc}, nil
}

// Location returns the calendar's zone.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Parse normalizes a raw date or instant. ok is false for empty or
// unrecognized input, which callers treat as "no date".
func (c Calendar) Parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(c.Location()), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, c.Location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseInstant is Parse for inputs that carry a time of day. A bare date
// reports ok == false, since its midnight is not an observed instant.
func (c Calendar) ParseInstant(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateOnlyLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return time.Time{}, false
		}
	}
	return c.Parse(s)
}

// MustParse is Parse for trusted fixtures; it panics on bad input.
func (c Calendar) MustParse(raw string) time.Time {
	t, ok := c.Parse(raw)
	if !ok {
		panic(fmt.Sprintf("kernel: unparsable time %q", raw))
	}
	return t
}

// DayKey returns the calendar day of t in the calendar's zone.
func (c Calendar) DayKey(t time.Time) DayKey {
	return DayKey(t.In(c.Location()).Format(DayKeyLayout))
}

// HourOfDay returns 0..23 for t in the calendar's zone.
func (c Calendar) HourOfDay(t time.Time) int {
	return t.In(c.Location()).Hour()
}

// MinuteOfDay returns 0..1439 for t in the calendar's zone.
func (c Calendar) MinuteOfDay(t time.Time) int {
	local := t.In(c.Location())
	return local.Hour()*minutesPerHour + local.Minute()
}

// DayStart returns local midnight of k.
func (c Calendar) DayStart(k DayKey) time.Time {
	civil := k.civil()
	return time.Date(civil.Year(), civil.Month(), civil.Day(), 0, 0, 0, 0, c.Location())
}
