// Package shift assigns instants to the two daily operating shifts.
package shift

import (
	"fmt"
	"strconv"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// Shift identifies an operating window. None covers the night hours.
type Shift int

const (
	None Shift = iota
	First
	Second
)

func (s Shift) String() string {
	switch s {
	case First:
		return "shift1"
	case Second:
		return "shift2"
	default:
		return "none"
	}
}

// MarshalText keys shift maps by shift id ("1", "2") in JSON.
func (s Shift) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(int(s))), nil
}

const minutesPerDay = 24 * 60

// Default boundaries in minute of day: 05:45, 13:45, 21:45.
const (
	DefaultFirstStart  = 5*60 + 45
	DefaultSecondStart = 13*60 + 45
	DefaultSecondEnd   = 21*60 + 45
)

// Schedule holds the shift boundaries. Each window includes its start and
// excludes its end; the first shift ends where the second begins.
type Schedule struct {
	calendar    kernel.Calendar
	firstStart  int
	secondStart int
	secondEnd   int
}

// NewDefaultSchedule returns the 05:45 / 13:45 / 21:45 schedule.
func NewDefaultSchedule(calendar kernel.Calendar) Schedule {
	return Schedule{
		calendar:    calendar,
		firstStart:  DefaultFirstStart,
		secondStart: DefaultSecondStart,
		secondEnd:   DefaultSecondEnd,
	}
}

// NewSchedule validates custom boundaries given as minutes of day.
func NewSchedule(calendar kernel.Calendar, firstStart, secondStart, secondEnd int) (Schedule, error) {
	for name, v := range map[string]int{
		"first shift start":  firstStart,
		"second shift start": secondStart,
		"second shift end":   secondEnd,
	} {
		if v < 0 || v > minutesPerDay {
			return Schedule{}, errs.NewValueIsOutOfRangeError(name, v, 0, minutesPerDay)
		}
	}
	if firstStart >= secondStart || secondStart >= secondEnd {
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause(
			"shift boundaries",
			fmt.Errorf("want %d < %d < %d", firstStart, secondStart, secondEnd),
		)
	}
	return Schedule{
		calendar:    calendar,
		firstStart:  firstStart,
		secondStart: secondStart,
		secondEnd:   secondEnd,
	}, nil
}

// ParseClock converts "HH:MM" into a minute of day.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("clock time", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Classify returns the shift t falls into in the schedule's zone.
func (s Schedule) Classify(t time.Time) Shift {
	m := s.calendar.MinuteOfDay(t)
	switch {
	case m >= s.firstStart && m < s.secondStart:
		return First
	case m >= s.secondStart && m < s.secondEnd:
		return Second
	default:
		return None
	}
}
