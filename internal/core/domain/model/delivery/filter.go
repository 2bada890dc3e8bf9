package delivery

import (
	"errors"
	"slices"
	"strings"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// Filter narrows the order snapshot before aggregation. Empty dimensions
// match everything; From and To are inclusive loading days.
type Filter struct {
	Countries []string
	Agents    []string
	Types     []Type
	From      kernel.DayKey
	To        kernel.DayKey
}

// NewFilter normalizes countries to upper case and types to their canonical
// spelling. Blank entries are dropped.
func NewFilter(countries, agents, types []string, from, to string) (Filter, error) {
	var (
		f   Filter
		err error
	)

	for _, c := range countries {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			f.Countries = append(f.Countries, c)
		}
	}
	for _, a := range agents {
		if a = strings.TrimSpace(a); a != "" {
			f.Agents = append(f.Agents, a)
		}
	}
	for _, raw := range types {
		t, typeErr := ParseType(raw)
		if typeErr != nil {
			err = errors.Join(err, typeErr)
			continue
		}
		if t != "" {
			f.Types = append(f.Types, t)
		}
	}

	if strings.TrimSpace(from) != "" {
		k, dayErr := kernel.ParseDayKey(strings.TrimSpace(from))
		if dayErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("from", dayErr))
		}
		f.From = k
	}
	if strings.TrimSpace(to) != "" {
		k, dayErr := kernel.ParseDayKey(strings.TrimSpace(to))
		if dayErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("to", dayErr))
		}
		f.To = k
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("to", f.To, f.From, "any later day"))
	}

	if err != nil {
		return Filter{}, err
	}
	return f, nil
}

// IsEmpty reports whether the filter matches every order.
func (f Filter) IsEmpty() bool {
	return len(f.Countries) == 0 && len(f.Agents) == 0 && len(f.Types) == 0 && !f.HasDateRange()
}

// HasDateRange reports whether From or To is set.
func (f Filter) HasDateRange() bool {
	return !f.From.IsZero() || !f.To.IsZero()
}

// Match reports whether o passes every dimension. Loading dates are bucketed
// with calendar; an order without a parsable loading date never matches a
// date range.
func (f Filter) Match(o Order, calendar kernel.Calendar) bool {
	if len(f.Countries) > 0 && !slices.Contains(f.Countries, strings.ToUpper(strings.TrimSpace(o.Country))) {
		return false
	}
	if len(f.Agents) > 0 && !slices.Contains(f.Agents, o.Agent()) {
		return false
	}
	if len(f.Types) > 0 {
		t, err := ParseType(string(o.DeliveryType))
		if err != nil || !slices.Contains(f.Types, t) {
			return false
		}
	}
	if !f.HasDateRange() {
		return true
	}

	loading, ok := calendar.Parse(o.LoadingDate)
	if !ok {
		return false
	}
	day := calendar.DayKey(loading)
	if !f.From.IsZero() && day.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && day.After(f.To) {
		return false
	}
	return true
}

// Apply returns the matching orders in input order.
func (f Filter) Apply(orders []Order, calendar kernel.Calendar) []Order {
	if f.IsEmpty() {
		return orders
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if f.Match(o, calendar) {
			out = append(out, o)
		}
	}
	return out
}
