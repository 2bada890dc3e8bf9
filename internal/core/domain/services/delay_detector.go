package services

import (
	"time"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/summary"
)

// DelayDetector finds open orders whose loading day lies before today.
//
// An order qualifies only if its loading date parses, its status is New or
// InProgress and its loading day is strictly before now's day. Orders with an
// Unknown or unparsable status or date can never be proven delayed.
type DelayDetector struct {
	classifier classifier
}

// NewDelayDetector returns a detector bucketing in calendar's zone.
func NewDelayDetector(taxonomy delivery.Taxonomy, calendar kernel.Calendar) DelayDetector {
	return DelayDetector{classifier: classifier{taxonomy: taxonomy, calendar: calendar}}
}

// Detect returns the delayed orders in input order. DelayDays is the number
// of whole calendar days between the loading day and today, so an order that
// was due yesterday has DelayDays 1.
func (d DelayDetector) Detect(orders []delivery.Order, now time.Time) []summary.DelayedOrder {
	return detectDelays(d.classifier.classifyAll(orders), d.classifier.calendar.DayKey(now))
}

func detectDelays(records []record, today kernel.DayKey) []summary.DelayedOrder {
	delayed := make([]summary.DelayedOrder, 0)
	for _, r := range records {
		if r.loadingDay.IsZero() || !r.bucket.IsOpen() || !r.loadingDay.Before(today) {
			continue
		}
		delayed = append(delayed, summary.DelayedOrder{
			Order:     *r.order,
			DelayDays: today.DaysSince(r.loadingDay),
		})
	}
	return delayed
}
