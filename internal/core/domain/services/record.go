package services

import (
	"strings"
	"time"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"
)

// skipReason explains why an order was excluded from every aggregate.
type skipReason string

const (
	skipNone              skipReason = ""
	skipMissingDeliveryNo skipReason = "missing delivery number"
	skipMalformedStatus   skipReason = "malformed status"
)

// record is an order with its fields parsed once per run.
type record struct {
	order  *delivery.Order
	code   int
	bucket delivery.Bucket
	// loadingDay is zero when the loading date is absent or unparsable.
	loadingDay kernel.DayKey
	event      time.Time
	hasEvent   bool

	loadingDateMissing    bool
	loadingDateUnparsable bool
	eventTimeUnparsable   bool
}

// classifier parses orders into records.
type classifier struct {
	taxonomy delivery.Taxonomy
	calendar kernel.Calendar
}

func (c classifier) classify(o *delivery.Order) (record, skipReason, error) {
	if strings.TrimSpace(o.DeliveryNo) == "" {
		return record{}, skipMissingDeliveryNo, nil
	}
	code, err := o.StatusCode()
	if err != nil {
		return record{}, skipMalformedStatus, err
	}

	r := record{
		order:  o,
		code:   code,
		bucket: c.taxonomy.Classify(code),
	}

	var loading time.Time
	var hasLoading bool
	if strings.TrimSpace(o.LoadingDate) == "" {
		r.loadingDateMissing = true
	} else if loading, hasLoading = c.calendar.Parse(o.LoadingDate); hasLoading {
		r.loadingDay = c.calendar.DayKey(loading)
	} else {
		r.loadingDateUnparsable = true
	}

	// A bare loading day has no hour; only a loading instant can stand in
	// for the change time.
	if hasLoading {
		r.event, r.hasEvent = c.calendar.ParseInstant(o.LoadingDate)
	}
	if strings.TrimSpace(o.StatusChangedAt) != "" {
		if changed, ok := c.calendar.Parse(o.StatusChangedAt); ok {
			r.event, r.hasEvent = changed, true
		} else {
			r.eventTimeUnparsable = true
		}
	}

	return r, skipNone, nil
}

// classifyAll keeps only the orders that can be counted.
func (c classifier) classifyAll(orders []delivery.Order) []record {
	records := make([]record, 0, len(orders))
	for i := range orders {
		if r, reason, _ := c.classify(&orders[i]); reason == skipNone {
			records = append(records, r)
		}
	}
	return records
}
