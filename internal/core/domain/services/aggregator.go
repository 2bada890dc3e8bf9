package services

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/shift"
	"dashboard/internal/core/domain/model/summary"
)

// AggregatorConfig wires the engine's collaborators.
type AggregatorConfig struct {
	Taxonomy    delivery.Taxonomy
	Calendar    kernel.Calendar
	Schedule    shift.Schedule
	TrendWindow int
	Logger      *slog.Logger
}

// Aggregator turns a flat order snapshot into a summary.Summary in one pass.
//
// Per-record problems (missing delivery number, non-numeric status,
// unparsable dates) exclude the record from the affected structures only;
// they are logged at debug level and counted in Summary.Diagnostics.
type Aggregator struct {
	classifier  classifier
	schedule    shift.Schedule
	smoother    TrendSmoother
	trendWindow int
	logger      *slog.Logger
}

// NewAggregator builds an engine. A zero TrendWindow selects DefaultTrendWindow.
func NewAggregator(cfg AggregatorConfig) Aggregator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	window := cfg.TrendWindow
	if window <= 0 {
		window = DefaultTrendWindow
	}
	return Aggregator{
		classifier:  classifier{taxonomy: cfg.Taxonomy, calendar: cfg.Calendar},
		schedule:    cfg.Schedule,
		smoother:    NewTrendSmoother(),
		trendWindow: window,
		logger:      logger.With("component", "aggregator"),
	}
}

// Calendar returns the calendar the engine buckets with.
func (a Aggregator) Calendar() kernel.Calendar {
	return a.classifier.calendar
}

// Taxonomy returns the status taxonomy the engine classifies with.
func (a Aggregator) Taxonomy() delivery.Taxonomy {
	return a.classifier.taxonomy
}

// TrendWindow returns the moving-average window in days.
func (a Aggregator) TrendWindow() int {
	return a.trendWindow
}

type dayAccumulator struct {
	daily   summary.DailySummary
	buckets summary.BucketCounts
}

// Aggregate summarizes orders as of now. It returns nil for empty input,
// which callers present as "no data". The result depends only on orders and
// now; orders is not modified.
func (a Aggregator) Aggregate(orders []delivery.Order, now time.Time) *summary.Summary {
	if len(orders) == 0 {
		return nil
	}

	calendar := a.classifier.calendar
	today := calendar.DayKey(now)
	s := summary.New(now, today)
	days := make(map[kernel.DayKey]*dayAccumulator)
	records := make([]record, 0, len(orders))

	for i := range orders {
		r, reason, err := a.classifier.classify(&orders[i])
		if reason != skipNone {
			a.skip(&s.Diagnostics, &orders[i], reason, err)
			continue
		}
		a.noteDateProblems(&s.Diagnostics, r)
		records = append(records, r)

		a.countScalars(s, r)

		if !r.loadingDay.IsZero() {
			acc, ok := days[r.loadingDay]
			if !ok {
				acc = &dayAccumulator{daily: summary.DailySummary{
					Date:         r.loadingDay,
					StatusCounts: make(map[int]int),
				}}
				days[r.loadingDay] = acc
			}
			acc.daily.Total++
			acc.daily.StatusCounts[r.code]++
			if r.bucket == delivery.Done {
				acc.daily.Done++
			}
			if r.order.TotalWeight.Valid {
				acc.daily.Weight = acc.daily.Weight.Add(r.order.TotalWeight.Decimal)
			}
			acc.buckets.Add(r.bucket)
		}

		if r.hasEvent && calendar.DayKey(r.event) == today {
			hour := calendar.HourOfDay(r.event)
			counts := s.HourlyStatusSnapshots[hour]
			counts.Add(r.bucket)
			s.HourlyStatusSnapshots[hour] = counts

			if r.bucket == delivery.Done {
				if sh := a.schedule.Classify(r.event); sh != shift.None {
					s.ShiftDoneCounts[sh]++
				}
			}
		}
	}

	s.RemainingTotal = s.Total - s.DoneTotal

	dayKeys := slices.Sorted(maps.Keys(days))
	for _, k := range dayKeys {
		s.DailySummaries = append(s.DailySummaries, days[k].daily)
	}
	s.StatusByLoadingDate = gapFill(days, dayKeys, today)

	s.DelayedOrders = detectDelays(records, today)
	s.DailyBacklog, s.Agents = trackBacklog(dayKeys, records)

	backlogSeries := make([]summary.SeriesPoint, 0, len(s.DailyBacklog))
	for _, row := range s.DailyBacklog {
		backlogSeries = append(backlogSeries, summary.SeriesPoint{Date: row.Date, Value: float64(row.Total)})
	}
	s.BacklogTrend = a.smoother.Smooth(backlogSeries, a.trendWindow)

	doneSeries := make([]summary.SeriesPoint, 0, len(s.StatusByLoadingDate))
	for _, k := range slices.Sorted(maps.Keys(s.StatusByLoadingDate)) {
		doneSeries = append(doneSeries, summary.SeriesPoint{Date: k, Value: float64(s.StatusByLoadingDate[k].Done)})
	}
	s.DoneTrend = a.smoother.Smooth(doneSeries, a.trendWindow)

	if s.Diagnostics.SkippedRecords > 0 {
		a.logger.Warn("Aggregation skipped malformed records",
			"skipped", s.Diagnostics.SkippedRecords,
			"total", len(orders),
		)
	}

	return s
}

func (a Aggregator) countScalars(s *summary.Summary, r record) {
	s.Total++
	s.StatusCounts[r.code]++

	switch r.bucket {
	case delivery.New:
		s.NewOrdersTotal++
	case delivery.InProgress:
		s.InProgressTotal++
	case delivery.Done:
		s.DoneTotal++
	case delivery.Unknown:
		s.UnknownTotal++
	}

	if t, err := delivery.ParseType(string(r.order.DeliveryType)); err == nil && t != "" {
		s.CountsByDeliveryType[t]++
	}
	if country := strings.ToUpper(strings.TrimSpace(r.order.Country)); country != "" {
		s.CountsByCountry[country]++
	}
	s.CountsByAgent[r.order.Agent()]++

	if r.order.TotalWeight.Valid {
		s.TotalWeight = s.TotalWeight.Add(r.order.TotalWeight.Decimal)
	}
}

func (a Aggregator) skip(d *summary.Diagnostics, o *delivery.Order, reason skipReason, err error) {
	d.SkippedRecords++
	switch reason {
	case skipMissingDeliveryNo:
		d.MissingDeliveryNo++
	case skipMalformedStatus:
		d.MalformedStatus++
	}

	attrs := []any{"deliveryNo", o.DeliveryNo, "reason", string(reason)}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	a.logger.Debug("Skipping delivery record", attrs...)
}

func (a Aggregator) noteDateProblems(d *summary.Diagnostics, r record) {
	switch {
	case r.loadingDateMissing:
		d.MissingLoadingDate++
	case r.loadingDateUnparsable:
		d.UnparsableLoadingDate++
		a.logger.Debug("Unparsable loading date", "deliveryNo", r.order.DeliveryNo, "loadingDate", r.order.LoadingDate)
	}
	if r.eventTimeUnparsable {
		d.UnparsableEventTime++
		a.logger.Debug("Unparsable status timestamp", "deliveryNo", r.order.DeliveryNo, "statusChangedAt", r.order.StatusChangedAt)
	}
}

// gapFill returns the per-day bucket counts, adding zero entries for every
// missing day after the first real day and before today. Days after today
// are kept as recorded and never synthesized.
func gapFill(days map[kernel.DayKey]*dayAccumulator, sorted []kernel.DayKey, today kernel.DayKey) map[kernel.DayKey]summary.BucketCounts {
	out := make(map[kernel.DayKey]summary.BucketCounts, len(days))
	for k, acc := range days {
		out[k] = acc.buckets
	}
	if len(sorted) == 0 {
		return out
	}
	for d := sorted[0].AddDays(1); d.Before(today); d = d.AddDays(1) {
		if _, ok := out[d]; !ok {
			out[d] = summary.BucketCounts{}
		}
	}
	return out
}
