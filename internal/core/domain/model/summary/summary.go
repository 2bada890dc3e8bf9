// Package summary defines the read model the analytics engine produces for
// every dashboard view. A Summary is built wholesale per aggregation run and
// never updated in place.
package summary

import (
	"time"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/shift"

	"github.com/shopspring/decimal"
)

// HoursPerDay is the number of hourly snapshot slots.
const HoursPerDay = 24

// Summary is the multi-dimensional aggregate over one input snapshot.
type Summary struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Today       kernel.DayKey `json:"today"`

	Total           int             `json:"total"`
	DoneTotal       int             `json:"doneTotal"`
	RemainingTotal  int             `json:"remainingTotal"`
	InProgressTotal int             `json:"inProgressTotal"`
	NewOrdersTotal  int             `json:"newOrdersTotal"`
	UnknownTotal    int             `json:"unknownTotal"`
	TotalWeight     decimal.Decimal `json:"totalWeight"`

	CountsByDeliveryType map[delivery.Type]int `json:"countsByDeliveryType"`
	CountsByCountry      map[string]int        `json:"countsByCountry"`
	CountsByAgent        map[string]int        `json:"countsByAgent"`
	// Agents is the sorted column set of DailyBacklog.
	Agents       []string    `json:"agents"`
	StatusCounts map[int]int `json:"statusCounts"`

	DailySummaries        []DailySummary                 `json:"dailySummaries"`
	StatusByLoadingDate   map[kernel.DayKey]BucketCounts `json:"statusByLoadingDate"`
	DelayedOrders         []DelayedOrder                 `json:"delayedOrdersList"`
	DailyBacklog          []BacklogRow                   `json:"dailyBacklogChartData"`
	BacklogTrend          []TrendPoint                   `json:"backlogTrend"`
	DoneTrend             []TrendPoint                   `json:"doneTrend"`
	HourlyStatusSnapshots map[int]BucketCounts           `json:"hourlyStatusSnapshots"`
	ShiftDoneCounts       map[shift.Shift]int            `json:"shiftDoneCounts"`

	Diagnostics Diagnostics `json:"diagnostics"`
}

// New returns an empty Summary with every map allocated and the dense
// hourly and shift keys present.
func New(now time.Time, today kernel.DayKey) *Summary {
	s := &Summary{
		GeneratedAt:           now,
		Today:                 today,
		CountsByDeliveryType:  make(map[delivery.Type]int),
		CountsByCountry:       make(map[string]int),
		CountsByAgent:         make(map[string]int),
		Agents:                []string{},
		StatusCounts:          make(map[int]int),
		DailySummaries:        []DailySummary{},
		StatusByLoadingDate:   make(map[kernel.DayKey]BucketCounts),
		DelayedOrders:         []DelayedOrder{},
		DailyBacklog:          []BacklogRow{},
		BacklogTrend:          []TrendPoint{},
		DoneTrend:             []TrendPoint{},
		HourlyStatusSnapshots: make(map[int]BucketCounts, HoursPerDay),
		ShiftDoneCounts:       map[shift.Shift]int{shift.First: 0, shift.Second: 0},
	}
	for h := range HoursPerDay {
		s.HourlyStatusSnapshots[h] = BucketCounts{}
	}
	return s
}

// CompletionRate is DoneTotal/Total, 0 for an empty summary.
func (s *Summary) CompletionRate() float64 {
	if s == nil || s.Total == 0 {
		return 0
	}
	return float64(s.DoneTotal) / float64(s.Total)
}

// BucketCounts is a per-bucket tally.
type BucketCounts struct {
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
	Unknown    int `json:"unknown"`
}

// Add counts one order of bucket b.
func (c *BucketCounts) Add(b delivery.Bucket) {
	switch b {
	case delivery.New:
		c.New++
	case delivery.InProgress:
		c.InProgress++
	case delivery.Done:
		c.Done++
	default:
		c.Unknown++
	}
}

func (c BucketCounts) Total() int {
	return c.New + c.InProgress + c.Done + c.Unknown
}

// DailySummary aggregates the orders loading on one day.
type DailySummary struct {
	Date         kernel.DayKey   `json:"date"`
	Total        int             `json:"total"`
	Done         int             `json:"done"`
	StatusCounts map[int]int     `json:"statusCounts"`
	Weight       decimal.Decimal `json:"weight"`
}

// DelayedOrder is an open order whose loading day has passed.
type DelayedOrder struct {
	Order     delivery.Order `json:"order"`
	DelayDays int            `json:"delayDays"`
}

// BacklogRow is one day of the dense agent × day backlog matrix.
type BacklogRow struct {
	Date     kernel.DayKey  `json:"date"`
	PerAgent map[string]int `json:"perAgent"`
	// Total is the sum over PerAgent.
	Total int `json:"total"`
	// Today counts open orders loading exactly on Date.
	Today int `json:"today"`
	// Deviation is Total minus the previous row's Total, nil on the first row.
	Deviation *int `json:"deviation"`
}

// SeriesPoint is one value of an ordered daily series.
type SeriesPoint struct {
	Date  kernel.DayKey `json:"date"`
	Value float64       `json:"value"`
}

// TrendPoint is a SeriesPoint with its trailing moving average.
type TrendPoint struct {
	Date    kernel.DayKey `json:"date"`
	Value   float64       `json:"value"`
	Average float64       `json:"average"`
}

// Diagnostics counts the per-record problems the aggregation tolerated.
type Diagnostics struct {
	// SkippedRecords were excluded from every aggregate.
	SkippedRecords        int `json:"skippedRecords"`
	MissingDeliveryNo     int `json:"missingDeliveryNo"`
	MalformedStatus       int `json:"malformedStatus"`
	MissingLoadingDate    int `json:"missingLoadingDate"`
	UnparsableLoadingDate int `json:"unparsableLoadingDate"`
	UnparsableEventTime   int `json:"unparsableEventTime"`
}
