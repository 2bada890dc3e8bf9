package services

import (
	"cmp"
	"maps"
	"slices"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/summary"
)

// BacklogTracker derives the outstanding order count per day and agent.
//
// backlog(D, A) counts orders of agent A loading on or before D whose status
// is not Done. Unknown codes stay in the backlog, matching the remaining
// total, although they are never reported as delayed. The status used is the current one, not the status
// the order had on D: orders completed since then drop out of every past
// day, so the series understates historical backlog. An accurate history
// needs a status transition log, which the delivery store does not keep.
type BacklogTracker struct {
	classifier classifier
}

// NewBacklogTracker returns a tracker bucketing in calendar's zone.
func NewBacklogTracker(taxonomy delivery.Taxonomy, calendar kernel.Calendar) BacklogTracker {
	return BacklogTracker{classifier: classifier{taxonomy: taxonomy, calendar: calendar}}
}

// Track returns one row per entry of daily, in ascending date order. Every
// agent observed among the countable orders appears in every row.
func (t BacklogTracker) Track(daily []summary.DailySummary, orders []delivery.Order) []summary.BacklogRow {
	days := make([]kernel.DayKey, 0, len(daily))
	for _, d := range daily {
		days = append(days, d.Date)
	}
	rows, _ := trackBacklog(days, t.classifier.classifyAll(orders))
	return rows
}

type openOrder struct {
	day   kernel.DayKey
	agent string
}

// trackBacklog also returns the sorted agent column set.
func trackBacklog(days []kernel.DayKey, records []record) ([]summary.BacklogRow, []string) {
	agentSet := make(map[string]struct{})
	open := make([]openOrder, 0)
	openOn := make(map[kernel.DayKey]int)

	for _, r := range records {
		agent := r.order.Agent()
		agentSet[agent] = struct{}{}
		if r.loadingDay.IsZero() || r.bucket == delivery.Done {
			continue
		}
		open = append(open, openOrder{day: r.loadingDay, agent: agent})
		openOn[r.loadingDay]++
	}

	agents := slices.Sorted(maps.Keys(agentSet))

	axis := slices.Clone(days)
	slices.Sort(axis)
	axis = slices.Compact(axis)

	slices.SortFunc(open, func(a, b openOrder) int {
		return cmp.Compare(a.day, b.day)
	})

	running := make(map[string]int, len(agents))
	rows := make([]summary.BacklogRow, 0, len(axis))
	next := 0

	for _, day := range axis {
		for next < len(open) && !open[next].day.After(day) {
			running[open[next].agent]++
			next++
		}

		row := summary.BacklogRow{
			Date:     day,
			PerAgent: make(map[string]int, len(agents)),
			Today:    openOn[day],
		}
		for _, agent := range agents {
			row.PerAgent[agent] = running[agent]
			row.Total += running[agent]
		}
		rows = append(rows, row)
	}
	setDeviations(rows)

	return rows, agents
}

// setDeviations stores each row's change against the previous row's Total.
func setDeviations(rows []summary.BacklogRow) {
	for i := range rows {
		if i == 0 {
			rows[i].Deviation = nil
			continue
		}
		deviation := rows[i].Total - rows[i-1].Total
		rows[i].Deviation = &deviation
	}
}
