// Package engine holds the live analytics engine and the latest summary it
// produced. Both are shared by command and query handlers and are safe for
// concurrent use.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/shift"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/pkg/settings"
)

// Provider hands out the current engine. Reload swaps it atomically, so a
// running aggregation keeps the engine it started with.
type Provider struct {
	current atomic.Pointer[services.Aggregator]
	logger  *slog.Logger
}

// NewProvider builds the initial engine from s.
func NewProvider(s *settings.Settings, logger *slog.Logger) (*Provider, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Provider{logger: logger}
	if err := p.Reload(s); err != nil {
		return nil, err
	}
	return p, nil
}

// Current returns the engine in effect.
func (p *Provider) Current() services.Aggregator {
	return *p.current.Load()
}

// Reload replaces the engine. Invalid settings leave the current one in place.
func (p *Provider) Reload(s *settings.Settings) error {
	agg, err := Build(s, p.logger)
	if err != nil {
		return err
	}
	p.current.Store(&agg)
	return nil
}

// Build turns settings into an engine.
func Build(s *settings.Settings, logger *slog.Logger) (services.Aggregator, error) {
	if s == nil {
		return services.Aggregator{}, errors.New("engine: settings are required")
	}

	calendar, err := kernel.LoadCalendar(s.Timezone)
	if err != nil {
		return services.Aggregator{}, fmt.Errorf("engine: %w", err)
	}

	taxonomy := delivery.NewTaxonomy()
	if len(s.Taxonomy.DoneCodes) > 0 {
		if taxonomy, err = delivery.NewTaxonomyWithDoneCodes(s.Taxonomy.DoneCodes); err != nil {
			return services.Aggregator{}, fmt.Errorf("engine: %w", err)
		}
	}

	schedule, err := buildSchedule(calendar, s.Shifts)
	if err != nil {
		return services.Aggregator{}, fmt.Errorf("engine: %w", err)
	}

	return services.NewAggregator(services.AggregatorConfig{
		Taxonomy:    taxonomy,
		Calendar:    calendar,
		Schedule:    schedule,
		TrendWindow: s.TrendWindow,
		Logger:      logger,
	}), nil
}

func buildSchedule(calendar kernel.Calendar, cfg settings.ShiftConfig) (shift.Schedule, error) {
	var (
		bounds [3]int
		err    error
	)
	for i, raw := range []string{cfg.FirstStart, cfg.SecondStart, cfg.SecondEnd} {
		m, clockErr := shift.ParseClock(raw)
		err = errors.Join(err, clockErr)
		bounds[i] = m
	}
	if err != nil {
		return shift.Schedule{}, err
	}
	return shift.NewSchedule(calendar, bounds[0], bounds[1], bounds[2])
}
