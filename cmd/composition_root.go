package cmd

import (
	"log/slog"

	httpin "dashboard/internal/adapters/in/http"
	"dashboard/internal/adapters/out/postgres"
	"dashboard/internal/adapters/out/postgres/deliveryrepo"
	"dashboard/internal/core/application/engine"
	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/ports"
	"dashboard/internal/jobs"
	"dashboard/internal/pkg/metrics"
	"dashboard/internal/pkg/resilience"
	"dashboard/internal/pkg/settings"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	reader     ports.DeliveryOrderReader
	engines    *engine.Provider
	snapshot   *engine.Snapshot
	clock      kernel.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, engines *engine.Provider, m *metrics.Metrics, logger *slog.Logger) CompositionRoot {
	breaker := resilience.NewCircuitBreaker(
		resilience.DefaultCircuitBreakerConfig("deliveries-db"),
		logger,
		m.ObserveBreaker,
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		reader:     deliveryrepo.NewBreakerReader(deliveryrepo.NewGormDeliveryRepository(gormDB, nil), breaker),
		engines:    engines,
		snapshot:   engine.NewSnapshot(),
		clock:      kernel.SystemClock{},
		metrics:    m,
		logger:     logger,
	}
}

// ReloadSettings swaps the engine, honoring the TIMEZONE override.
func (c *CompositionRoot) ReloadSettings(s *settings.Settings) error {
	ApplyOverrides(c.config, s)
	err := c.engines.Reload(s)
	c.metrics.RecordSettingsReload(err == nil)
	return err
}

func (c *CompositionRoot) CreateImportDeliveriesCommandHandler() commands.ImportDeliveriesCommandHandler {
	var f commands.ImportUoWFactory = FuncImportUoWFactory(func() commands.ImportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportDeliveriesCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRefreshSummaryCommandHandler() commands.RefreshSummaryCommandHandler {
	return commands.NewRefreshSummaryCommandHandler(c.reader, c.engines, c.snapshot, c.clock, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetSummaryQueryHandler() queries.GetSummaryQueryHandler {
	return queries.NewGetSummaryQueryHandler(c.reader, c.engines, c.clock)
}

func (c *CompositionRoot) CreateGetLatestSummaryQueryHandler() queries.GetLatestSummaryQueryHandler {
	return queries.NewGetLatestSummaryQueryHandler(c.snapshot)
}

func (c *CompositionRoot) CreateGetDelayedOrdersQueryHandler() queries.GetDelayedOrdersQueryHandler {
	return queries.NewGetDelayedOrdersQueryHandler(c.reader, c.engines, c.clock)
}

func (c *CompositionRoot) CreateGetBacklogTrendQueryHandler() queries.GetBacklogTrendQueryHandler {
	return queries.NewGetBacklogTrendQueryHandler(c.reader, c.engines, c.clock)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateImportDeliveriesCommandHandler(),
		c.CreateRefreshSummaryCommandHandler(),
		c.CreateGetSummaryQueryHandler(),
		c.CreateGetLatestSummaryQueryHandler(),
		c.CreateGetDelayedOrdersQueryHandler(),
		c.CreateGetBacklogTrendQueryHandler(),
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRefreshSummaryCommandHandler(), c.config.RefreshSchedule, c.logger)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// ApplyOverrides copies environment overrides onto settings read from file.
func ApplyOverrides(config Config, s *settings.Settings) {
	if s != nil && config.Timezone != "" {
		s.Timezone = config.Timezone
	}
}

type FuncImportUoWFactory func() commands.ImportUoW

func (f FuncImportUoWFactory) Create() commands.ImportUoW {
	return f()
}
