// @title			Delivery Dashboard API
// @version		1.0
// @description	Delivery analytics: KPIs, delays, backlog and trends over imported delivery records.
// @BasePath		/api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"dashboard/cmd"
	httpin "dashboard/internal/adapters/in/http"
	"dashboard/internal/adapters/out/postgres"
	"dashboard/internal/core/application/engine"
	"dashboard/internal/pkg/metrics"
	"dashboard/internal/pkg/settings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDB(configs)

	engineSettings := loadSettings(configs)
	engines, err := engine.NewProvider(engineSettings, logger)
	if err != nil {
		log.Fatalf("Invalid engine settings: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, engines, metrics.New(), logger)

	if configs.SettingsPath != "" {
		go func() {
			if watchErr := settings.Watch(ctx, configs.SettingsPath, logger, app.ReloadSettings); watchErr != nil {
				logger.ErrorContext(ctx, "Settings watcher stopped", "error", watchErr)
			}
		}()
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(ctx); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; the process environment wins.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		Timezone:        goDotEnvVariable("TIMEZONE"),
		SettingsPath:    goDotEnvVariable("SETTINGS_PATH"),
		RefreshSchedule: goDotEnvVariable("REFRESH_SCHEDULE"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func envOrDefault(key, fallback string) string {
	if v := goDotEnvVariable(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = gormDB.AutoMigrate(postgres.Models()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func loadSettings(configs cmd.Config) *settings.Settings {
	s := settings.Default()
	if configs.SettingsPath != "" {
		loaded, err := settings.Load(configs.SettingsPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		s = loaded
	}
	cmd.ApplyOverrides(configs, s)
	return s
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpin.NewRouter(app.CreateServer(), app.Metrics(), logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("HTTP shutdown failed", "error", shutdownErr)
		}
	}()

	logger.InfoContext(ctx, "HTTP server listening", "port", port)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
