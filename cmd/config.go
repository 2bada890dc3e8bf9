package cmd

import "fmt"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// Timezone overrides the settings file's timezone when set.
	Timezone string
	// SettingsPath is the engine settings YAML; empty runs on defaults.
	SettingsPath string
	// RefreshSchedule is a cron spec with a seconds field.
	RefreshSchedule string
	LogLevel        string
}

// DSN formats the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
