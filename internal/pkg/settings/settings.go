// Package settings loads the analytics engine settings from YAML.
package settings

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when fields are absent from the settings file.
const (
	DefaultTimezone    = "Europe/Berlin"
	DefaultFirstStart  = "05:45"
	DefaultSecondStart = "13:45"
	DefaultSecondEnd   = "21:45"
	DefaultTrendWindow = 7

	maxTrendWindow = 365
)

// Settings configures how the engine buckets and classifies orders.
type Settings struct {
	// Timezone is the IANA zone every day key and hour is computed in.
	Timezone string `yaml:"timezone"`

	Taxonomy TaxonomyConfig `yaml:"taxonomy"`
	Shifts   ShiftConfig    `yaml:"shifts"`

	// TrendWindow is the moving-average length in days.
	TrendWindow int `yaml:"trend_window"`
}

// TaxonomyConfig selects the status codes counted as done. An empty list
// keeps the canonical set.
type TaxonomyConfig struct {
	DoneCodes []int `yaml:"done_codes"`
}

// ShiftConfig holds the HH:MM shift boundaries in the engine's timezone.
type ShiftConfig struct {
	FirstStart  string `yaml:"first_start"`
	SecondStart string `yaml:"second_start"`
	SecondEnd   string `yaml:"second_end"`
}

// Default returns the settings used when no file is configured.
func Default() *Settings {
	return &Settings{
		Timezone: DefaultTimezone,
		Shifts: ShiftConfig{
			FirstStart:  DefaultFirstStart,
			SecondStart: DefaultSecondStart,
			SecondEnd:   DefaultSecondEnd,
		},
		TrendWindow: DefaultTrendWindow,
	}
}

// Load reads and parses the YAML file at path. Missing fields keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings over the defaults.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("settings: parse yaml: %w", err)
	}
	if err := validate(s); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return s, nil
}

func validate(s *Settings) error {
	if s.Timezone == "" {
		return fmt.Errorf("timezone is required")
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	if s.TrendWindow < 1 || s.TrendWindow > maxTrendWindow {
		return fmt.Errorf("trend_window must be between 1 and %d, got %d", maxTrendWindow, s.TrendWindow)
	}
	if s.Shifts.FirstStart == "" || s.Shifts.SecondStart == "" || s.Shifts.SecondEnd == "" {
		return fmt.Errorf("shifts: first_start, second_start and second_end are required")
	}
	return nil
}
