// Package config provides configuration management functionality for the lapse application.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// Defaults and bounds for the timing settings.
const (
	DefaultTickInterval    = 10 * time.Millisecond
	DefaultRefreshInterval = 50 * time.Millisecond
	MinTickInterval        = time.Millisecond
)

// Settings holds the resolved runtime configuration.
type Settings struct {
	// TickInterval is the cadence at which the engine advances elapsed time.
	TickInterval time.Duration
	// RefreshInterval is the cadence at which the terminal view redraws.
	RefreshInterval time.Duration
	// LogLevel is the minimum slog level emitted.
	LogLevel slog.Level
}

// Load resolves settings from viper (config file and environment) and
// validates them.
func Load() (*Settings, error) {
	s := &Settings{
		TickInterval:    DefaultTickInterval,
		RefreshInterval: DefaultRefreshInterval,
		LogLevel:        slog.LevelInfo,
	}

	if viper.IsSet("tick_interval") {
		s.TickInterval = viper.GetDuration("tick_interval")
	}
	if viper.IsSet("refresh_interval") {
		s.RefreshInterval = viper.GetDuration("refresh_interval")
	}
	if viper.IsSet("log_level") {
		level, err := ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return nil, err
		}
		s.LogLevel = level
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the timing bounds.
func (s *Settings) Validate() error {
	if s.TickInterval < MinTickInterval {
		return fmt.Errorf("tick_interval %v is below the minimum %v", s.TickInterval, MinTickInterval)
	}
	if s.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %v", s.RefreshInterval)
	}
	return nil
}

// ApplyFlags applies flag overrides to settings (called from command layer).
// Zero-valued flags leave the configured value in place.
func (s *Settings) ApplyFlags(tickFlag, refreshFlag time.Duration) {
	if tickFlag > 0 {
		s.TickInterval = tickFlag
	}
	if refreshFlag > 0 {
		s.RefreshInterval = refreshFlag
	}
}

// ParseLevel maps a config string to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level '%s'", level)
	}
}

// GetValue retrieves a configuration value by key
func GetValue(key string) (string, error) {
	if !viper.IsSet(key) {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}
	return viper.GetString(key), nil
}

// SetValue sets a configuration value by key and persists it to the config file
func SetValue(key string, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}
