package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CombatConfig contains simulation and frame-data timing values
type CombatConfig struct {
	// TickRate is the fixed number of simulation steps per second. Clip rates
	// and hit-stun durations are authored against this rate.
	TickRate int `mapstructure:"tick_rate"`

	// CancelWindow widens the recovery check by this many animation frames
	// when deciding whether an attack request may be buffered.
	CancelWindow int `mapstructure:"cancel_window"`

	// DefaultHealth is used for characters whose catalog omits a health value.
	DefaultHealth int `mapstructure:"default_health"`
}

// Step returns the duration of one simulation step.
func (c CombatConfig) Step() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}

// ArenaConfig contains the collision space dimensions
type ArenaConfig struct {
	Width    int `mapstructure:"width"`
	Height   int `mapstructure:"height"`
	CellSize int `mapstructure:"cell_size"` // resolv broadphase cell edge in pixels
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level configuration.
type Config struct {
	Combat  CombatConfig  `mapstructure:"combat"`
	Arena   ArenaConfig   `mapstructure:"arena"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Global configuration instance
var C *Config

func init() {
	C = Default()
}

// Default returns the configuration used when no file is loaded.
func Default() *Config {
	return &Config{
		Combat: CombatConfig{
			TickRate:      60,
			CancelWindow:  0,
			DefaultHealth: 100,
		},
		Arena: ArenaConfig{
			Width:    1920,
			Height:   1080,
			CellSize: 16,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks all configuration invariants and reports every violation.
func (c Config) Validate() error {
	var errs []string

	if c.Combat.TickRate < 1 {
		errs = append(errs, fmt.Sprintf("combat.tick_rate must be >= 1, got %d", c.Combat.TickRate))
	}
	if c.Combat.CancelWindow < 0 {
		errs = append(errs, fmt.Sprintf("combat.cancel_window must be >= 0, got %d", c.Combat.CancelWindow))
	}
	if c.Combat.DefaultHealth < 1 {
		errs = append(errs, fmt.Sprintf("combat.default_health must be >= 1, got %d", c.Combat.DefaultHealth))
	}
	if c.Arena.Width < 1 || c.Arena.Height < 1 {
		errs = append(errs, fmt.Sprintf("arena size must be positive, got %dx%d", c.Arena.Width, c.Arena.Height))
	}
	if c.Arena.CellSize < 1 {
		errs = append(errs, fmt.Sprintf("arena.cell_size must be >= 1, got %d", c.Arena.CellSize))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}
