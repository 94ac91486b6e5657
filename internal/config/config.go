package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when no --config flag is given.
const DefaultPath = "laserwatch.yaml"

// DefaultTarget is the number of eliminations a sweep runs to, and the one reported, by default.
const DefaultTarget = 200

// Config represents the top-level configuration structure parsed from laserwatch.yaml.
// It defines how grids are read, how far the sweep runs, how results are rendered,
// logging, and the HTTP server.
type Config struct {
	// Grid controls how textual grids are parsed.
	Grid GridConfig `yaml:"grid"`
	// Sweep controls the rotating elimination sweep.
	Sweep SweepConfig `yaml:"sweep"`
	// Output controls report rendering.
	Output OutputConfig `yaml:"output"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Server contains configuration for the HTTP server.
	Server ServerConfig `yaml:"server"`
}

// GridConfig configures grid parsing.
type GridConfig struct {
	// Occupied is the single character marking an occupied cell.
	Occupied string `yaml:"occupied"`
}

// SweepConfig configures the elimination sweep.
type SweepConfig struct {
	// Target is how many points to eliminate. 0 sweeps every point.
	Target *int `yaml:"target"`
	// ReportNth selects which elimination the report highlights, counting from 1. 0 disables it.
	ReportNth *int `yaml:"report_nth"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	// Format is one of "text", "json" or "yaml".
	Format string `yaml:"format"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (e.g., ":8080").
	Addr string `yaml:"addr"`
	// ReadTimeout bounds reading a request (e.g., "5s").
	ReadTimeout string `yaml:"read_timeout"`
	// WriteTimeout bounds writing a response.
	WriteTimeout string `yaml:"write_timeout"`
	// MaxBodyBytes caps the size of a submitted grid.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

var validFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// OccupiedRune returns the occupied-cell marker as a rune.
func (c *Config) OccupiedRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Grid.Occupied)
	return r
}

// Load reads and parses the configuration file at path, then applies defaults and validates it.
// A missing file at DefaultPath is not an error; the defaults are returned instead.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
		// fall through to defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for errors, such as a multi-character
// occupied marker or an unknown output format.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if !utf8.ValidString(config.Grid.Occupied) {
		return fmt.Errorf("grid.occupied must be valid UTF-8, got %q", config.Grid.Occupied)
	}
	if utf8.RuneCountInString(config.Grid.Occupied) != 1 {
		return fmt.Errorf("grid.occupied must be exactly one character, got %q", config.Grid.Occupied)
	}
	if config.Grid.Occupied == "." {
		return fmt.Errorf("grid.occupied cannot be '.', it marks empty space")
	}
	if unicode.IsSpace(config.OccupiedRune()) {
		return fmt.Errorf("grid.occupied cannot be whitespace, got %q", config.Grid.Occupied)
	}

	target, nth := config.TargetCount(), config.NthToReport()
	if target < 0 {
		return fmt.Errorf("sweep.target must not be negative: %d", target)
	}
	if nth < 0 {
		return fmt.Errorf("sweep.report_nth must not be negative: %d", nth)
	}

	if config.Output.Format != "" && !validFormats[strings.ToLower(config.Output.Format)] {
		return fmt.Errorf("invalid output format: %s (allowed: text, json, yaml)", config.Output.Format)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	for name, v := range map[string]string{
		"server.read_timeout":  config.Server.ReadTimeout,
		"server.write_timeout": config.Server.WriteTimeout,
	} {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
	}
	if config.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must not be negative: %d", config.Server.MaxBodyBytes)
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Grid.Occupied == "" {
		config.Grid.Occupied = "#"
	}
	if config.Sweep.Target == nil {
		n := DefaultTarget
		config.Sweep.Target = &n
	}
	if config.Sweep.ReportNth == nil {
		n := DefaultTarget
		config.Sweep.ReportNth = &n
	}
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
	config.Output.Format = strings.ToLower(config.Output.Format)

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	if config.Server.Addr == "" {
		config.Server.Addr = ":8080"
	}
	if config.Server.ReadTimeout == "" {
		config.Server.ReadTimeout = "5s"
	}
	if config.Server.WriteTimeout == "" {
		config.Server.WriteTimeout = "10s"
	}
	if config.Server.MaxBodyBytes == 0 {
		config.Server.MaxBodyBytes = 1 << 20
	}
}

// TargetCount returns the configured sweep target, DefaultTarget when unset.
func (c *Config) TargetCount() int {
	if c.Sweep.Target == nil {
		return DefaultTarget
	}
	return *c.Sweep.Target
}

// NthToReport returns which elimination to highlight, DefaultTarget when unset.
func (c *Config) NthToReport() int {
	if c.Sweep.ReportNth == nil {
		return DefaultTarget
	}
	return *c.Sweep.ReportNth
}

// Timeouts returns the parsed server read and write timeouts.
// It assumes the config has passed Validate.
func (c *Config) Timeouts() (read, write time.Duration) {
	read, _ = time.ParseDuration(c.Server.ReadTimeout)
	write, _ = time.ParseDuration(c.Server.WriteTimeout)
	return read, write
}
