// Package config handles configuration for savevault tooling, layering
// defaults, an optional JSON file, environment variables, and command-line
// flags. Later sources take precedence.
package config

import "github.com/dkarpov/savevault/internal/compressx"

// Config holds runtime settings for the save store and its CLI.
//
// Fields:
//   - SaveDir: directory holding one archive file per slot.
//   - MaxStateSize: decompression cap in bytes for a single state snapshot.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	SaveDir      string
	MaxStateSize int64
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.SaveDir = "saves"
	c.MaxStateSize = compressx.DefaultMaxSize
	c.LogLevel = "info"
}

// LoadConfig constructs a Config by applying defaults, then overlaying
// values from JSON (if a file is given), environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
