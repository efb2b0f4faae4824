package config

import "github.com/caarlos0/env/v11"

// envConfig is a DTO for environment overlay. Only variables that are
// actually set override earlier stages.
type envConfig struct {
	SaveDir      string `env:"SAVEVAULT_DIR"`
	MaxStateSize int64  `env:"SAVEVAULT_MAX_STATE_SIZE"`
	LogLevel     string `env:"SAVEVAULT_LOG_LEVEL"`
}

func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.SaveDir != "" {
		cfg.SaveDir = ec.SaveDir
	}
	if ec.MaxStateSize > 0 {
		cfg.MaxStateSize = ec.MaxStateSize
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
