package config

import (
	"encoding/json"
	"os"

	"github.com/dkarpov/savevault/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config afterwards so absent fields keep their
// earlier-stage values.
type JsonConfig struct {
	SaveDir      *string `json:"save_dir"`
	MaxStateSize *int64  `json:"max_state_size"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. When no file is given it is a no-op. Read or unmarshal
// errors panic; config loading happens once at startup where a panic is the
// clearest failure.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.SaveDir != nil {
		cfg.SaveDir = *jc.SaveDir
	}
	if jc.MaxStateSize != nil {
		cfg.MaxStateSize = *jc.MaxStateSize
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
