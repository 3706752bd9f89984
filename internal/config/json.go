package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/badmarinesstudio/horizon-web/internal/flagx"
	"github.com/badmarinesstudio/horizon-web/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds. Absent fields leave the current value
// untouched.
type JsonConfig struct {
	ListenAddr       *string         `json:"listen_addr"`
	APIBaseURL       *string         `json:"api_base_url"`
	Environment      *string         `json:"environment"`
	LogLevel         *string         `json:"log_level"`
	DefaultLanguage  *string         `json:"default_language"`
	GameContentURL   *string         `json:"game_content_url"`
	ActiveVersionURL *string         `json:"active_version_url"`
	LocalStatePath   *string         `json:"local_state_path"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. When no file is named, cfg is left as-is.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.ListenAddr != nil {
		cfg.ListenAddr = *jc.ListenAddr
	}
	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.Environment != nil {
		cfg.Environment = *jc.Environment
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.DefaultLanguage != nil {
		cfg.DefaultLanguage = *jc.DefaultLanguage
	}
	if jc.GameContentURL != nil {
		cfg.GameContentURL = *jc.GameContentURL
	}
	if jc.ActiveVersionURL != nil {
		cfg.ActiveVersionURL = *jc.ActiveVersionURL
	}
	if jc.LocalStatePath != nil {
		cfg.LocalStatePath = *jc.LocalStatePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}
