// Package config holds runtime settings for the horizon-web launcher.
//
// Values are resolved in layers, later layers overriding earlier ones:
// defaults -> JSON file (-c/-config) -> environment (HORIZON_*) -> flags.
package config

import "time"

// Config holds runtime settings for the launcher.
//
// Fields:
//   - ListenAddr: address the local UI server binds to.
//   - APIBaseURL: base URL of the remote Horizon REST API.
//   - Environment: deployment name ("development", "production", ...);
//     qualifies the persisted token key and picks the game content channel.
//   - LogLevel: verbose|log|warn|error (original front-end level names).
//   - DefaultLanguage: language used when the URL and headers decide nothing.
//   - GameContentURL: origin hosting the WebGL builds.
//   - ActiveVersionURL: overrides the derived activeVersion.json location.
//   - LocalStatePath: SQLite file holding the persisted access token.
//   - RequestTimeout: per-call timeout for remote API requests.
type Config struct {
	ListenAddr       string        `env:"HORIZON_LISTEN_ADDR"`
	APIBaseURL       string        `env:"HORIZON_API_URL"`
	Environment      string        `env:"HORIZON_ENV"`
	LogLevel         string        `env:"HORIZON_LOG_LEVEL"`
	DefaultLanguage  string        `env:"HORIZON_DEFAULT_LANG"`
	GameContentURL   string        `env:"HORIZON_GAME_CONTENT_URL"`
	ActiveVersionURL string        `env:"HORIZON_ACTIVE_VERSION_URL"`
	LocalStatePath   string        `env:"HORIZON_STATE_PATH"`
	RequestTimeout   time.Duration `env:"HORIZON_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = "127.0.0.1:8087"
	c.APIBaseURL = "http://localhost:3000"
	c.Environment = "development"
	c.LogLevel = "log"
	c.DefaultLanguage = "fr"
	c.GameContentURL = "https://play.battlecorp.io"
	c.ActiveVersionURL = ""
	c.LocalStatePath = "horizon.db"
	c.RequestTimeout = 15 * time.Second
}

// Production reports whether the launcher targets the production channel.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// ResolveActiveVersionURL returns the explicit ActiveVersionURL when set,
// otherwise the channel default under GameContentURL: /uprod for production
// builds, /utest for everything else.
func (c *Config) ResolveActiveVersionURL() string {
	if c.ActiveVersionURL != "" {
		return c.ActiveVersionURL
	}
	channel := "/utest"
	if c.Production() {
		channel = "/uprod"
	}
	return c.GameContentURL + channel + "/activeVersion.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
