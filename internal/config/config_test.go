package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "127.0.0.1:8087", cfg.ListenAddr)
	require.Equal(t, "fr", cfg.DefaultLanguage)
	require.Equal(t, "development", cfg.Environment)
	require.False(t, cfg.Production())
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestResolveActiveVersionURL(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "https://play.battlecorp.io/utest/activeVersion.json", cfg.ResolveActiveVersionURL())

	cfg.Environment = "production"
	require.Equal(t, "https://play.battlecorp.io/uprod/activeVersion.json", cfg.ResolveActiveVersionURL())

	cfg.ActiveVersionURL = "https://cdn.example.com/builds/activeVersion.json"
	require.Equal(t, cfg.ActiveVersionURL, cfg.ResolveActiveVersionURL())
}

func TestParseJsonOverlay(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "launcher.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"api_base_url": "https://api.battlecorp.io",
		"log_level": "verbose",
		"request_timeout": "30s"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"horizon-web", "-c", file}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseJson(cfg))

	require.Equal(t, "https://api.battlecorp.io", cfg.APIBaseURL)
	require.Equal(t, "verbose", cfg.LogLevel)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// Untouched fields keep their defaults.
	require.Equal(t, "127.0.0.1:8087", cfg.ListenAddr)
}

func TestParseEnvOverlay(t *testing.T) {
	t.Setenv("HORIZON_ENV", "production")
	t.Setenv("HORIZON_DEFAULT_LANG", "en")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "en", cfg.DefaultLanguage)
	require.True(t, cfg.Production())
}

func TestParseFlagsOverlay(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"horizon-web", "-a", "127.0.0.1:9000", "-login"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseFlags(cfg))

	require.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
}
