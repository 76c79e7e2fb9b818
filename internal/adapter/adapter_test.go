package adapter

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/disctrackr/internal/domain"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestNewLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "WARN")

	logger.Info("dropped")
	logger.Warn("kept", "discID", 7)

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"discID":7`)
}

func TestSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "disctrackr.log")

	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "INFO"})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	// An explicit path must exist.
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Storage.Driver = "bolt"
	cfg.Storage.Path = "/tmp/discs.bolt"
	cfg.UI.CountryDebounceMs = 100
	cfg.Links.BrowserArgs = []string{"--new-tab"}
	require.NoError(t, writeConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bolt", loaded.Storage.Driver)
	assert.Equal(t, "/tmp/discs.bolt", loaded.Storage.Path)
	assert.Equal(t, 100, loaded.UI.CountryDebounceMs)
	assert.Equal(t, []string{"--new-tab"}, loaded.Links.BrowserArgs)
	assert.Equal(t, cfg.Links.CoverURLTemplate, loaded.Links.CoverURLTemplate)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, writeConfig(DefaultConfig(), path))
	t.Setenv("DISCTRACKR_STORAGE_DRIVER", "bolt")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/discs.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "discs.db"), got)

	got, err = ExpandPath("/abs/discs.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/discs.db", got)
}

func TestLauncher_RejectsNonWebURLs(t *testing.T) {
	l := NewLauncher("", nil, NullLogger())

	assert.Error(t, l.Open("file:///etc/passwd"))
	assert.Error(t, l.Open("javascript:alert(1)"))
}

func TestUIConfigDefaults(t *testing.T) {
	assert.Equal(t, domain.FormatDVD, UIConfig{DefaultFormat: " DVD "}.Format())
	assert.Equal(t, domain.FormatUHD, UIConfig{DefaultFormat: "uhd"}.Format())
	assert.Equal(t, domain.FormatBluRay, UIConfig{DefaultFormat: "laserdisc"}.Format())

	assert.Equal(t, 250*time.Millisecond, UIConfig{}.CountryDebounce())
	assert.Equal(t, 100*time.Millisecond, UIConfig{CountryDebounceMs: 100}.CountryDebounce())
}
