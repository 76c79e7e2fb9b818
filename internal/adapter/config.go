package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mmcdole/disctrackr/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Links   LinksConfig   `mapstructure:"links"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig selects and locates the catalogue database
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite" or "bolt"
	Path   string `mapstructure:"path"`
}

// LinksConfig holds external link settings
type LinksConfig struct {
	CoverURLTemplate  string   `mapstructure:"cover_url_template"`  // {{id}} is the external ID
	DetailURLTemplate string   `mapstructure:"detail_url_template"` // {{id}} is the external ID
	BrowserCommand    string   `mapstructure:"browser_command"`     // empty for system default
	BrowserArgs       []string `mapstructure:"browser_args"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultFormat     string `mapstructure:"default_format"` // "dvd", "bluray" or "uhd"
	CountryDebounceMs int    `mapstructure:"country_debounce_ms"`
}

// Format returns the configured default format, Blu-ray when unrecognised
func (c UIConfig) Format() domain.FormatKind {
	switch strings.ToLower(strings.TrimSpace(c.DefaultFormat)) {
	case "dvd":
		return domain.FormatDVD
	case "uhd", "4k":
		return domain.FormatUHD
	default:
		return domain.FormatBluRay
	}
}

// CountryDebounce is the pause after typing before countries are filtered
func (c UIConfig) CountryDebounce() time.Duration {
	if c.CountryDebounceMs <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.CountryDebounceMs) * time.Millisecond
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   filepath.Join(defaultDataPath(), "disctrackr.db"),
		},
		Links: LinksConfig{
			CoverURLTemplate:  "https://images.static-bluray.com/movies/covers/{{id}}_front.jpg",
			DetailURLTemplate: "https://www.blu-ray.com/movies/x-Blu-ray/{{id}}/",
			BrowserArgs:       []string{},
		},
		UI: UIConfig{
			DefaultFormat:     "bluray",
			CountryDebounceMs: 250,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "disctrackr.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "disctrackr")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "disctrackr")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "disctrackr")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "disctrackr")
	}
}

// LoadConfig loads configuration from file and environment.
// A non-empty path overrides the default search locations.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. DISCTRACKR_STORAGE_DRIVER
	v.SetEnvPrefix("DISCTRACKR")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	bindEnv(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to the default config location
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return writeConfig(cfg, filepath.Join(configPath, "config.yaml"))
}

func writeConfig(cfg *Config, configFile string) error {
	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("storage.driver", cfg.Storage.Driver)
	v.Set("storage.path", cfg.Storage.Path)

	v.Set("links.cover_url_template", cfg.Links.CoverURLTemplate)
	v.Set("links.detail_url_template", cfg.Links.DetailURLTemplate)
	v.Set("links.browser_command", cfg.Links.BrowserCommand)
	v.Set("links.browser_args", cfg.Links.BrowserArgs)

	v.Set("ui.default_format", cfg.UI.DefaultFormat)
	v.Set("ui.country_debounce_ms", cfg.UI.CountryDebounceMs)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
