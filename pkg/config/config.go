// Package config holds termdesk's persisted settings.
//
// Settings live in a single YAML file inside the data directory. The
// Config object is constructed once at startup and passed explicitly to
// every component that needs it — there is no package-level singleton.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Settings is the flat key-value mapping persisted to disk.
type Settings struct {
	Theme        string  `yaml:"theme"`
	AccentColor  string  `yaml:"accent_color"`
	WeatherCity  string  `yaml:"weather_city,omitempty"`
	WeatherLabel string  `yaml:"weather_label,omitempty"`
	WeatherLat   float64 `yaml:"weather_lat,omitempty"`
	WeatherLon   float64 `yaml:"weather_lon,omitempty"`
}

// DefaultSettings returns the settings used when no file exists or the
// file cannot be read.
func DefaultSettings() Settings {
	return Settings{
		Theme:       "dark",
		AccentColor: "cyan",
	}
}

// Config is a Settings value bound to its on-disk location.
type Config struct {
	Settings

	dir string
	log *slog.Logger
}

// Load reads the config file under dir, merging defaults under any keys
// missing from disk. A corrupt or unreadable file falls back to defaults;
// that is logged, never fatal.
func Load(dir string, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Config{Settings: DefaultSettings(), dir: dir, log: logger}

	data, err := os.ReadFile(c.Path())
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("config unreadable, using defaults", "path", c.Path(), "error", err)
		}
		return c
	}

	// Unmarshal over the defaults so missing keys keep their default value.
	if err := yaml.Unmarshal(data, &c.Settings); err != nil {
		logger.Warn("config corrupt, using defaults", "path", c.Path(), "error", err)
		c.Settings = DefaultSettings()
	}
	return c
}

// Path returns the absolute path of the config file.
func (c *Config) Path() string {
	return filepath.Join(c.dir, configFileName)
}

// Dir returns the data directory the config is bound to.
func (c *Config) Dir() string {
	return c.dir
}

// Save writes the current settings to disk, creating the data directory
// if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c.Settings)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	return os.WriteFile(c.Path(), data, 0644)
}

// Reset restores defaults and persists them.
func (c *Config) Reset() error {
	c.Settings = DefaultSettings()
	return c.Save()
}

// HasWeather reports whether a weather location has been configured.
func (c *Config) HasWeather() bool {
	return c.WeatherLat != 0 || c.WeatherLon != 0
}

// SetWeather stores a resolved weather location.
func (c *Config) SetWeather(city, label string, lat, lon float64) {
	c.WeatherCity = city
	c.WeatherLabel = label
	c.WeatherLat = lat
	c.WeatherLon = lon
}
