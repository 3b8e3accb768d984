package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultRacer is used when no binary path is configured; resolution
	// happens through PATH at invocation time.
	DefaultRacer = "racer"

	// DefaultTimeoutSeconds bounds a single racer invocation.
	DefaultTimeoutSeconds = 10

	configFileName = "config.toml"
)

// Settings is one immutable snapshot of the process-wide configuration.
// Replace the whole value on change; never mutate a snapshot in place.
type Settings struct {
	Racer          string   `toml:"racer"`
	SearchPaths    []string `toml:"search_paths"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Racer:          DefaultRacer,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Timeout returns the invocation deadline as a duration.
func (s Settings) Timeout() time.Duration {
	seconds := s.TimeoutSeconds
	if seconds <= 0 {
		seconds = DefaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// DefaultPath returns the conventional config file location,
// e.g. ~/.config/ferret/config.toml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "ferret", configFileName), nil
}

// Load reads settings from a TOML file. A missing file is not an error;
// defaults are returned so first runs work without any setup.
func Load(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if settings.Racer == "" {
		settings.Racer = DefaultRacer
	}
	return settings, nil
}
