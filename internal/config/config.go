// Package config resolves focusflow settings from defaults, an optional
// TOML file, and FOCUSFLOW_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
)

// FileName is the config file looked up inside the data directory.
const FileName = "config.toml"

// Config holds the resolved settings.
type Config struct {
	DataDir string `toml:"data_dir" env:"FOCUSFLOW_HOME"`
	DBPath  string `toml:"db_path" env:"FOCUSFLOW_DB"`

	// User is the identity every command acts as unless --user is given.
	User string `toml:"user" env:"FOCUSFLOW_USER"`

	// DefaultMinutes replaces a missing duration on log and timer.
	DefaultMinutes int `toml:"default_minutes" env:"FOCUSFLOW_DEFAULT_MINUTES"`

	Notify bool `toml:"notify" env:"FOCUSFLOW_NOTIFY"`
	// NotifySound plays the alert sound with each timer notification.
	NotifySound bool `toml:"notify_sound" env:"FOCUSFLOW_NOTIFY_SOUND"`
	LogUseCases bool `toml:"log_use_cases" env:"FOCUSFLOW_LOG_USECASES"`

	// Source is the config file that was read, empty when none existed.
	Source string `toml:"-"`
}

// Default returns settings rooted at home/.focusflow.
func Default(home string) *Config {
	dataDir := filepath.Join(home, ".focusflow")
	return &Config{
		DataDir:        dataDir,
		DefaultMinutes: 60,
		Notify:         true,
		NotifySound:    true,
	}
}

// Load resolves the configuration. An empty path means
// <data dir>/config.toml; a missing file is not an error.
func Load(path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := Default(home)

	// FOCUSFLOW_HOME decides where the default config file lives.
	if v := os.Getenv("FOCUSFLOW_HOME"); v != "" {
		cfg.DataDir = v
	}
	if path == "" {
		path = filepath.Join(cfg.DataDir, FileName)
	}

	if err := cfg.decodeFile(path); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "focusflow.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parsing config %s: unknown key %q", path, undecoded[0].String())
	}
	c.Source = path
	return nil
}

// Validate checks for settings that would fail later in confusing ways. It
// returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error
	if c.DBPath == "" {
		errs = append(errs, fmt.Errorf("db_path must not be empty"))
	}
	if c.DefaultMinutes <= 0 {
		errs = append(errs, fmt.Errorf("default_minutes must be > 0, got %d", c.DefaultMinutes))
	}
	return errors.Join(errs...)
}
