package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for circuit.
// Values come from an optional config file, CIRCUIT_* environment variables
// and bound command-line flags, in increasing priority.
type Config struct {
	Menus   MenusConfig   `mapstructure:"menus"`
	History HistoryConfig `mapstructure:"history"`
	Timer   TimerConfig   `mapstructure:"timer"`
	UI      UIConfig      `mapstructure:"ui"`
	Verbose bool          `mapstructure:"verbose"`
}

type MenusConfig struct {
	File string `mapstructure:"file"`
}

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// TimerConfig controls the driver cadence. Tick is the wall-clock time
// between controller ticks; each tick always counts as one second.
type TimerConfig struct {
	Tick time.Duration `mapstructure:"tick"`
}

type UIConfig struct {
	Mode string `mapstructure:"mode"` // "tui" or "line"
}

const (
	UIModeTUI  = "tui"
	UIModeLine = "line"
)

// DefaultDir returns ~/.circuit
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(homeDir, ".circuit"), nil
}

// New returns a viper instance with defaults and env handling set up.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("circuit")
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	v.AutomaticEnv()

	dir, err := DefaultDir()
	if err != nil {
		dir = "."
	}
	v.SetDefault("menus.file", filepath.Join(dir, "menus.json"))
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(dir, "history.db"))
	v.SetDefault("timer.tick", "1s")
	v.SetDefault("ui.mode", UIModeTUI)
	v.SetDefault("verbose", false)

	return v
}

// Load reads configuration into a Config. configFile may be empty, in which
// case config.yaml is looked up in ~/.circuit and the working directory;
// a missing default file is not an error, a missing explicit one is.
func Load(v *viper.Viper, configFile string) (Config, error) {
	var config Config

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks values viper cannot check by type alone
func (c Config) Validate() error {
	if strings.TrimSpace(c.Menus.File) == "" {
		return fmt.Errorf("menus.file must not be empty")
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return fmt.Errorf("history.path must not be empty when history is enabled")
	}
	if c.Timer.Tick <= 0 {
		return fmt.Errorf("timer.tick must be positive, got %s", c.Timer.Tick)
	}
	switch c.UI.Mode {
	case UIModeTUI, UIModeLine:
	default:
		return fmt.Errorf("ui.mode must be %q or %q, got %q", UIModeTUI, UIModeLine, c.UI.Mode)
	}
	return nil
}
