// SPDX-License-Identifier: MPL-2.0

// Package config loads and persists the masklint configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "masklint"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// DefaultMaskfile is the maskfile consulted when neither flag nor
	// config name one.
	DefaultMaskfile = "maskfile.md"

	// ColorAuto emphasizes output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways always emphasizes output.
	ColorAlways ColorMode = "always"
	// ColorNever never emphasizes output.
	ColorNever ColorMode = "never"
)

// ErrInvalidColorMode is returned when a ColorMode value is not recognized.
var ErrInvalidColorMode = errors.New("invalid color mode")

// configDirOverride lets tests point config loading at a scratch directory.
var configDirOverride string

type (
	// ColorMode controls when report headers are emphasized.
	ColorMode string

	// Config is the persisted masklint configuration.
	Config struct {
		// Maskfile is the default maskfile path for all commands.
		Maskfile string `mapstructure:"maskfile" toml:"maskfile"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables debug logging by default.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
		// Color controls report header emphasis: auto, always or never.
		Color ColorMode `mapstructure:"color" toml:"color"`
	}
)

// Validate returns nil if the ColorMode is one of the defined modes.
func (m ColorMode) Validate() error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: auto, always, never)", ErrInvalidColorMode, m)
	}
}

// SetConfigDirOverride points config loading at dir. Pass "" to restore the
// platform default. Intended for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the masklint configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the path of the config file.
func FilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Maskfile: DefaultMaskfile,
		UI:       UIConfig{Color: ColorAuto},
	}
}

// Load reads the configuration file, if present, with MASKLINT_* environment
// variables applied on top. A missing file yields the defaults.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("maskfile", def.Maskfile)
	v.SetDefault("ui.verbose", def.UI.Verbose)
	v.SetDefault("ui.color", string(def.UI.Color))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.UI.Color.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML to the standard config file path, creating the
// config directory if needed, and returns the file path.
func Save(cfg *Config) (string, error) {
	path, err := FilePath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}
	return path, nil
}
