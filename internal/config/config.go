// Package config loads linver settings from defaults, an optional YAML
// file, LINVER_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	RendererAuto     = "auto"
	RendererGTK      = "gtk"
	RendererTerminal = "tui"

	DefaultAssetsDir  = "/usr/share/linver/assets"
	DefaultListenAddr = "127.0.0.1:8080"
)

// Config holds the runtime settings.
type Config struct {
	AssetsDir     string `mapstructure:"assets_dir"`
	Renderer      string `mapstructure:"renderer"`
	OSReleasePath string `mapstructure:"os_release_path"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	ListenAddr    string `mapstructure:"listen_addr"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("assets_dir", DefaultAssetsDir)
	v.SetDefault("renderer", RendererAuto)
	v.SetDefault("os_release_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("listen_addr", DefaultListenAddr)
}

// Load reads configuration into a Config. configFile may be empty, in which
// case the user config directory is searched; a missing file is fine.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("linver")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "linver"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case configFile != "" && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that have a fixed set of choices.
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererAuto, RendererGTK, RendererTerminal:
	default:
		return fmt.Errorf("invalid renderer %q: must be one of auto, gtk, tui", c.Renderer)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", c.LogFormat)
	}
	return nil
}
