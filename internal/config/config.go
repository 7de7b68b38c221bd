// Package config resolves runtime settings from defaults, an optional YAML
// file and CONSTORM_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/drake200120xx/constorm/pkg/wordwrap"
	"gopkg.in/yaml.v3"
)

// Environment variables.
const (
	EnvConfig      = "CONSTORM_CONFIG"
	EnvColumns     = "CONSTORM_COLUMNS"
	EnvTabWidth    = "CONSTORM_TAB_WIDTH"
	EnvNoColor     = "CONSTORM_NO_COLOR"
	EnvLogLevel    = "CONSTORM_LOG_LEVEL"
	EnvMetricsFile = "CONSTORM_METRICS_FILE"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	Columns     int    `yaml:"columns"`
	TabWidth    int    `yaml:"tab_width"`
	NoColor     bool   `yaml:"no_color"`
	Markdown    bool   `yaml:"markdown"`
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
	Start       string `yaml:"start"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Columns:  wordwrap.DefaultLimit,
		TabWidth: wordwrap.DefaultTabWidth,
		LogLevel: "warn",
	}
}

// Load applies the file at path (or $CONSTORM_CONFIG when path is empty) and
// then the environment on top of the defaults. A missing default file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case explicit || !errors.Is(err, os.ErrNotExist):
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvColumns); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvColumns, err)
		}
		c.Columns = n
	}
	if v := os.Getenv(EnvTabWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTabWidth, err)
		}
		c.TabWidth = n
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoColor, err)
		}
		c.NoColor = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		c.MetricsFile = v
	}
	return nil
}

// Level parses LogLevel. Unknown names fall back to warn.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelWarn
	}
	return l
}
