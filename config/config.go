// SPDX-License-Identifier: MIT

// Package config loads the size limits and logging settings used by the
// lvlinear CLI.
//
// Sources, lowest to highest precedence:
//   - compiled-in defaults (vector.MaxSize, utmatrix.MaxSize, level "info", text format),
//   - an optional YAML file,
//   - environment variables prefixed with LVLINEAR_ (e.g. LVLINEAR_LIMITS_MAXVECTORSIZE).
//
// Every loaded Config is validated before it is returned, so the option
// translators below never hand a nonsensical limit to WithLimit.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlinear/utmatrix"
	"github.com/katalvlaran/lvlinear/vector"
)

// ErrInvalidConfig is returned when a loaded value violates its contract.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	envPrefix  = "LVLINEAR"
	configType = "yaml"

	keyMaxVectorSize = "limits.maxVectorSize"
	keyMaxMatrixSize = "limits.maxMatrixSize"
	keyLogLevel      = "log.level"
	keyLogFormat     = "log.format"

	// DefaultLogLevel is any level understood by logrus.ParseLevel.
	DefaultLogLevel = "info"
	// FormatText and FormatJSON are the accepted log formats.
	FormatText = "text"
	FormatJSON = "json"
)

// LimitsConfig caps construction sizes below the compile-time maxima.
type LimitsConfig struct {
	MaxVectorSize int `mapstructure:"maxVectorSize" yaml:"maxVectorSize"`
	MaxMatrixSize int `mapstructure:"maxMatrixSize" yaml:"maxMatrixSize"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Config is the root configuration document.
type Config struct {
	Limits LimitsConfig `mapstructure:"limits" yaml:"limits"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxVectorSize: vector.MaxSize,
			MaxMatrixSize: utmatrix.MaxSize,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: FormatText,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(keyMaxVectorSize, d.Limits.MaxVectorSize)
	v.SetDefault(keyMaxMatrixSize, d.Limits.MaxMatrixSize)
	v.SetDefault(keyLogLevel, d.Log.Level)
	v.SetDefault(keyLogFormat, d.Log.Format)

	return v
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return decode(v)
}

// LoadReader is Load for an in-memory YAML document.
func LoadReader(r io.Reader) (*Config, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks limits against the compile-time maxima and the log
// settings against what logrus accepts.
func (c *Config) Validate() error {
	if c.Limits.MaxVectorSize <= 0 || c.Limits.MaxVectorSize > vector.MaxSize {
		return fmt.Errorf("limits.maxVectorSize=%d not in (0, %d]: %w",
			c.Limits.MaxVectorSize, vector.MaxSize, ErrInvalidConfig)
	}
	if c.Limits.MaxMatrixSize <= 0 || c.Limits.MaxMatrixSize > utmatrix.MaxSize {
		return fmt.Errorf("limits.maxMatrixSize=%d not in (0, %d]: %w",
			c.Limits.MaxMatrixSize, utmatrix.MaxSize, ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level=%q: %v: %w", c.Log.Level, err, ErrInvalidConfig)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalidConfig)
	}

	return nil
}

// VectorOptions translates the limits into vector construction options.
func (c *Config) VectorOptions() []vector.Option {
	return []vector.Option{vector.WithLimit(c.Limits.MaxVectorSize)}
}

// MatrixOptions translates the limits into utmatrix construction options.
func (c *Config) MatrixOptions() []utmatrix.Option {
	return []utmatrix.Option{utmatrix.WithLimit(c.Limits.MaxMatrixSize)}
}

// NewLogger builds a logrus logger from the log section.
func (c *Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level=%q: %v: %w", c.Log.Level, err, ErrInvalidConfig)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if c.Log.Format == FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return logger, nil
}
