// Package config provides configuration for pgn-format.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/pgn-movetext-go/internal/errors"
	"github.com/lgbarn/pgn-movetext-go/internal/logging"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "PGNFMT"

// Output formats.
const (
	FormatPGN       = "pgn"
	FormatJSON      = "json"
	FormatJSONLines = "jsonl"
	FormatYAML      = "yaml"
)

// Config holds all program configuration.
type Config struct {
	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Workers bounds the games parsed at once. 0 uses one per CPU.
	Workers int `mapstructure:"workers"`

	// Output
	OutputFormat string `mapstructure:"output_format"`
	OutputFile   string `mapstructure:"output_file"`
	LineWidth    int    `mapstructure:"line_width"`

	// Content
	KeepComments    bool `mapstructure:"keep_comments"`
	KeepAnnotations bool `mapstructure:"keep_annotations"`

	// MaxMoveNumber drops moves numbered above it. 0 keeps everything.
	MaxMoveNumber int `mapstructure:"max_move_number"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       logging.FormatConsole,
		OutputFormat:    FormatPGN,
		LineWidth:       80,
		KeepComments:    true,
		KeepAnnotations: true,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("log format %q: %w", c.LogFormat, errors.ErrInvalidConfig)
	}
	switch c.OutputFormat {
	case FormatPGN, FormatJSON, FormatJSONLines, FormatYAML:
	default:
		return fmt.Errorf("output format %q: %w", c.OutputFormat, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) < 0: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.LineWidth < 0 {
		return fmt.Errorf("line width (%d) < 0: %w", c.LineWidth, errors.ErrInvalidConfig)
	}
	if c.MaxMoveNumber < 0 {
		return fmt.Errorf("max move number (%d) < 0: %w", c.MaxMoveNumber, errors.ErrInvalidConfig)
	}
	return nil
}

// Load reads the configuration file at path, if any, then PGNFMT_*
// environment variables, over the defaults. The file type follows its
// extension (yaml, toml, json).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can find it on
// Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("output_format", d.OutputFormat)
	v.SetDefault("output_file", d.OutputFile)
	v.SetDefault("line_width", d.LineWidth)
	v.SetDefault("keep_comments", d.KeepComments)
	v.SetDefault("keep_annotations", d.KeepAnnotations)
	v.SetDefault("max_move_number", d.MaxMoveNumber)
}
