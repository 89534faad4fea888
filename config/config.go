// Package config loads converter settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tsawler/giftcsv/format"
	"github.com/tsawler/giftcsv/internal/textenc"
)

// Config is the root converter configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Convert  ConvertConfig  `yaml:"convert"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// InputConfig holds settings for reading GIFT sources.
type InputConfig struct {
	Encoding string `yaml:"encoding" env:"GIFTCSV_INPUT_ENCODING" env-default:"auto"`
}

// ConvertConfig holds extraction settings.
type ConvertConfig struct {
	ExtendedLetters bool `yaml:"extended_letters" env:"GIFTCSV_EXTENDED_LETTERS" env-default:"false"`
}

// OutputConfig holds settings for writing converted questions.
type OutputConfig struct {
	// Format is csv, tsv, jsonl or yaml. Empty means detect from the output path.
	Format    string `yaml:"format"    env:"GIFTCSV_OUTPUT_FORMAT"`
	Delimiter string `yaml:"delimiter" env:"GIFTCSV_OUTPUT_DELIMITER"`
	Header    bool   `yaml:"header"    env:"GIFTCSV_OUTPUT_HEADER"    env-default:"false"`
	CRLF      bool   `yaml:"crlf"      env:"GIFTCSV_OUTPUT_CRLF"      env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"GIFTCSV_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"GIFTCSV_LOG_FORMAT" env-default:"text"`
}

// PostgresConfig holds the optional database sink. An empty DSN disables it.
type PostgresConfig struct {
	DSN   string `yaml:"dsn"   env:"GIFTCSV_POSTGRES_DSN"`
	Table string `yaml:"table" env:"GIFTCSV_POSTGRES_TABLE" env-default:"quiz_questions"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// An empty path loads from ENV + defaults only; a path that does not exist
// is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks field values that cleanenv cannot.
func (c *Config) Validate() error {
	if c.Input.Encoding != "" && !strings.EqualFold(c.Input.Encoding, textenc.Auto) {
		if _, err := textenc.Lookup(c.Input.Encoding); err != nil {
			return fmt.Errorf("input.encoding: %w", err)
		}
	}

	if c.Output.Format != "" {
		f, err := format.Parse(c.Output.Format)
		if err != nil {
			return fmt.Errorf("output.format: %w", err)
		}
		if f == format.GIFT {
			return fmt.Errorf("output.format: gift output is not supported")
		}
	}

	if _, err := c.Output.DelimiterRune(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}

	return nil
}

// DelimiterRune returns the configured delimiter, or 0 to use the format default.
// "tab" and `\t` select a tab.
func (o OutputConfig) DelimiterRune() (rune, error) {
	switch o.Delimiter {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}

	runes := []rune(o.Delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("output.delimiter: want a single character, got %q", o.Delimiter)
	}
	switch runes[0] {
	case '"', '\r', '\n':
		return 0, fmt.Errorf("output.delimiter: %q cannot be used", o.Delimiter)
	}
	return runes[0], nil
}
