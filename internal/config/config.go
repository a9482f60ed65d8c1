// Package config loads the data stream driver configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds the driver configuration.
type Config struct {
	// TotalEvents is the number of game events to generate and aggregate.
	TotalEvents int `yaml:"total_events" env:"TOTAL_EVENTS"`

	// FibonacciCount is the number of Fibonacci numbers to demonstrate.
	FibonacciCount int `yaml:"fibonacci_count" env:"FIBONACCI_COUNT"`

	// PrimeCount is the number of primes to demonstrate.
	PrimeCount int `yaml:"prime_count" env:"PRIME_COUNT"`

	// PreviewCount is the number of events printed before the rest are elided.
	PreviewCount int `yaml:"preview_count" env:"PREVIEW_COUNT"`

	// Language is the BCP 47 tag used to format numbers in the report.
	Language string `yaml:"language" env:"LANGUAGE"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

// EnvPrefix is the prefix of all environment variables read by Load.
const EnvPrefix = "DATASTREAM_"

var (
	errNegativeCount = errors.New("must not be negative")
	errUnknownLevel  = errors.New("unknown log level")
)

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		TotalEvents:    1000,
		FibonacciCount: 10,
		PrimeCount:     5,
		PreviewCount:   3,
		Language:       "en",
		LogLevel:       "info",
	}
}

// Load returns the default configuration, overridden by the YAML file at path (if path is not empty),
// then by DATASTREAM_* environment variables. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that all counts are non-negative, and that the language and log level are known.
func (c Config) Validate() error {
	counts := []struct {
		name  string
		value int
	}{
		{"total_events", c.TotalEvents},
		{"fibonacci_count", c.FibonacciCount},
		{"prime_count", c.PrimeCount},
		{"preview_count", c.PreviewCount},
	}

	for _, count := range counts {
		if count.value < 0 {
			return fmt.Errorf("%s %d: %w", count.name, count.value, errNegativeCount)
		}
	}

	if _, err := c.Tag(); err != nil {
		return err
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Tag returns the parsed report language.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("language %q: %w", c.Language, err)
	}

	return tag, nil
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, errUnknownLevel)
	}
}
