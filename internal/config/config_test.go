package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/matryer/is"
	"golang.org/x/text/language"
)

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load("")

	is.NoErr(err)
	is.Equal(cfg, Default())
}

func TestLoad_File(t *testing.T) {
	is := is.New(t)

	path := writeConfig(t, "total_events: 50\nprime_count: 7\nlanguage: de\n")

	cfg, err := Load(path)

	is.NoErr(err)
	is.Equal(cfg.TotalEvents, 50)
	is.Equal(cfg.PrimeCount, 7)
	is.Equal(cfg.FibonacciCount, 10)
	is.Equal(cfg.Language, "de")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	is := is.New(t)

	path := writeConfig(t, "total_events: 50\n")

	t.Setenv("DATASTREAM_TOTAL_EVENTS", "75")
	t.Setenv("DATASTREAM_LOG_LEVEL", "debug")

	cfg, err := Load(path)

	is.NoErr(err)
	is.Equal(cfg.TotalEvents, 75)

	level, err := cfg.Level()
	is.NoErr(err)
	is.Equal(level, slog.LevelDebug)
}

func TestLoad_MissingFile(t *testing.T) {
	is := is.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	is.True(errors.Is(err, os.ErrNotExist))
}

func TestLoad_Invalid(t *testing.T) {
	is := is.New(t)

	path := writeConfig(t, "total_events: -1\n")

	_, err := Load(path)

	is.True(errors.Is(err, errNegativeCount))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		given   func(*Config)
		wantErr bool
	}{
		{given: func(*Config) {}},
		{given: func(c *Config) { c.TotalEvents = 0 }},
		{given: func(c *Config) { c.FibonacciCount = -1 }, wantErr: true},
		{given: func(c *Config) { c.PreviewCount = -3 }, wantErr: true},
		{given: func(c *Config) { c.Language = "not a tag!" }, wantErr: true},
		{given: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{given: func(c *Config) { c.LogLevel = "WARN" }},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			is := is.New(t)

			cfg := Default()
			test.given(&cfg)

			err := cfg.Validate()

			is.Equal(err != nil, test.wantErr)
		})
	}
}

func TestTag(t *testing.T) {
	is := is.New(t)

	cfg := Default()

	tag, err := cfg.Tag()

	is.NoErr(err)
	is.Equal(tag.String(), language.English.String())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "datastream.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}
