package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	coremission "github.com/example/mclock/internal/core/mission"
	corescheduler "github.com/example/mclock/internal/core/scheduler"
)

// Source kinds
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// DirName is the per-project config directory.
const DirName = ".mclock"

// FileName is the config file inside DirName.
const FileName = "config.yaml"

// Config represents the mclock configuration.
// Values come from the config file, then MCLOCK_* environment variables.
type Config struct {
	Source        string        `yaml:"source,omitempty"         env:"MCLOCK_SOURCE"`      // mission file; empty means ~/.mclock/missions.csv
	SourceKind    string        `yaml:"source_kind"              env:"MCLOCK_SOURCE_KIND"` // "csv" or "sqlite"
	TickInterval  time.Duration `yaml:"tick_interval"            env:"MCLOCK_TICK_INTERVAL"`
	ParsePolicy   string        `yaml:"parse_policy"             env:"MCLOCK_PARSE_POLICY"`   // "permissive" or "strict"
	NegativeStyle string        `yaml:"negative_style"           env:"MCLOCK_NEGATIVE_STYLE"` // "sign" or "clamp"
	WarnWithin    time.Duration `yaml:"warn_within"              env:"MCLOCK_WARN_WITHIN"`
	LogLevel      string        `yaml:"log_level"                env:"MCLOCK_LOG_LEVEL"`
	DBPath        string        `yaml:"db_path,omitempty"        env:"MCLOCK_DB_PATH"`
	NoColor       bool          `yaml:"no_color,omitempty"       env:"MCLOCK_NO_COLOR"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		SourceKind:    SourceCSV,
		TickInterval:  corescheduler.DefaultInterval,
		ParsePolicy:   "permissive",
		NegativeStyle: string(coremission.NegativeSign),
		WarnWithin:    coremission.DefaultWarnWithin,
		LogLevel:      "warn",
	}
}

// Path returns the config file path under dir.
func Path(dir string) string {
	return filepath.Join(dir, DirName, FileName)
}

// LoadConfig reads .mclock/config.yaml from the specified directory and
// applies environment overrides. A missing file yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.yaml to directory.
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects unknown enum values and a tick that is too short.
func (c *Config) Validate() error {
	switch c.SourceKind {
	case SourceCSV, SourceSQLite:
	default:
		return fmt.Errorf("invalid source_kind %q (want %q or %q)", c.SourceKind, SourceCSV, SourceSQLite)
	}
	if err := corescheduler.ValidateInterval(c.TickInterval); err != nil {
		return fmt.Errorf("invalid tick_interval: %w", err)
	}
	switch c.ParsePolicy {
	case "permissive", "strict":
	default:
		return fmt.Errorf("invalid parse_policy %q (want \"permissive\" or \"strict\")", c.ParsePolicy)
	}
	if _, err := coremission.ParseNegativeStyle(c.NegativeStyle); err != nil {
		return fmt.Errorf("invalid negative_style: %w", err)
	}
	if c.WarnWithin < 0 {
		return fmt.Errorf("invalid warn_within %v: must not be negative", c.WarnWithin)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log_level value onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return level, nil
}

// NewLogger builds the process logger: text records on w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
