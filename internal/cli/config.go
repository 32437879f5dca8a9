package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/katalvlaran/gapalign/align"
	"github.com/katalvlaran/gapalign/internal/report"
)

// EnvPrefix prefixes environment overrides: GAPALIGN_GAP, GAPALIGN_LOG_LEVEL, ...
const EnvPrefix = "GAPALIGN"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Config is the resolved run configuration: flags over environment over
// config file over defaults.
type Config struct {
	Gap        string    `mapstructure:"gap"`
	Color      string    `mapstructure:"color"`
	Table      bool      `mapstructure:"table"`
	Dump       string    `mapstructure:"dump"`
	DumpFormat string    `mapstructure:"dump_format"`
	MaxCells   int       `mapstructure:"max_cells"`
	Workers    int       `mapstructure:"workers"`
	Format     string    `mapstructure:"format"`
	Path       bool      `mapstructure:"path"`
	Upper      bool      `mapstructure:"upper"`
	Log        LogConfig `mapstructure:"log"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// setDefaults registers the defaults of every key on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("gap", string(align.DefaultGap))
	v.SetDefault("color", ColorAuto)
	v.SetDefault("table", false)
	v.SetDefault("dump", "")
	v.SetDefault("dump_format", string(report.DumpJSON))
	v.SetDefault("max_cells", align.DefaultMaxCells)
	v.SetDefault("workers", align.DefaultWorkers)
	v.SetDefault("format", FormatText)
	v.SetDefault("path", false)
	v.SetDefault("upper", false)
	v.SetDefault("log.level", "warn")
}

// newViper builds a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig reads the optional YAML file, unmarshals and validates.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Gap) != 1 {
		return fmt.Errorf("gap %q must be a single character: %w", c.Gap, ErrInvalidConfig)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color %q (auto|always|never): %w", c.Color, ErrInvalidConfig)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format %q (text|json): %w", c.Format, ErrInvalidConfig)
	}
	if _, err := report.ParseDumpFormat(c.DumpFormat); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if c.MaxCells <= 0 {
		return fmt.Errorf("max_cells %d must be positive: %w", c.MaxCells, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d must not be negative: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// GapRune returns the configured gap marker.
func (c Config) GapRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Gap)
	return r
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}

	return lvl, nil
}

// AlignOptions maps the configuration onto align options.
func (c Config) AlignOptions(logger *slog.Logger) []align.Option {
	opts := []align.Option{
		align.WithGap(c.GapRune()),
		align.WithMaxCells(c.MaxCells),
		align.WithWavefront(c.Workers),
		align.WithLogger(logger),
	}
	if c.Table || c.Dump != "" {
		opts = append(opts, align.WithKeepGrid())
	}

	return opts
}
