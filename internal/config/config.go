// Package config loads numex settings from defaults, an optional TOML or YAML
// file, NUMEX_* environment variables and finally command-line flags (applied
// by the caller), in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numex/series"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "NUMEX_"

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the complete application configuration.
type Config struct {
	Series SeriesConfig `toml:"series" yaml:"series" envPrefix:"SERIES_"`
	Matrix MatrixConfig `toml:"matrix" yaml:"matrix" envPrefix:"MATRIX_"`
	Log    LogConfig    `toml:"log" yaml:"log" envPrefix:"LOG_"`
}

// SeriesConfig holds the exponential-series settings.
type SeriesConfig struct {
	Epsilon       float64   `toml:"epsilon" yaml:"epsilon" env:"EPSILON"`
	MaxIterations int       `toml:"max_iterations" yaml:"max_iterations" env:"MAX_ITERATIONS"`
	FixedTerms    int       `toml:"fixed_terms" yaml:"fixed_terms" env:"FIXED_TERMS"`
	Probes        []float64 `toml:"probes" yaml:"probes" env:"PROBES" envSeparator:","`
}

// MatrixConfig holds the vector-iteration settings.
type MatrixConfig struct {
	Dimension int `toml:"dimension" yaml:"dimension" env:"DIMENSION"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" env:"LEVEL"`
	Format string `toml:"format" yaml:"format" env:"FORMAT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Series: SeriesConfig{
			Epsilon:       series.DefaultEpsilon,
			MaxIterations: series.DefaultMaxIterations,
			FixedTerms:    series.DefaultTerms,
			Probes:        append([]float64(nil), series.Probes...),
		},
		Matrix: MatrixConfig{Dimension: 3},
		Log:    LogConfig{Level: "info", Format: FormatConsole},
	}
}

// Load builds a Config from defaults, the file at path (skipped when empty)
// and the process environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.LoadEnv(nil); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile overlays the file at path; the format follows the extension
// (.yaml/.yml → YAML, anything else → TOML). Unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = c.decodeYAML(content)
	default:
		err = c.decodeTOML(content)
	}
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

func (c *Config) decodeTOML(content []byte) error {
	md, err := toml.Decode(string(content), c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	return nil
}

func (c *Config) decodeYAML(content []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// LoadEnv overlays NUMEX_* variables. A nil environ reads the process
// environment; tests pass an explicit map.
func (c *Config) LoadEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}

	return nil
}

// Validate checks every field and reports the first violation wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case math.IsNaN(c.Series.Epsilon) || math.IsInf(c.Series.Epsilon, 0) || c.Series.Epsilon < 0:
		return fmt.Errorf("%w: series.epsilon=%v must be finite and >= 0", ErrInvalidConfig, c.Series.Epsilon)
	case c.Series.MaxIterations < 1:
		return fmt.Errorf("%w: series.max_iterations=%d must be >= 1", ErrInvalidConfig, c.Series.MaxIterations)
	case c.Series.FixedTerms < 0:
		return fmt.Errorf("%w: series.fixed_terms=%d must be >= 0", ErrInvalidConfig, c.Series.FixedTerms)
	case c.Matrix.Dimension < 1:
		return fmt.Errorf("%w: matrix.dimension=%d must be >= 1", ErrInvalidConfig, c.Matrix.Dimension)
	}
	for _, p := range c.Series.Probes {
		if math.IsNaN(p) {
			return fmt.Errorf("%w: series.probes contains NaN", ErrInvalidConfig)
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format=%q must be %q or %q", ErrInvalidConfig, c.Log.Format, FormatConsole, FormatJSON)
	}

	return nil
}

// SeriesOptions converts the series section into series.Option values.
// Call only on a validated Config; the option constructors panic on bad input.
func (c *Config) SeriesOptions() []series.Option {
	return []series.Option{
		series.WithEpsilon(c.Series.Epsilon),
		series.WithMaxIterations(c.Series.MaxIterations),
		series.WithTerms(c.Series.FixedTerms),
	}
}
