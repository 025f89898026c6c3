// Package config handles hypernet run configuration.
//
// Values are resolved in three layers, later ones winning: Default(), a YAML
// file (Load), HYPERNET_* environment variables (ApplyEnv, after an optional
// .env file via LoadEnvFiles). The CLI applies its flags on top.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypernet/builder"
	"github.com/katalvlaran/hypernet/netio"
)

// ErrInvalidConfig marks a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable ApplyEnv reads.
const EnvPrefix = "HYPERNET_"

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is one run of the representation pipeline.
type Config struct {
	Representation     string   `yaml:"representation"`
	SelfLinks          bool     `yaml:"self_links"`
	ShiftedProbability bool     `yaml:"shifted_probability"`
	NonBacktracking    bool     `yaml:"non_backtracking"`
	Directed           bool     `yaml:"directed"`
	Workers            int      `yaml:"workers"`
	DefaultGamma       *float64 `yaml:"default_gamma,omitempty"`
	LogLevel           string   `yaml:"log_level"`
	LogFormat          string   `yaml:"log_format"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Representation: builder.KindMultilayer.String(),
		Directed:       true,
		Workers:        builder.DefaultWorkers,
		LogLevel:       "info",
		LogFormat:      FormatText,
	}
}

// Load reads a YAML file over Default(). Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	return data, nil
}

// LoadEnvFiles loads .env style files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from HYPERNET_* variables found by lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(key string, dst *bool) {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, v, ErrInvalidConfig))
			return
		}
		*dst = b
	}

	str("REPRESENTATION", &c.Representation)
	boolean("SELF_LINKS", &c.SelfLinks)
	boolean("SHIFTED_PROBABILITY", &c.ShiftedProbability)
	boolean("NON_BACKTRACKING", &c.NonBacktracking)
	boolean("DIRECTED", &c.Directed)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)

	if v, ok := lookup(EnvPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sWORKERS=%q: %w", EnvPrefix, v, ErrInvalidConfig))
		} else {
			c.Workers = n
		}
	}
	if v, ok := lookup(EnvPrefix + "DEFAULT_GAMMA"); ok {
		g, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sDEFAULT_GAMMA=%q: %w", EnvPrefix, v, ErrInvalidConfig))
		} else {
			c.DefaultGamma = &g
		}
	}

	return errors.Join(errs...)
}

// Validate reports every invalid field, each wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	if _, err := builder.ParseKind(c.Representation); err != nil {
		errs = append(errs, fmt.Errorf("representation %q: %w", c.Representation, ErrInvalidConfig))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d < 1: %w", c.Workers, ErrInvalidConfig))
	}
	if g := c.DefaultGamma; g != nil && (*g < 0 || math.IsNaN(*g) || math.IsInf(*g, 0)) {
		errs = append(errs, fmt.Errorf("default_gamma %v: %w", *g, ErrInvalidConfig))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		errs = append(errs, fmt.Errorf("log_format %q: %w", c.LogFormat, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Kind parses Representation.
func (c *Config) Kind() (builder.Kind, error) {
	k, err := builder.ParseKind(c.Representation)
	if err != nil {
		return 0, fmt.Errorf("representation %q: %w", c.Representation, ErrInvalidConfig)
	}

	return k, nil
}

// Level parses LogLevel (debug, info, warn, error; case-insensitive).
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}

	return l, nil
}

// BuilderOptions translates the configuration into builder options. The
// caller adds its own logger.
func (c *Config) BuilderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithSelfLinks(c.SelfLinks),
		builder.WithShiftedProbability(c.ShiftedProbability),
		builder.WithNonBacktracking(c.NonBacktracking),
		builder.WithDirected(c.Directed),
	}
	if c.Workers >= 1 {
		opts = append(opts, builder.WithWorkers(c.Workers))
	}

	return opts
}

// ReadOptions translates the configuration into reader options. Call
// Validate first: an invalid DefaultGamma panics in netio.WithDefaultGamma.
func (c *Config) ReadOptions() []netio.Option {
	var opts []netio.Option
	if c.DefaultGamma != nil {
		opts = append(opts, netio.WithDefaultGamma(*c.DefaultGamma))
	}

	return opts
}
