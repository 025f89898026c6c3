package netio

import (
	"log/slog"
	"math"
)

// Option customises Read and ReadFile.
type Option func(*readConfig)

type readConfig struct {
	defaultGamma *float64
	logger       *slog.Logger
}

func newReadConfig(opts ...Option) readConfig {
	cfg := readConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDefaultGamma fills every incident (edge, vertex) pair that has no
// *Weights line with γ = g. Without it such pairs make the input malformed.
// Panics if g is negative, NaN or infinite.
func WithDefaultGamma(g float64) Option {
	if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		panic("netio: WithDefaultGamma(g<0 or non-finite)")
	}
	return func(c *readConfig) { c.defaultGamma = &g }
}

// WithLogger attaches a logger; the reader reports filled weights at debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("netio: WithLogger(nil)")
	}
	return func(c *readConfig) { c.logger = l }
}
