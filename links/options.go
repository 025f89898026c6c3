// SPDX-License-Identifier: MIT
// Package: hypernet/links
//
// options.go: functional options for Enumerate.
//
// Contract:
//   • Option constructors validate and panic on meaningless input
//     (nil logger, workers < 1). Enumerate itself never panics.
//   • Defaults: no self-links, raw weight form, one worker, discard logger.

package links

import "log/slog"

// Option customises Enumerate.
type Option func(*config)

type config struct {
	selfLinks bool
	shifted   bool
	workers   int
	logger    *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: 1,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSelfLinks allows u = v transitions and keeps γ_e(u) in the denominator.
func WithSelfLinks(on bool) Option {
	return func(c *config) { c.selfLinks = on }
}

// WithShiftedProbability scores links with the degree-normalised probability form.
func WithShiftedProbability(on bool) Option {
	return func(c *config) { c.shifted = on }
}

// WithWorkers bounds how many source hyperedges are scored concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("links: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger attaches a logger for progress messages at debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("links: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
