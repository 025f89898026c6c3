// SPDX-License-Identifier: MIT
// Package: hypernet/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • selfLinks       = false
//   • shifted         = false   (raw weight form)
//   • nonBacktracking = false   (bipartite only)
//   • directed        = true    (clique only; other kinds are always directed)
//   • workers         = DefaultWorkers
//   • logger          = discard
//   • featureName     = DefaultFeatureName ("Hyperedge <id>")

package builder

import (
	"log/slog"

	"github.com/katalvlaran/hypernet/links"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	selfLinks       bool
	shifted         bool
	nonBacktracking bool
	directed        bool

	workers int
	logger  *slog.Logger

	featureName NameFn
}

// newBuilderConfig constructs a config with defaults and applies opts in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		directed:    true,
		workers:     DefaultWorkers,
		logger:      slog.New(slog.DiscardHandler),
		featureName: DefaultFeatureName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// linkOptions forwards the enumeration-relevant knobs to links.Enumerate.
func (c builderConfig) linkOptions() []links.Option {
	return []links.Option{
		links.WithSelfLinks(c.selfLinks),
		links.WithShiftedProbability(c.shifted),
		links.WithWorkers(c.workers),
		links.WithLogger(c.logger),
	}
}
