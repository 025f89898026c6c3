// SPDX-License-Identifier: MIT
// Package: hypernet/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil funcs, workers < 1). Constructors themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "log/slog"

// BuilderOption customizes a Build call by mutating a builderConfig before
// any constructor runs.
type BuilderOption func(*builderConfig)

// WithSelfLinks allows u→u transitions. It also switches the effective mass of
// a hyperedge from δ(e) − γ_e(u) to δ(e).
func WithSelfLinks(on bool) BuilderOption {
	return func(c *builderConfig) { c.selfLinks = on }
}

// WithShiftedProbability scores links with the degree-normalised probability
// form instead of the raw weight. Clique ignores it.
func WithShiftedProbability(on bool) BuilderOption {
	return func(c *builderConfig) { c.shifted = on }
}

// WithNonBacktracking drops intra-hyperedge links before the bipartite
// expansion. Only Bipartite reads it.
func WithNonBacktracking(on bool) BuilderOption {
	return func(c *builderConfig) { c.nonBacktracking = on }
}

// WithDirected selects between a directed and an undirected clique.
// Only Clique reads it.
func WithDirected(on bool) BuilderOption {
	return func(c *builderConfig) { c.directed = on }
}

// WithWorkers sets how many source hyperedges link enumeration scores
// concurrently. Output does not depend on n. Panics if n < 1.
func WithWorkers(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}
	return func(c *builderConfig) { c.workers = n }
}

// WithLogger attaches a logger; builders log progress at debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithFeatureName overrides how bipartite feature nodes are named.
// Panics on nil.
func WithFeatureName(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithFeatureName(nil)")
	}
	return func(c *builderConfig) { c.featureName = fn }
}
