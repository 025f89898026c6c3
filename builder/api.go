// SPDX-License-Identifier: MIT
// Package: hypernet/builder
//
// api.go: thin public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: Build(h, cons, opts...). Builds the transition model
//     once, resolves cfg, runs cons.
//   • Public factories are declared here, implemented in impl_*.go.
//   • Functional options (BuilderOption) resolve into an immutable builderConfig.
//   • Determinism: same hypergraph and options ⇒ identical Representation.
//   • Safety: never panic at runtime; return sentinel-wrapped errors.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/links"
	"github.com/katalvlaran/hypernet/transition"
)

// Source is what every Constructor reads: the hypergraph snapshot and the
// transition model precomputed from it.
type Source struct {
	Graph *core.Hypergraph
	Model *transition.Model
}

// enumerate runs the link enumerator with the knobs in cfg.
func (s Source) enumerate(cfg builderConfig) ([]links.WeightedLink, error) {
	return links.Enumerate(s.Graph, s.Model, cfg.linkOptions()...)
}

// Constructor produces one Representation from a Source using the resolved
// builderConfig. Constructors MUST:
//   - Return sentinel-wrapped errors, never panic.
//   - Leave Source untouched; all mutable state lives in the call frame.
//   - Emit nodes and links in a stable, documented order.
type Constructor func(src Source, cfg builderConfig) (*Representation, error)

// Build precomputes the transition model of h, resolves the builder
// configuration from opts and runs cons.
//
// Errors:
//   - ErrNilHypergraph if h is nil.
//   - ErrConstructFailed if cons is nil.
//   - Any constructor error, wrapped as "Build: %w" (core, transition and links
//     sentinels stay matchable with errors.Is).
//
// Complexity: O(V + Σ|e| + W) for the model plus the constructor cost.
func Build(h *core.Hypergraph, cons Constructor, opts ...BuilderOption) (*Representation, error) {
	if h == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilHypergraph)
	}
	if cons == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuild, ErrConstructFailed)
	}

	cfg := newBuilderConfig(opts...)

	m, err := transition.New(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	rep, err := cons(Source{Graph: h, Model: m}, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	cfg.logger.Debug("representation built",
		slog.String("kind", rep.Kind.String()),
		slog.Int("nodes", len(rep.AllNodes())),
		slog.Int("links", rep.LinkCount()))

	return rep, nil
}

// ForKind returns the Constructor for k.
//
// Errors: ErrUnknownKind for a Kind outside Bipartite..Clique.
func ForKind(k Kind) (Constructor, error) {
	switch k {
	case KindBipartite:
		return Bipartite(), nil
	case KindMultilayer:
		return Multilayer(), nil
	case KindState:
		return State(), nil
	case KindClique:
		return Clique(), nil
	default:
		return nil, fmt.Errorf("ForKind(%v): %w", k, ErrUnknownKind)
	}
}

// =============================================================================
// Representation factories (declarations) - implemented in impl_*.go
// =============================================================================

// Bipartite expands every link (e1,u,e2,v,w) into u→feature(e2)→v.
//func Bipartite() Constructor

// Multilayer keeps the hyperedge a walk is in as the layer of a node.
//func Multilayer() Constructor

// State flattens the multilayer network into memory state nodes.
//func State() Constructor

// Clique flattens every hyperedge into a clique among its members.
//func Clique() Constructor
