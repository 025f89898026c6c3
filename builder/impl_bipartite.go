// SPDX-License-Identifier: MIT
// Package: hypernet/builder
//
// impl_bipartite.go: vertex/feature bipartite representation.
//
// Contract:
//   • One feature node per hyperedge, ids MaxVertexID()+1, +2, ... assigned in
//     ascending hyperedge id order; BipartiteStartID is the first of them.
//   • Each WeightedLink (e1,u,e2,v,w) becomes u→feature(e2) and feature(e2)→v,
//     both with weight w, in link order. No aggregation.
//   • Non-backtracking drops links with e1 = e2 before the expansion, so a walk
//     always changes hyperedge between two hops.
//
// Complexity:
//   • Time O(|E| log |E| + #links), space O(|E| + #links).

package builder

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/links"
)

// Bipartite returns a Constructor for the bipartite representation.
// Reads selfLinks, shifted, workers (enumeration), nonBacktracking, featureName.
func Bipartite() Constructor {
	return func(src Source, cfg builderConfig) (*Representation, error) {
		ls, err := src.enumerate(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBipartite, err)
		}
		rep, err := BipartiteFromLinks(src.Graph, ls, cfg.nonBacktracking, cfg.featureName)
		if err != nil {
			return nil, err
		}
		cfg.logger.Debug("bipartite expanded",
			slog.Int("features", len(rep.Features)),
			slog.Int("start_id", rep.BipartiteStartID),
			slog.Bool("non_backtracking", cfg.nonBacktracking))

		return rep, nil
	}
}

// BipartiteFromLinks expands an already enumerated link set. A nil name
// falls back to DefaultFeatureName.
//
// Errors:
//   - ErrNilHypergraph if h is nil.
//   - ErrConstructFailed if a link names a hyperedge h does not have.
func BipartiteFromLinks(h *core.Hypergraph, ls []links.WeightedLink, nonBacktracking bool, name NameFn) (*Representation, error) {
	if h == nil {
		return nil, fmt.Errorf("%s: %w", methodBipartite, ErrNilHypergraph)
	}
	if name == nil {
		name = DefaultFeatureName
	}

	edges := h.Edges()
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	slices.Sort(ids)

	start := h.MaxVertexID() + 1
	features, featureOf := featureNodes(ids, start, name)

	out := make([]Link, 0, 2*len(ls))
	for _, l := range ls {
		if nonBacktracking && l.Intra() {
			continue
		}
		f, ok := featureOf[l.TargetEdge]
		if !ok {
			return nil, fmt.Errorf("%s: link targets unknown hyperedge %d: %w",
				methodBipartite, l.TargetEdge, ErrConstructFailed)
		}
		out = append(out,
			Link{Source: l.Source, Target: f, Weight: l.Weight},
			Link{Source: f, Target: l.Target, Weight: l.Weight},
		)
	}

	return &Representation{
		Kind:             KindBipartite,
		Directed:         true,
		Nodes:            vertexNodes(h.Vertices()),
		Links:            out,
		Features:         features,
		BipartiteStartID: start,
	}, nil
}
