// SPDX-License-Identifier: MIT
// Package: hypernet/builder
//
// impl_clique.go: unipartite clique expansion.
//
// Contract:
//   • Candidate pairs are the vertex pairs u < v sharing at least one
//     hyperedge, plus u = u for every incident vertex when self-links are on.
//   • Each pair is weighted once with the raw form w(u→v), summed over E(u,v),
//     with the same effective-mass rule as link enumeration.
//   • Undirected: one link (u, v, w(u→v)) per pair.
//     Directed:   (u, v, w(u→v)) and, for u ≠ v, (v, u, w(v→u)).
//   • Links below links.Cutoff are dropped; output is sorted by (source, target).
//   • The shifted flag is ignored: the clique is an unnormalised graph.
//
// Complexity:
//   • Time O(Σ|e|² · T + P log P) for P pairs and T per-pair lookup cost.
//   • Space O(P).

package builder

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/hypernet/links"
	"github.com/katalvlaran/hypernet/transition"
)

type vertexPair struct {
	u, v int
}

// Clique returns a Constructor for the clique representation.
// Reads selfLinks and directed.
func Clique() Constructor {
	return func(src Source, cfg builderConfig) (*Representation, error) {
		// Stage 1: collect candidate pairs with one witness hyperedge each.
		witness := make(map[vertexPair]int)
		for _, e := range src.Graph.Edges() {
			for _, u := range e.Vertices {
				for _, v := range e.Vertices {
					if u > v || (u == v && !cfg.selfLinks) {
						continue
					}
					p := vertexPair{u: u, v: v}
					if _, seen := witness[p]; !seen {
						witness[p] = e.ID
					}
				}
			}
		}
		pairs := make([]vertexPair, 0, len(witness))
		for p := range witness {
			pairs = append(pairs, p)
		}
		slices.SortFunc(pairs, func(a, b vertexPair) int {
			return cmp.Or(cmp.Compare(a.u, b.u), cmp.Compare(a.v, b.v))
		})

		// Stage 2: weigh each pair, both directions if directed.
		out := make([]Link, 0, len(pairs))
		for _, p := range pairs {
			e := witness[p]
			w, err := src.Model.Weight(transition.Step{From: p.u, FromEdge: e, To: p.v, ToEdge: e}, cfg.selfLinks)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodClique, err)
			}
			if w >= links.Cutoff {
				out = append(out, Link{Source: p.u, Target: p.v, Weight: w})
			}
			if !cfg.directed || p.u == p.v {
				continue
			}
			w, err = src.Model.Weight(transition.Step{From: p.v, FromEdge: e, To: p.u, ToEdge: e}, cfg.selfLinks)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodClique, err)
			}
			if w >= links.Cutoff {
				out = append(out, Link{Source: p.v, Target: p.u, Weight: w})
			}
		}

		// Stage 3: reverse links broke the order; restore (source, target).
		slices.SortFunc(out, func(a, b Link) int {
			return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.Target, b.Target))
		})
		cfg.logger.Debug("clique expanded",
			slog.Int("pairs", len(pairs)),
			slog.Bool("directed", cfg.directed))

		return &Representation{
			Kind:     KindClique,
			Directed: cfg.directed,
			Nodes:    vertexNodes(src.Graph.Vertices()),
			Links:    out,
		}, nil
	}
}
