// SPDX-License-Identifier: MIT
// Package: hypernet/links
//
// enumerate.go: WeightedLink enumeration over every hyperedge pair.
//
// Contract:
//   • For every ordered edge pair (e1,e2), e1 = e2 included, in hypergraph order,
//     and every ordered member pair (u∈e1, v∈e2) in member order, emit
//     (e1,u,e2,v,w) unless u = v without self-links or w < Cutoff.
//   • w is the probability form when shifted, the raw weight form otherwise.
//   • Output order is a pure function of input order; WithWorkers(n) splits the
//     e1 range but concatenates chunks in e1 order, so results are identical.
//
// Complexity:
//   • Time O(|E|² · maxDegree² · T) where T is the cost of one transition lookup.
//   • Space O(#links).

package links

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/transition"
)

const methodEnumerate = "Enumerate"

// Cutoff is the near-zero threshold below which a transition is treated as
// numerical noise and dropped.
const Cutoff = 1e-10

// minMembersWithoutSelfLinks is the smallest hyperedge that can carry a
// transition when a walk may not stay on its vertex.
const minMembersWithoutSelfLinks = 2

// WeightedLink is one directed transition: leave Source via SourceEdge, arrive
// at Target via TargetEdge, with weight Weight ≥ Cutoff.
type WeightedLink struct {
	SourceEdge int
	Source     int
	TargetEdge int
	Target     int
	Weight     float64
}

// Intra reports whether the link stays inside a single hyperedge (e1 = e2).
func (l WeightedLink) Intra() bool { return l.SourceEdge == l.TargetEdge }

// Enumerate scores every cross-hyperedge vertex pair of h with model m.
//
// Implementation:
//   - Stage 1: Validate inputs; without self-links reject hyperedges with < 2 members.
//   - Stage 2: Score each e1 row (all e2, all member pairs), optionally in parallel.
//   - Stage 3: Concatenate rows in e1 order.
//
// Errors:
//   - ErrNilInput if h or m is nil.
//   - core.ErrMalformedHypergraph for a singleton hyperedge without self-links.
//   - transition.ErrDegenerateMass / transition.ErrWeightLookup from the model.
func Enumerate(h *core.Hypergraph, m *transition.Model, opts ...Option) ([]WeightedLink, error) {
	if h == nil || m == nil {
		return nil, fmt.Errorf("%s: %w", methodEnumerate, ErrNilInput)
	}
	cfg := newConfig(opts...)
	edges := h.Edges()

	if !cfg.selfLinks {
		for _, e := range edges {
			if len(e.Vertices) < minMembersWithoutSelfLinks {
				return nil, fmt.Errorf("%s: hyperedge %d has %d member(s) and self-links are excluded: %w",
					methodEnumerate, e.ID, len(e.Vertices), core.ErrMalformedHypergraph)
			}
		}
	}

	form := transition.FormWeight
	if cfg.shifted {
		form = transition.FormProbability
	}
	cfg.logger.Debug("enumerating links",
		slog.Int("hyperedges", len(edges)),
		slog.Bool("self_links", cfg.selfLinks),
		slog.String("form", form.String()),
		slog.Int("workers", cfg.workers))

	rows := make([][]WeightedLink, len(edges))
	if cfg.workers == 1 {
		for i := range edges {
			row, err := scoreRow(m, edges, i, form, cfg.selfLinks)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodEnumerate, err)
			}
			rows[i] = row
		}
	} else {
		var g errgroup.Group
		g.SetLimit(cfg.workers)
		for i := range edges {
			g.Go(func() error {
				row, err := scoreRow(m, edges, i, form, cfg.selfLinks)
				if err != nil {
					return err
				}
				rows[i] = row // each goroutine owns exactly one slot
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("%s: %w", methodEnumerate, err)
		}
	}

	total := 0
	for _, row := range rows {
		total += len(row)
	}
	out := make([]WeightedLink, 0, total)
	for _, row := range rows {
		out = append(out, row...)
	}
	cfg.logger.Debug("links enumerated", slog.Int("links", len(out)))

	return out, nil
}

// scoreRow emits every link whose source edge is edges[i].
func scoreRow(m *transition.Model, edges []core.HyperEdge, i int, form transition.Form, selfLinks bool) ([]WeightedLink, error) {
	e1 := edges[i]
	var row []WeightedLink
	for _, e2 := range edges {
		for _, u := range e1.Vertices {
			for _, v := range e2.Vertices {
				if !selfLinks && u == v {
					continue
				}
				w, err := m.Transition(transition.Step{From: u, FromEdge: e1.ID, To: v, ToEdge: e2.ID}, form, selfLinks)
				if err != nil {
					return nil, err
				}
				if w < Cutoff {
					continue
				}
				row = append(row, WeightedLink{SourceEdge: e1.ID, Source: u, TargetEdge: e2.ID, Target: v, Weight: w})
			}
		}
	}

	return row, nil
}
