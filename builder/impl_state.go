// SPDX-License-Identifier: MIT
// Package: hypernet/builder
//
// impl_state.go: state-node representation.
//
// Contract:
//   • Every (hyperedge, vertex) pair seen as a link source or target gets a
//     state id, FirstStateID upwards, in first-seen order (source before
//     target within a link). Ids depend on link order only.
//   • One StateNode per distinct pair, in first-seen order.
//   • One Link (state(e1,u) → state(e2,v), w) per WeightedLink.
//   • The id map lives in the call frame; repeated calls are independent.
//
// Complexity: O(#links) time and space.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hypernet/links"
)

// stateKey is a (hyperedge, vertex) pair.
type stateKey struct {
	edge, vertex int
}

// State returns a Constructor for the state representation.
// Reads selfLinks, shifted, workers.
func State() Constructor {
	return func(src Source, cfg builderConfig) (*Representation, error) {
		ls, err := src.enumerate(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodState, err)
		}
		rep := StatesFromLinks(ls)
		rep.Nodes = vertexNodes(src.Graph.Vertices())
		cfg.logger.Debug("states assigned", slog.Int("states", len(rep.States)))

		return rep, nil
	}
}

// StatesFromLinks assigns state ids and rewrites ls as state links.
// The returned Representation has no Nodes; State fills them in.
func StatesFromLinks(ls []links.WeightedLink) *Representation {
	ids := make(map[stateKey]int)
	var states []StateNode

	stateOf := func(edge, vertex int) int {
		k := stateKey{edge: edge, vertex: vertex}
		if id, ok := ids[k]; ok {
			return id
		}
		id := FirstStateID + len(ids)
		ids[k] = id
		states = append(states, StateNode{ID: id, Physical: vertex})

		return id
	}

	out := make([]Link, 0, len(ls))
	for _, l := range ls {
		s := stateOf(l.SourceEdge, l.Source)
		t := stateOf(l.TargetEdge, l.Target)
		out = append(out, Link{Source: s, Target: t, Weight: l.Weight})
	}

	return &Representation{
		Kind:     KindState,
		Directed: true,
		Links:    out,
		States:   states,
	}
}
