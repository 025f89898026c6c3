// SPDX-License-Identifier: MIT
// Package: hypernet/builder
//
// types.go: the Representation tagged union and its element types.
//
// Design:
//   • One struct for all four kinds; Kind says which optional fields are set.
//   • AllNodes/LinkCount give the engine adapter a kind-agnostic projection.

package builder

import (
	"fmt"
	"strings"
)

// Kind tags a Representation.
type Kind int

const (
	// KindBipartite: vertices plus one feature node per hyperedge.
	KindBipartite Kind = iota + 1
	// KindMultilayer: (layer, vertex) nodes, intra- and inter-layer link blocks.
	KindMultilayer
	// KindState: state nodes carrying the layer as memory over physical vertices.
	KindState
	// KindClique: plain vertex-to-vertex graph, each hyperedge flattened to a clique.
	KindClique
)

// String implements fmt.Stringer. The names double as CLI/config values.
func (k Kind) String() string {
	switch k {
	case KindBipartite:
		return "bipartite"
	case KindMultilayer:
		return "multilayer"
	case KindState:
		return "state"
	case KindClique:
		return "clique"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindBipartite, KindMultilayer, KindState, KindClique} {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Node is an output node: an original vertex or a synthetic feature node.
type Node struct {
	ID   int
	Name string
}

// Link is a weighted directed (or, for an undirected clique, undirected) link.
type Link struct {
	Source int
	Target int
	Weight float64
}

// MultilayerLink connects (SourceLayer, Source) to (TargetLayer, Target).
// Layers are hyperedge ids.
type MultilayerLink struct {
	SourceLayer int
	Source      int
	TargetLayer int
	Target      int
	Weight      float64
}

// StateNode binds a state id to the physical vertex it represents.
type StateNode struct {
	ID       int
	Physical int
}

// Representation is the output of one builder run.
//
// Field usage by Kind:
//
//	Bipartite  → Nodes, Features, BipartiteStartID, Links
//	Multilayer → Nodes, Intra, Inter
//	State      → Nodes, States, Links
//	Clique     → Nodes, Links
type Representation struct {
	Kind     Kind
	Directed bool

	Nodes []Node
	Links []Link

	Features         []Node
	BipartiteStartID int

	Intra []MultilayerLink
	Inter []MultilayerLink

	States []StateNode
}

// AllNodes returns the original vertices followed by feature nodes, the order
// in which an engine expects a bipartite node list.
func (r *Representation) AllNodes() []Node {
	out := make([]Node, 0, len(r.Nodes)+len(r.Features))
	out = append(out, r.Nodes...)

	return append(out, r.Features...)
}

// LinkCount is the number of links of any flavour.
func (r *Representation) LinkCount() int {
	return len(r.Links) + len(r.Intra) + len(r.Inter)
}
