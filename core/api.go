// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor and read-only getters for Hypergraph.
// Policy:
//   - Getters never expose internal slices; callers receive copies.
//   - Iteration order is insertion order, which is the caller's input order.
//   - Every exported function documents complexity.

package core

import "fmt"

const methodNewHypergraph = "NewHypergraph"

// NewHypergraph validates and freezes the given entities into a Hypergraph.
//
// Implementation:
//   - Stage 1: Index vertices, rejecting non-positive or duplicate ids.
//   - Stage 2: Index hyperedges, rejecting bad ids, empty/duplicate membership,
//     unknown members and non-finite or negative omega.
//   - Stage 3: Check weights: one per incident pair, none for non-incident pairs,
//     finite and non-negative gamma.
//   - Stage 4: Deep-copy everything so later caller mutations cannot leak in.
//
// Errors:
//   - ErrMalformedHypergraph wrapped with the offending identifiers.
//
// Complexity:
//   - Time O(V + Σ|e| + W), Space O(V + Σ|e| + W).
func NewHypergraph(vertices []Vertex, edges []HyperEdge, weights []VertexWeight) (*Hypergraph, error) {
	h := &Hypergraph{
		vertices:    make([]Vertex, len(vertices)),
		edges:       make([]HyperEdge, len(edges)),
		weights:     make([]VertexWeight, len(weights)),
		vertexIndex: make(map[int]int, len(vertices)),
		edgeIndex:   make(map[int]int, len(edges)),
	}

	if err := h.indexVertices(vertices); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewHypergraph, err)
	}
	if err := h.indexEdges(edges); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewHypergraph, err)
	}
	if err := h.checkWeights(weights); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewHypergraph, err)
	}

	return h, nil
}

// Vertices returns a copy of all vertices in insertion order.
// Complexity: O(V).
func (h *Hypergraph) Vertices() []Vertex {
	out := make([]Vertex, len(h.vertices))
	copy(out, h.vertices)

	return out
}

// Edges returns a deep copy of all hyperedges in insertion order.
// Complexity: O(Σ|e|).
func (h *Hypergraph) Edges() []HyperEdge {
	out := make([]HyperEdge, len(h.edges))
	for i, e := range h.edges {
		out[i] = cloneEdge(e)
	}

	return out
}

// Weights returns a copy of all vertex weights in insertion order.
// Complexity: O(W).
func (h *Hypergraph) Weights() []VertexWeight {
	out := make([]VertexWeight, len(h.weights))
	copy(out, h.weights)

	return out
}

// Vertex looks a vertex up by id.
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (h *Hypergraph) Vertex(id int) (Vertex, error) {
	i, ok := h.vertexIndex[id]
	if !ok {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", id, ErrVertexNotFound)
	}

	return h.vertices[i], nil
}

// Edge looks a hyperedge up by id and returns a copy.
// Errors: ErrEdgeNotFound.
// Complexity: O(|e|).
func (h *Hypergraph) Edge(id int) (HyperEdge, error) {
	i, ok := h.edgeIndex[id]
	if !ok {
		return HyperEdge{}, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}

	return cloneEdge(h.edges[i]), nil
}

// HasVertex reports whether id names a vertex. O(1).
func (h *Hypergraph) HasVertex(id int) bool {
	_, ok := h.vertexIndex[id]
	return ok
}

// HasEdge reports whether id names a hyperedge. O(1).
func (h *Hypergraph) HasEdge(id int) bool {
	_, ok := h.edgeIndex[id]
	return ok
}

// MaxVertexID returns the largest vertex id, or 0 for an empty hypergraph.
// Builders allocate synthetic node ids starting at MaxVertexID()+1.
func (h *Hypergraph) MaxVertexID() int { return h.maxVertexID }

// VertexCount returns |V|. O(1).
func (h *Hypergraph) VertexCount() int { return len(h.vertices) }

// EdgeCount returns |E|. O(1).
func (h *Hypergraph) EdgeCount() int { return len(h.edges) }

// Stats summarises sizes and totals in a single pass.
// Complexity: O(V + Σ|e|).
func (h *Hypergraph) Stats() Stats {
	st := Stats{
		VertexCount: len(h.vertices),
		EdgeCount:   len(h.edges),
		WeightCount: len(h.weights),
		MaxVertexID: h.maxVertexID,
	}

	covered := make(map[int]struct{}, len(h.vertices))
	for _, e := range h.edges {
		st.TotalOmega += e.Omega
		if len(e.Vertices) > st.MaxEdgeSize {
			st.MaxEdgeSize = len(e.Vertices)
		}
		for _, v := range e.Vertices {
			covered[v] = struct{}{}
		}
	}
	st.IsolatedCount = len(h.vertices) - len(covered)

	return st
}

func cloneEdge(e HyperEdge) HyperEdge {
	members := make([]int, len(e.Vertices))
	copy(members, e.Vertices)

	return HyperEdge{ID: e.ID, Vertices: members, Omega: e.Omega}
}
