package core

import (
	"fmt"
	"math"
)

type pairKey struct {
	edge, vertex int
}

// indexVertices copies vertices in and builds the id index.
func (h *Hypergraph) indexVertices(vertices []Vertex) error {
	for i, v := range vertices {
		if v.ID <= 0 {
			return fmt.Errorf("vertex %d: id must be positive: %w", v.ID, ErrMalformedHypergraph)
		}
		if _, dup := h.vertexIndex[v.ID]; dup {
			return fmt.Errorf("vertex %d: duplicate id: %w", v.ID, ErrMalformedHypergraph)
		}
		h.vertexIndex[v.ID] = i
		h.vertices[i] = v
		if v.ID > h.maxVertexID {
			h.maxVertexID = v.ID
		}
	}

	return nil
}

// indexEdges copies hyperedges in and builds the id index. Vertices must be indexed first.
func (h *Hypergraph) indexEdges(edges []HyperEdge) error {
	for i, e := range edges {
		if e.ID < 0 || int64(e.ID) > MaxEdgeID {
			return fmt.Errorf("hyperedge %d: id outside [0,%d]: %w", e.ID, MaxEdgeID, ErrMalformedHypergraph)
		}
		if _, dup := h.edgeIndex[e.ID]; dup {
			return fmt.Errorf("hyperedge %d: duplicate id: %w", e.ID, ErrMalformedHypergraph)
		}
		if len(e.Vertices) == 0 {
			return fmt.Errorf("hyperedge %d: no members: %w", e.ID, ErrMalformedHypergraph)
		}
		if !isFiniteNonNegative(e.Omega) {
			return fmt.Errorf("hyperedge %d: omega=%v: %w", e.ID, e.Omega, ErrMalformedHypergraph)
		}

		seen := make(map[int]struct{}, len(e.Vertices))
		for _, v := range e.Vertices {
			if _, ok := h.vertexIndex[v]; !ok {
				return fmt.Errorf("hyperedge %d: unknown vertex %d: %w", e.ID, v, ErrMalformedHypergraph)
			}
			if _, dup := seen[v]; dup {
				return fmt.Errorf("hyperedge %d: vertex %d listed twice: %w", e.ID, v, ErrMalformedHypergraph)
			}
			seen[v] = struct{}{}
		}

		h.edgeIndex[e.ID] = i
		h.edges[i] = cloneEdge(e)
	}

	return nil
}

// checkWeights enforces exactly one finite, non-negative weight per incident pair.
func (h *Hypergraph) checkWeights(weights []VertexWeight) error {
	recorded := make(map[pairKey]struct{}, len(weights))
	for i, w := range weights {
		ei, ok := h.edgeIndex[w.Edge]
		if !ok {
			return fmt.Errorf("weight (%d,%d): unknown hyperedge: %w", w.Edge, w.Vertex, ErrMalformedHypergraph)
		}
		if _, ok = h.vertexIndex[w.Vertex]; !ok {
			return fmt.Errorf("weight (%d,%d): unknown vertex: %w", w.Edge, w.Vertex, ErrMalformedHypergraph)
		}
		if !h.edges[ei].Contains(w.Vertex) {
			return fmt.Errorf("weight (%d,%d): vertex not incident to hyperedge: %w", w.Edge, w.Vertex, ErrMalformedHypergraph)
		}
		if !isFiniteNonNegative(w.Gamma) {
			return fmt.Errorf("weight (%d,%d): gamma=%v: %w", w.Edge, w.Vertex, w.Gamma, ErrMalformedHypergraph)
		}
		k := pairKey{edge: w.Edge, vertex: w.Vertex}
		if _, dup := recorded[k]; dup {
			return fmt.Errorf("weight (%d,%d): duplicate: %w", w.Edge, w.Vertex, ErrMalformedHypergraph)
		}
		recorded[k] = struct{}{}
		h.weights[i] = w
	}

	for _, e := range h.edges {
		for _, v := range e.Vertices {
			if _, ok := recorded[pairKey{edge: e.ID, vertex: v}]; !ok {
				return fmt.Errorf("hyperedge %d: missing weight for vertex %d: %w", e.ID, v, ErrMalformedHypergraph)
			}
		}
	}

	return nil
}

func isFiniteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
