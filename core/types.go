// Package core defines the central Hypergraph, Vertex, HyperEdge and
// VertexWeight types, and the validating constructor that freezes them.
//
// A Hypergraph is built once from parsed input and is read-only afterwards,
// so every accessor is safe for concurrent use without locks.
//
// This file declares the entity types, sentinel errors and the Hypergraph
// struct. Construction and validation live in api.go and validate.go.
//
// Errors:
//
//	ErrMalformedHypergraph - structurally invalid input (ids, membership, weights).
//	ErrVertexNotFound      - accessor referenced an unknown vertex.
//	ErrEdgeNotFound        - accessor referenced an unknown hyperedge.
package core

import "errors"

// Sentinel errors for hypergraph construction and lookup.
var (
	// ErrMalformedHypergraph indicates input that violates a structural invariant:
	// duplicate or out-of-range ids, empty or duplicated membership, a weight for a
	// non-incident pair, a missing weight for an incident pair, or a non-finite value.
	ErrMalformedHypergraph = errors.New("core: malformed hypergraph")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent hyperedge.
	ErrEdgeNotFound = errors.New("core: hyperedge not found")
)

// Vertex is a node of the hypergraph.
//
// ID is positive and unique within its Hypergraph; Name is a display label
// forwarded verbatim to the engine.
type Vertex struct {
	// ID is the unique positive identifier of this Vertex.
	ID int

	// Name is the human-readable label.
	Name string
}

// HyperEdge groups a non-empty set of vertices under a total weight.
//
// Vertices keeps the caller's member order; that order drives link
// enumeration and therefore the order of every derived representation.
type HyperEdge struct {
	// ID is the unique identifier of this hyperedge, 0 ≤ ID ≤ MaxEdgeID.
	ID int

	// Vertices lists member vertex ids, duplicate-free.
	Vertices []int

	// Omega is the hyperedge's overall mass ω(e), finite and ≥ 0.
	Omega float64
}

// Contains reports whether v is a member of e.
// Complexity: O(|e|).
func (e HyperEdge) Contains(v int) bool {
	for _, id := range e.Vertices {
		if id == v {
			return true
		}
	}

	return false
}

// VertexWeight is the edge-dependent weight γ_e(v) of vertex v inside hyperedge e.
type VertexWeight struct {
	Edge   int     // hyperedge id
	Vertex int     // vertex id
	Gamma  float64 // finite, ≥ 0
}

// MaxEdgeID is the largest admissible hyperedge id. Incidence sets are stored
// as 32-bit bitmaps keyed by edge id.
const MaxEdgeID = 1<<32 - 1

// Hypergraph is the immutable, validated hypergraph snapshot.
//
// vertices, edges and weights keep insertion order; the index maps give O(1)
// lookup by id into those slices.
type Hypergraph struct {
	vertices []Vertex
	edges    []HyperEdge
	weights  []VertexWeight

	vertexIndex map[int]int // vertex id → position in vertices
	edgeIndex   map[int]int // edge id → position in edges

	maxVertexID int
}

// Stats is a read-only summary of a Hypergraph, handy for logging and admission checks.
type Stats struct {
	VertexCount   int     `json:"vertices"`
	EdgeCount     int     `json:"hyperedges"`
	WeightCount   int     `json:"weights"`
	MaxVertexID   int     `json:"max_vertex_id"`
	MaxEdgeSize   int     `json:"max_edge_size"`
	TotalOmega    float64 `json:"total_omega"`
	IsolatedCount int     `json:"isolated_vertices"`
}
