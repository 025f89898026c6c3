// Package core provides the immutable hypergraph model consumed by the
// transition, links and builder packages.
//
// A hypergraph H = (V, E, ω, γ) consists of:
//
//   - Vertices V, each with a positive integer id and a display name.
//   - Hyperedges E, each a non-empty set of vertices with a total mass ω(e).
//   - Edge-dependent vertex weights γ_e(v), one per incident (e, v) pair.
//
// Why a frozen snapshot?
//
//   - Every representation is an independent projection of the same input, so
//     nothing downstream may mutate it.
//   - Validation happens once, up front: a malformed weight table is rejected by
//     NewHypergraph instead of surfacing later as a silent zero.
//   - Without mutation there is nothing to lock; concurrent readers are safe.
//
// Invariants enforced by NewHypergraph:
//
//	– vertex ids are positive and unique
//	– hyperedge ids are unique and lie in [0, MaxEdgeID] (2³²−1): incidence
//	  sets downstream are 32-bit roaring bitmaps keyed by edge id, so larger or
//	  negative ids are rejected with ErrMalformedHypergraph
//	– every hyperedge has ≥ 1 member, no duplicates, only known vertices
//	– ω(e) and γ_e(v) are finite and ≥ 0
//	– exactly one VertexWeight per incident pair; none for non-incident pairs
//
// Core Methods:
//
//	NewHypergraph(vs, es, ws) (*Hypergraph, error) // O(V + Σ|e| + W)
//	Vertices() []Vertex                            // O(V), insertion order
//	Edges() []HyperEdge                            // O(Σ|e|), insertion order
//	Weights() []VertexWeight                       // O(W)
//	Vertex(id) / Edge(id)                          // O(1) / O(|e|)
//	MaxVertexID() int                              // O(1)
//	Stats() Stats                                  // O(V + Σ|e|)
//	Components() [][]int                           // O(V + Σ|e|)
//
// Errors:
//
//	ErrMalformedHypergraph – structural violation, wrapped with the offending ids
//	ErrVertexNotFound      – unknown vertex id in an accessor
//	ErrEdgeNotFound        – unknown hyperedge id in an accessor
package core
