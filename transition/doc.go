// Package transition defines the random-walk transition model on a hypergraph
// with edge-dependent vertex weights.
//
// Notation (for a *core.Hypergraph H):
//
//	E(v)     hyperedges containing v
//	E(u,v)   hyperedges containing both u and v
//	d(v)     Σ_{e ∈ E(v)} ω(e)               vertex degree
//	δ(e)     Σ_{v ∈ e} γ_e(v)                hyperedge mass
//	γ_e(v)   recorded weight of v inside e
//
// The walk from u picks a hyperedge e ∋ u with probability ω(e)/d(u), then a
// member v with probability γ_e(v)/δ(e). Excluding self-links removes u's own
// weight from the denominator so the walk always moves.
//
// A Model is built once per hypergraph by New; every method is pure, so a Model
// may be shared across goroutines.
package transition
