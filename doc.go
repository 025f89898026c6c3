// Package hypernet represents hypergraphs with edge-dependent vertex weights
// as ordinary networks, so that random-walk based tools (community detection,
// ranking, flow compression) can run on them unchanged.
//
// 🚀 What is hypernet?
//
//	A small pipeline of pure-Go packages:
//		• core/        validated, immutable Hypergraph (vertices, hyperedges ω, weights γ)
//		• transition/  per-step transition weights and probabilities of the walk
//		• links/       enumeration of all weighted (edge, vertex) → (edge, vertex) links
//		• builder/     Bipartite, Multilayer, State and Clique representations
//		• matrix/      dense incidence and transition matrices for inspection
//		• netio/       text reader/writer with gzip, zstd and lz4 files
//		• config/      YAML + HYPERNET_* environment configuration
//		• cmd/hypernet  the command line front end
//
// ✨ The walk
//
// From vertex u the walker picks a hyperedge e ∋ u with probability
// proportional to ω(e), then a member v of e with probability proportional to
// γ_e(v). With self-links off the walker cannot stay on u, which removes
// γ_e(u) from the normaliser:
//
//	w(u→v) = Σ_{e ∋ u,v} ω(e)·γ_e(u)·γ_e(v) / δ'(e,u)
//	δ'(e,u) = δ(e) − γ_e(u)   (δ(e) with self-links)
//
// Quick example, two hyperedges sharing vertex c:
//
//	e1 = {a, b, c}  ω = 10
//	e2 = {c, d, f}  ω = 20
//
// builds, as a bipartite network, five vertex nodes, two feature nodes
// "Hyperedge 1" and "Hyperedge 2", and one link per walk step through them.
//
// Limits: vertex ids are positive ints; hyperedge ids must lie in
// [0, core.MaxEdgeID] = [0, 2³²−1] because incidence sets are 32-bit roaring
// bitmaps.
//
//	go install github.com/katalvlaran/hypernet/cmd/hypernet@latest
package hypernet
