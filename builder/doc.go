// Package builder turns a hypergraph with edge-dependent vertex weights into one
// of four graph representations that a map-equation community-detection engine
// can consume.
//
// The package follows a functional-options style:
//
//   - Orchestration:
//     – Build(h, cons, opts...): precompute the transition model, resolve the
//     builderConfig, run one Constructor.
//     – ForKind(k): Constructor lookup by Kind (CLI and config use this).
//   - Constructors (impl_*.go):
//     – Bipartite():  vertices + one feature node per hyperedge.
//     – Multilayer(): (hyperedge, vertex) nodes in intra/inter blocks.
//     – State():      state nodes with hyperedge memory.
//     – Clique():     flat vertex graph, directed or undirected.
//   - Pure helpers over an existing link set:
//     – BipartiteFromLinks, MultilayerFromLinks, StatesFromLinks.
//   - Options:
//     – WithSelfLinks, WithShiftedProbability, WithWorkers, WithLogger (all kinds
//     that enumerate links), WithNonBacktracking (bipartite), WithDirected
//     (clique), WithFeatureName / WithFeaturePrefix (bipartite names).
//
// Guarantees:
//
//   - Every Representation is recomputed from scratch; Build has no side effects.
//   - Synthetic ids never collide with vertex ids: feature nodes start at
//     MaxVertexID()+1, state ids live in their own space.
//   - Option constructors panic on meaningless values; Build never panics and
//     returns errors wrapping ErrNilHypergraph, ErrConstructFailed or the
//     sentinels of core, transition and links.
package builder
