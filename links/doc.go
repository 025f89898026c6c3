// Package links enumerates the weighted transitions of a hypergraph random walk.
//
// A WeightedLink (e1, u, e2, v, w) says: a walker that reached u through e1 can
// move to v and continue "inside" e2 with weight w. The builder package turns
// the resulting link set into bipartite, multilayer or state networks.
//
// Links below Cutoff are numerical noise and are never emitted; they are not an
// error. Every other failure (degenerate mass, malformed input) aborts the run.
package links
