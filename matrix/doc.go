// Package matrix offers dense matrix views of a hypergraph.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked row-major float64 matrix.
//   - Incidence, the |V|×|E| matrix of edge-dependent vertex weights γ_e(v).
//   - TransitionMatrix, the |V|×|V| walk probabilities, with MaxRowDeviation
//     as a stochasticity diagnostic.
//
// Matrices cost O(V²) or O(V·E) memory and suit inspection of small and
// medium inputs; the builders never need them.
package matrix
