// SPDX-License-Identifier: MIT
// Package: hypernet/transition
//
// errors.go: sentinel errors for the transition package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Implementations wrap with method context via %w.
//   • Every failure here is fatal for the run: all functions are pure, so a
//     retry would reproduce the identical failure.

package transition

import "errors"

// ErrNilHypergraph indicates New was called with a nil *core.Hypergraph.
var ErrNilHypergraph = errors.New("transition: hypergraph is nil")

// ErrWeightLookup indicates γ_e(v) was requested for a pair with no recorded
// weight, i.e. v is not incident to e. Only incident pairs are ever queried by
// the enumerator, so this signals a caller error or malformed input.
var ErrWeightLookup = errors.New("transition: no vertex weight for pair")

// ErrDegenerateMass indicates a non-positive effective mass δ'(e,u) or degree
// d(u) on a requested transition. Typical cause: u is the sole weight-bearer of
// e while self-links are excluded, or all weights of e are zero.
var ErrDegenerateMass = errors.New("transition: degenerate mass")
