// SPDX-License-Identifier: MIT
// Package: hypernet/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w; errors from core, transition
//     and links pass through unchanged so their sentinels stay matchable.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrNilHypergraph indicates Build or a *FromLinks helper received a nil hypergraph.
var ErrNilHypergraph = errors.New("builder: nil hypergraph")

// ErrConstructFailed indicates a nil Constructor or an internal inconsistency
// while assembling a representation.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates a representation name that ParseKind does not know.
var ErrUnknownKind = errors.New("builder: unknown representation kind")
