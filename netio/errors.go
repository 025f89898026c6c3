package netio

import "errors"

var (
	// ErrSyntax marks a line the reader cannot parse. The wrapping error names
	// the line number.
	ErrSyntax = errors.New("netio: syntax error")

	// ErrUnsupportedKind indicates a Representation whose Kind the writer does
	// not know how to serialise.
	ErrUnsupportedKind = errors.New("netio: unsupported representation kind")

	// ErrNilInput indicates a nil hypergraph or representation.
	ErrNilInput = errors.New("netio: nil input")
)
