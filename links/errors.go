package links

import "errors"

// ErrNilInput indicates Enumerate received a nil hypergraph or model.
var ErrNilInput = errors.New("links: nil hypergraph or model")
