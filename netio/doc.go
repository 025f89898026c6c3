// Package netio is the text boundary of hypernet: it reads hypergraphs and
// writes representations in the network format a map-equation engine accepts.
//
// Read/ReadFile parse the *Vertices / *Hyperedges / *Weights input format;
// Write/WriteFile emit a builder.Representation. File helpers pick a
// compression codec (gzip, zstd, lz4) from the path extension.
package netio
