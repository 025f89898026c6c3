// SPDX-License-Identifier: MIT
// Package: hypernet/netio
//
// file.go: path-based helpers with transparent compression.
//
// The file extension picks the codec: ".gz" gzip, ".zst" zstd, ".lz4" lz4
// frames, anything else plain text.

package netio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/hypernet/builder"
	"github.com/katalvlaran/hypernet/core"
)

// Codec is a stream compression format.
type Codec int

// Supported codecs.
const (
	CodecNone Codec = iota
	CodecGzip
	CodecZstd
	CodecLZ4
)

// String implements fmt.Stringer.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecGzip:
		return "gzip"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Codec(%d)", int(c))
	}
}

// CodecForPath picks the codec from the file extension (case-insensitive).
func CodecForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CodecGzip
	case ".zst":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

// NewReader wraps r with the decompressor for c. Closing the result releases
// the decompressor; it never closes r.
func NewReader(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case CodecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("NewReader(%v): %w", c, err)
		}
		return zr, nil
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("NewReader(%v): %w", c, err)
		}
		return zr.IOReadCloser(), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewWriter wraps w with the compressor for c. Close flushes the compressor;
// it never closes w.
func NewWriter(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("NewWriter(%v): %w", c, err)
		}
		return zw, nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// ReadFile opens path, decompresses it by extension and parses it with Read.
func ReadFile(path string, opts ...Option) (*core.Hypergraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	r, err := NewReader(f, CodecForPath(path))
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}
	defer r.Close()

	h, err := Read(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return h, nil
}

// WriteFile writes rep to path, compressing by extension.
func WriteFile(path string, rep *builder.Representation) error {
	return writeFile(path, func(w io.Writer) error { return Write(w, rep) })
}

// WriteHypergraphFile writes h to path in the input format, compressing by extension.
func WriteHypergraphFile(path string, h *core.Hypergraph) error {
	return writeFile(path, func(w io.Writer) error { return WriteHypergraph(w, h) })
}

func writeFile(path string, body func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile(%s): %w", path, cerr)
		}
	}()

	w, err := NewWriter(f, CodecForPath(path))
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if err = body(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}

	return nil
}
