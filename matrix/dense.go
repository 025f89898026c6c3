// SPDX-License-Identifier: MIT
// Package: hypernet/matrix
//
// dense.go: row-major float64 matrix with bounds-checked access.
//
// Contract:
//   • NewDense rejects non-positive shapes with ErrBadShape.
//   • At/Set never panic; out-of-range indices return ErrOutOfRange.
//   • Set rejects NaN/±Inf with ErrNaNInf.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64 // len == r*c
}

// NewDense creates an r×c zero matrix.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// RowSums returns Σ_j m[i][j] for every row i.
// Complexity: O(r*c).
func (m *Dense) RowSums() []float64 {
	sums := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var s float64
		for _, v := range m.data[i*m.c : (i+1)*m.c] {
			s += v
		}
		sums[i] = s
	}

	return sums
}

// NonZero counts entries different from 0.
func (m *Dense) NonZero() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}

	return n
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
