// SPDX-License-Identifier: MIT
// Package: hypernet/matrix
//
// transition.go: dense |V|×|V| probability matrix of the hypergraph walk.
//
// Contract:
//   • P[u][v] = transition.Model.Probability(u→v) through any shared hyperedge;
//     0 when u and v share none, and for u = v without self-links.
//   • Rows of isolated vertices are all zero and excluded from MaxRowDeviation.
//
// Complexity:
//   • Time O(|V|² · T), memory O(|V|²). Meant for inspection of small inputs.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/transition"
)

// TransitionMatrix is P together with its vertex → row/column index.
type TransitionMatrix struct {
	Mat         *Dense
	VertexIndex map[int]int
}

// NewTransitionMatrix evaluates the probability form for every vertex pair.
//
// Errors:
//   - ErrNilInput if h or m is nil.
//   - ErrBadShape if h has no vertices.
//   - transition.ErrDegenerateMass from the model.
func NewTransitionMatrix(h *core.Hypergraph, m *transition.Model, selfLinks bool) (*TransitionMatrix, error) {
	if h == nil || m == nil {
		return nil, fmt.Errorf("NewTransitionMatrix: %w", ErrNilInput)
	}

	vertices := h.Vertices()
	mat, err := NewDense(len(vertices), len(vertices))
	if err != nil {
		return nil, fmt.Errorf("NewTransitionMatrix: %w", err)
	}
	index := make(map[int]int, len(vertices))
	for i, v := range vertices {
		index[v.ID] = i
	}

	for i, u := range vertices {
		for j, v := range vertices {
			if u.ID == v.ID && !selfLinks {
				continue
			}
			shared := m.SharedEdges(u.ID, v.ID)
			if len(shared) == 0 {
				continue
			}
			e := shared[0]
			p, err := m.Probability(transition.Step{From: u.ID, FromEdge: e, To: v.ID, ToEdge: e}, selfLinks)
			if err != nil {
				return nil, fmt.Errorf("NewTransitionMatrix: %w", err)
			}
			if err = mat.Set(i, j, p); err != nil {
				return nil, fmt.Errorf("NewTransitionMatrix: %w", err)
			}
		}
	}

	return &TransitionMatrix{Mat: mat, VertexIndex: index}, nil
}

// MaxRowDeviation returns max |Σ_v P[u][v] − 1| over the non-zero rows.
// It is 0 for a row-stochastic walk.
func (t *TransitionMatrix) MaxRowDeviation() float64 {
	var worst float64
	for _, s := range t.Mat.RowSums() {
		if s == 0 {
			continue
		}
		worst = math.Max(worst, math.Abs(s-1))
	}

	return worst
}
