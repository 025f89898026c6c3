// Package matrix provides hypergraph-aware wrappers over Dense: the weighted
// incidence matrix and the vertex transition matrix.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/transition"
)

// Incidence is the |V|×|E| matrix H with H[v][e] = γ_e(v) for incident pairs
// and 0 elsewhere. Rows follow core.Hypergraph.Vertices order, columns follow
// Edges order.
type Incidence struct {
	Mat         *Dense
	VertexIndex map[int]int // vertex id → row
	EdgeIndex   map[int]int // edge id → column
}

// NewIncidence builds the weighted incidence matrix of h.
//
// Errors:
//   - ErrNilInput if h is nil.
//   - ErrBadShape if h has no vertices or no hyperedges.
//
// Complexity: O(|V|·|E|) memory, O(|V|·|E| + W) time.
func NewIncidence(h *core.Hypergraph) (*Incidence, error) {
	if h == nil {
		return nil, fmt.Errorf("NewIncidence: %w", ErrNilInput)
	}

	vertices := h.Vertices()
	edges := h.Edges()
	mat, err := NewDense(len(vertices), len(edges))
	if err != nil {
		return nil, fmt.Errorf("NewIncidence: %w", err)
	}

	inc := &Incidence{
		Mat:         mat,
		VertexIndex: make(map[int]int, len(vertices)),
		EdgeIndex:   make(map[int]int, len(edges)),
	}
	for i, v := range vertices {
		inc.VertexIndex[v.ID] = i
	}
	for j, e := range edges {
		inc.EdgeIndex[e.ID] = j
	}

	for _, w := range h.Weights() {
		if err = mat.Set(inc.VertexIndex[w.Vertex], inc.EdgeIndex[w.Edge], w.Gamma); err != nil {
			return nil, fmt.Errorf("NewIncidence: %w", err)
		}
	}

	return inc, nil
}

// EdgeMass returns the column sums of H, i.e. δ(e) per column.
func (im *Incidence) EdgeMass() []float64 {
	out := make([]float64, im.Mat.Cols())
	for i := 0; i < im.Mat.Rows(); i++ {
		for j := range out {
			v, _ := im.Mat.At(i, j)
			out[j] += v
		}
	}

	return out
}

// MaxMassDeviation returns max |δ_H(e) − m.EdgeMass(e)| over all columns,
// comparing the column sums of H with the masses the transition model
// precomputed. It is 0 when both views agree.
//
// Errors: ErrNilInput if m is nil.
func (im *Incidence) MaxMassDeviation(m *transition.Model) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("MaxMassDeviation: %w", ErrNilInput)
	}

	cols := im.EdgeMass()
	var worst float64
	for e, j := range im.EdgeIndex {
		worst = math.Max(worst, math.Abs(cols[j]-m.EdgeMass(e)))
	}

	return worst, nil
}
