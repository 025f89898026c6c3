// SPDX-License-Identifier: MIT
// Package: hypernet/transition
//
// model.go: precomputed lookup tables for the EDVW random walk.
//
// Design:
//   • New builds every table once per Hypergraph; methods only read them.
//   • Incidence sets are roaring bitmaps so E(u,v) is a single AND.
//   • Shared-edge sums iterate ascending edge id, making float sums reproducible.
//
// Complexity:
//   • New: O(V + Σ|e| + W) time and space.
//   • IncidentEdges/SharedEdges: O(|E(v)|) / O(|E(u)| + |E(v)|).

package transition

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/hypernet/core"
)

const methodNew = "transition.New"

type pairKey struct {
	edge, vertex int
}

// Model holds the lookup structures of one Hypergraph snapshot: incidence sets,
// edge omega, vertex degree, edge mass and per-pair gamma.
//
// A Model is immutable after New and safe for concurrent readers.
type Model struct {
	incidence map[int]*roaring.Bitmap // vertex id → ids of incident hyperedges
	omega     map[int]float64         // edge id → ω(e)
	degree    map[int]float64         // vertex id → d(v)
	mass      map[int]float64         // edge id → δ(e)
	gamma     map[pairKey]float64     // (edge, vertex) → γ_e(v)
}

// New precomputes the transition lookups for h.
//
// Errors: ErrNilHypergraph if h is nil.
func New(h *core.Hypergraph) (*Model, error) {
	if h == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilHypergraph)
	}

	vertices := h.Vertices()
	edges := h.Edges()
	weights := h.Weights()

	m := &Model{
		incidence: make(map[int]*roaring.Bitmap, len(vertices)),
		omega:     make(map[int]float64, len(edges)),
		degree:    make(map[int]float64, len(vertices)),
		mass:      make(map[int]float64, len(edges)),
		gamma:     make(map[pairKey]float64, len(weights)),
	}

	// Isolated vertices still get an (empty) incidence set and a zero degree.
	for _, v := range vertices {
		m.incidence[v.ID] = roaring.New()
		m.degree[v.ID] = 0
	}

	for _, e := range edges {
		m.omega[e.ID] = e.Omega
		m.mass[e.ID] = 0
		for _, v := range e.Vertices {
			m.incidence[v].Add(uint32(e.ID))
		}
	}

	// Degree sums run in ascending edge order, matching SharedEdges.
	for v, set := range m.incidence {
		var d float64
		it := set.Iterator()
		for it.HasNext() {
			d += m.omega[int(it.Next())]
		}
		m.degree[v] = d
	}

	for _, w := range weights {
		m.mass[w.Edge] += w.Gamma
		m.gamma[pairKey{edge: w.Edge, vertex: w.Vertex}] = w.Gamma
	}

	return m, nil
}

// IncidentEdges returns E(v), the ids of hyperedges containing v, ascending.
// An unknown vertex has no incident edges.
func (m *Model) IncidentEdges(v int) []int {
	set, ok := m.incidence[v]
	if !ok {
		return nil
	}

	return toInts(set)
}

// SharedEdges returns E(u,v) = E(u) ∩ E(v), ascending.
func (m *Model) SharedEdges(u, v int) []int {
	return toInts(m.shared(u, v))
}

// Degree returns d(v) = Σ_{e ∈ E(v)} ω(e).
func (m *Model) Degree(v int) float64 {
	return m.degree[v]
}

// EdgeMass returns δ(e) = Σ_v γ_e(v) over the weights recorded for e.
func (m *Model) EdgeMass(e int) float64 {
	return m.mass[e]
}

// Omega returns ω(e).
func (m *Model) Omega(e int) float64 {
	return m.omega[e]
}

// Gamma returns γ_e(v).
//
// Errors: ErrWeightLookup if no weight is recorded for (e, v), which for a
// validated hypergraph means v is not incident to e.
func (m *Model) Gamma(e, v int) (float64, error) {
	g, ok := m.gamma[pairKey{edge: e, vertex: v}]
	if !ok {
		return 0, fmt.Errorf("Gamma(e=%d, v=%d): %w", e, v, ErrWeightLookup)
	}

	return g, nil
}

func (m *Model) incident(e, v int) bool {
	set, ok := m.incidence[v]
	return ok && set.Contains(uint32(e))
}

func (m *Model) shared(u, v int) *roaring.Bitmap {
	su, ok := m.incidence[u]
	if !ok {
		return roaring.New()
	}
	sv, ok := m.incidence[v]
	if !ok {
		return roaring.New()
	}

	return roaring.And(su, sv)
}

func toInts(set *roaring.Bitmap) []int {
	out := make([]int, 0, set.GetCardinality())
	it := set.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}
