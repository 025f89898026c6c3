package links_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/links"
	"github.com/katalvlaran/hypernet/transition"
)

func build(t *testing.T, vs []core.Vertex, es []core.HyperEdge, ws []core.VertexWeight) (*core.Hypergraph, *transition.Model) {
	t.Helper()
	h, err := core.NewHypergraph(vs, es, ws)
	require.NoError(t, err)
	m, err := transition.New(h)
	require.NoError(t, err)

	return h, m
}

func uniform(es []core.HyperEdge) []core.VertexWeight {
	var ws []core.VertexWeight
	for _, e := range es {
		for _, v := range e.Vertices {
			ws = append(ws, core.VertexWeight{Edge: e.ID, Vertex: v, Gamma: 1})
		}
	}

	return ws
}

func vertices(n int) []core.Vertex {
	vs := make([]core.Vertex, n)
	for i := range vs {
		vs[i] = core.Vertex{ID: i + 1}
	}

	return vs
}

func TestEnumerate_Triangle(t *testing.T) {
	t.Parallel()

	es := []core.HyperEdge{{ID: 1, Vertices: []int{1, 2, 3}, Omega: 10}}
	h, m := build(t, vertices(3), es, uniform(es))

	got, err := links.Enumerate(h, m)
	require.NoError(t, err)
	require.Len(t, got, 6) // 3·3 ordered pairs minus 3 self pairs

	// Stable order: u over members, then v over members.
	require.Equal(t, links.WeightedLink{SourceEdge: 1, Source: 1, TargetEdge: 1, Target: 2, Weight: 5}, got[0])
	require.Equal(t, links.WeightedLink{SourceEdge: 1, Source: 1, TargetEdge: 1, Target: 3, Weight: 5}, got[1])
	require.Equal(t, 2, got[2].Source)

	shifted, err := links.Enumerate(h, m, links.WithShiftedProbability(true))
	require.NoError(t, err)
	require.Len(t, shifted, 6)
	for _, l := range shifted {
		require.InDelta(t, 0.5, l.Weight, 1e-12)
		require.True(t, l.Intra())
	}
}

func TestEnumerate_SelfLinks(t *testing.T) {
	t.Parallel()

	es := []core.HyperEdge{{ID: 1, Vertices: []int{1, 2, 3}, Omega: 10}}
	h, m := build(t, vertices(3), es, uniform(es))

	without, err := links.Enumerate(h, m)
	require.NoError(t, err)
	for _, l := range without {
		require.NotEqual(t, l.Source, l.Target)
	}

	with, err := links.Enumerate(h, m, links.WithSelfLinks(true))
	require.NoError(t, err)
	require.Len(t, with, 9)
	selfCount := 0
	for _, l := range with {
		if l.Source == l.Target {
			selfCount++
		}
		require.InDelta(t, 10.0/3.0, l.Weight, 1e-12)
	}
	require.Equal(t, 3, selfCount)
}

func TestEnumerate_DisjointEdges(t *testing.T) {
	t.Parallel()

	es := []core.HyperEdge{
		{ID: 1, Vertices: []int{1, 2}, Omega: 1},
		{ID: 2, Vertices: []int{3, 4}, Omega: 1},
	}
	h, m := build(t, vertices(4), es, uniform(es))

	got, err := links.Enumerate(h, m)
	require.NoError(t, err)
	require.Len(t, got, 4) // 1↔2 and 3↔4 only
	for _, l := range got {
		require.True(t, l.Intra(), "no link may cross disjoint hyperedges: %+v", l)
		left := l.Source <= 2
		require.Equal(t, left, l.Target <= 2)
	}
}

func TestEnumerate_CutoffAndNonNegativity(t *testing.T) {
	t.Parallel()

	// γ(3)=0 in e1 makes every transition into 3 exactly zero; it must vanish.
	es := []core.HyperEdge{{ID: 1, Vertices: []int{1, 2, 3}, Omega: 4}}
	ws := []core.VertexWeight{{Edge: 1, Vertex: 1, Gamma: 1}, {Edge: 1, Vertex: 2, Gamma: 1}, {Edge: 1, Vertex: 3, Gamma: 0}}
	h, m := build(t, vertices(3), es, ws)

	got, err := links.Enumerate(h, m)
	require.NoError(t, err)
	for _, l := range got {
		require.GreaterOrEqual(t, l.Weight, links.Cutoff)
		require.NotEqual(t, 3, l.Target)
		require.NotEqual(t, 3, l.Source)
	}
	require.Len(t, got, 2)
}

func TestEnumerate_CutoffDropsTinyWeights(t *testing.T) {
	t.Parallel()

	// γ(3)=1e-12: into 3 weighs ≈4e-12, out of 3 ≈2e-12, both under Cutoff.
	es := []core.HyperEdge{{ID: 1, Vertices: []int{1, 2, 3}, Omega: 4}}
	ws := []core.VertexWeight{{Edge: 1, Vertex: 1, Gamma: 1}, {Edge: 1, Vertex: 2, Gamma: 1}, {Edge: 1, Vertex: 3, Gamma: 1e-12}}
	h, m := build(t, vertices(3), es, ws)

	w, err := m.Weight(transition.Step{From: 1, FromEdge: 1, To: 3, ToEdge: 1}, false)
	require.NoError(t, err)
	require.Greater(t, w, 0.0)
	require.Less(t, w, links.Cutoff)

	got, err := links.Enumerate(h, m)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, l := range got {
		require.ElementsMatch(t, []int{1, 2}, []int{l.Source, l.Target})
		require.InDelta(t, 4.0, l.Weight, 1e-9)
	}
}

func TestEnumerate_SharedVertexCrossLinks(t *testing.T) {
	t.Parallel()

	es := []core.HyperEdge{
		{ID: 1, Vertices: []int{1, 2, 3}, Omega: 10},
		{ID: 2, Vertices: []int{3, 4, 5}, Omega: 20},
	}
	h, m := build(t, vertices(5), es, uniform(es))

	got, err := links.Enumerate(h, m, links.WithShiftedProbability(true))
	require.NoError(t, err)

	var inter int
	for _, l := range got {
		if !l.Intra() {
			inter++
			require.NotEmpty(t, m.SharedEdges(l.Source, l.Target), "cross-layer hop without a shared hyperedge: %+v", l)
		}
	}
	require.Positive(t, inter)
}

func TestEnumerate_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	es := []core.HyperEdge{
		{ID: 4, Vertices: []int{1, 2, 3}, Omega: 10},
		{ID: 2, Vertices: []int{3, 4, 5}, Omega: 20},
		{ID: 9, Vertices: []int{5, 6, 1}, Omega: 5},
		{ID: 1, Vertices: []int{2, 6}, Omega: 1},
	}
	h, m := build(t, vertices(6), es, uniform(es))

	seq, err := links.Enumerate(h, m, links.WithShiftedProbability(true))
	require.NoError(t, err)

	par, err := links.Enumerate(h, m, links.WithShiftedProbability(true), links.WithWorkers(3))
	require.NoError(t, err)
	require.Equal(t, seq, par)
}

func TestEnumerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := links.Enumerate(nil, nil)
	require.ErrorIs(t, err, links.ErrNilInput)

	// Singleton hyperedge without self-links is malformed.
	es := []core.HyperEdge{{ID: 1, Vertices: []int{1}, Omega: 1}, {ID: 2, Vertices: []int{1, 2}, Omega: 1}}
	h, m := build(t, vertices(2), es, uniform(es))
	_, err = links.Enumerate(h, m)
	require.ErrorIs(t, err, core.ErrMalformedHypergraph)

	// With self-links the same hypergraph is fine.
	got, err := links.Enumerate(h, m, links.WithSelfLinks(true))
	require.NoError(t, err)
	require.NotEmpty(t, got)

	// Degenerate mass propagates from the model, sequentially and in parallel.
	es = []core.HyperEdge{{ID: 1, Vertices: []int{1, 2}, Omega: 1}}
	ws := []core.VertexWeight{{Edge: 1, Vertex: 1, Gamma: 1}, {Edge: 1, Vertex: 2, Gamma: 0}}
	h, m = build(t, vertices(2), es, ws)
	_, err = links.Enumerate(h, m)
	require.ErrorIs(t, err, transition.ErrDegenerateMass)
	_, err = links.Enumerate(h, m, links.WithWorkers(2))
	require.ErrorIs(t, err, transition.ErrDegenerateMass)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { links.WithWorkers(0) })
	require.Panics(t, func() { links.WithLogger(nil) })
}
