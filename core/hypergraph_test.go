package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernet/core"
)

// paperVertices/Edges/Weights mirror the two-edge example used throughout the tests:
// e1={1,2,3} ω=10, e2={3,4,5} ω=20, vertex 3 shared.
func paperVertices() []core.Vertex {
	return []core.Vertex{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}, {5, "f"}}
}

func paperEdges() []core.HyperEdge {
	return []core.HyperEdge{
		{ID: 1, Vertices: []int{1, 2, 3}, Omega: 10},
		{ID: 2, Vertices: []int{3, 4, 5}, Omega: 20},
	}
}

func paperWeights() []core.VertexWeight {
	return []core.VertexWeight{
		{1, 1, 1}, {1, 2, 1}, {1, 3, 2},
		{2, 3, 1}, {2, 4, 1}, {2, 5, 2},
	}
}

func TestNewHypergraph_Valid(t *testing.T) {
	t.Parallel()

	h, err := core.NewHypergraph(paperVertices(), paperEdges(), paperWeights())
	require.NoError(t, err)

	require.Equal(t, 5, h.VertexCount())
	require.Equal(t, 2, h.EdgeCount())
	require.Equal(t, 5, h.MaxVertexID())
	require.True(t, h.HasVertex(3))
	require.False(t, h.HasVertex(6))
	require.True(t, h.HasEdge(2))

	v, err := h.Vertex(4)
	require.NoError(t, err)
	require.Equal(t, "d", v.Name)

	e, err := h.Edge(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, e.Vertices)
	require.InDelta(t, 20.0, e.Omega, 0)

	st := h.Stats()
	require.Equal(t, 6, st.WeightCount)
	require.Equal(t, 3, st.MaxEdgeSize)
	require.InDelta(t, 30.0, st.TotalOmega, 1e-12)
	require.Zero(t, st.IsolatedCount)
}

func TestNewHypergraph_Lookups(t *testing.T) {
	t.Parallel()

	h, err := core.NewHypergraph(paperVertices(), paperEdges(), paperWeights())
	require.NoError(t, err)

	_, err = h.Vertex(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = h.Edge(42)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestNewHypergraph_IsImmutable(t *testing.T) {
	t.Parallel()

	edges := paperEdges()
	h, err := core.NewHypergraph(paperVertices(), edges, paperWeights())
	require.NoError(t, err)

	// Mutating the caller's slices must not leak into the snapshot.
	edges[0].Vertices[0] = 99
	got, err := h.Edge(1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, got.Vertices)

	// Nor may mutating returned copies.
	out := h.Edges()
	out[1].Vertices[2] = 77
	got, err = h.Edge(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, got.Vertices)
}

func TestNewHypergraph_IsolatedVertex(t *testing.T) {
	t.Parallel()

	vs := append(paperVertices(), core.Vertex{ID: 9, Name: "lonely"})
	h, err := core.NewHypergraph(vs, paperEdges(), paperWeights())
	require.NoError(t, err)
	require.Equal(t, 9, h.MaxVertexID())
	require.Equal(t, 1, h.Stats().IsolatedCount)
}

func TestNewHypergraph_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vs      []core.Vertex
		es      []core.HyperEdge
		ws      []core.VertexWeight
		wantMsg string
	}{
		{
			name:    "non-positive vertex id",
			vs:      []core.Vertex{{0, "zero"}},
			wantMsg: "vertex 0",
		},
		{
			name:    "duplicate vertex id",
			vs:      []core.Vertex{{1, "a"}, {1, "b"}},
			wantMsg: "duplicate id",
		},
		{
			name:    "negative edge id",
			vs:      paperVertices(),
			es:      []core.HyperEdge{{ID: -1, Vertices: []int{1}, Omega: 1}},
			wantMsg: "hyperedge -1",
		},
		{
			name:    "edge id above MaxEdgeID",
			vs:      paperVertices(),
			es:      []core.HyperEdge{{ID: core.MaxEdgeID + 1, Vertices: []int{1}, Omega: 1}},
			wantMsg: "id outside [0,4294967295]",
		},
		{
			name: "duplicate edge id",
			vs:   paperVertices(),
			es: []core.HyperEdge{
				{ID: 1, Vertices: []int{1}, Omega: 1},
				{ID: 1, Vertices: []int{2}, Omega: 1},
			},
			wantMsg: "duplicate id",
		},
		{
			name:    "empty edge",
			vs:      paperVertices(),
			es:      []core.HyperEdge{{ID: 1, Omega: 1}},
			wantMsg: "no members",
		},
		{
			name:    "unknown member",
			vs:      paperVertices(),
			es:      []core.HyperEdge{{ID: 1, Vertices: []int{1, 8}, Omega: 1}},
			wantMsg: "unknown vertex 8",
		},
		{
			name:    "duplicate member",
			vs:      paperVertices(),
			es:      []core.HyperEdge{{ID: 1, Vertices: []int{1, 1}, Omega: 1}},
			wantMsg: "listed twice",
		},
		{
			name:    "negative omega",
			vs:      paperVertices(),
			es:      []core.HyperEdge{{ID: 1, Vertices: []int{1}, Omega: -2}},
			wantMsg: "omega",
		},
		{
			name:    "weight for non-incident pair",
			vs:      paperVertices(),
			es:      paperEdges(),
			ws:      append(paperWeights(), core.VertexWeight{Edge: 1, Vertex: 5, Gamma: 1}),
			wantMsg: "not incident",
		},
		{
			name:    "weight for unknown edge",
			vs:      paperVertices(),
			es:      paperEdges(),
			ws:      append(paperWeights(), core.VertexWeight{Edge: 7, Vertex: 1, Gamma: 1}),
			wantMsg: "unknown hyperedge",
		},
		{
			name:    "duplicate weight",
			vs:      paperVertices(),
			es:      paperEdges(),
			ws:      append(paperWeights(), core.VertexWeight{Edge: 1, Vertex: 1, Gamma: 3}),
			wantMsg: "duplicate",
		},
		{
			name:    "missing weight",
			vs:      paperVertices(),
			es:      paperEdges(),
			ws:      paperWeights()[1:],
			wantMsg: "missing weight for vertex 1",
		},
		{
			name:    "negative gamma",
			vs:      paperVertices(),
			es:      paperEdges(),
			ws:      append(paperWeights()[1:], core.VertexWeight{Edge: 1, Vertex: 1, Gamma: -1}),
			wantMsg: "gamma",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, err := core.NewHypergraph(tc.vs, tc.es, tc.ws)
			require.Nil(t, h)
			require.ErrorIs(t, err, core.ErrMalformedHypergraph)
			require.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestHyperEdge_Contains(t *testing.T) {
	t.Parallel()

	e := core.HyperEdge{ID: 1, Vertices: []int{4, 2, 9}}
	require.True(t, e.Contains(2))
	require.False(t, e.Contains(3))
}

func TestHypergraph_Components(t *testing.T) {
	t.Parallel()

	h, err := core.NewHypergraph(paperVertices(), paperEdges(), paperWeights())
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3, 4, 5}}, h.Components())

	vs := append(paperVertices(), core.Vertex{ID: 9, Name: "lonely"})
	edges := []core.HyperEdge{
		{ID: 1, Vertices: []int{2, 1}, Omega: 1},
		{ID: 2, Vertices: []int{4, 5}, Omega: 1},
	}
	weights := []core.VertexWeight{{1, 2, 1}, {1, 1, 1}, {2, 4, 1}, {2, 5, 1}}
	h, err = core.NewHypergraph(vs, edges, weights)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3}, {4, 5}, {9}}, h.Components())

	empty, err := core.NewHypergraph(nil, nil, nil)
	require.NoError(t, err)
	require.Empty(t, empty.Components())
}

func TestNewHypergraph_EdgeIDBounds(t *testing.T) {
	t.Parallel()

	for _, id := range []int{0, core.MaxEdgeID} {
		h, err := core.NewHypergraph(
			[]core.Vertex{{ID: 1}},
			[]core.HyperEdge{{ID: id, Vertices: []int{1}, Omega: 1}},
			[]core.VertexWeight{{Edge: id, Vertex: 1, Gamma: 1}},
		)
		require.NoError(t, err, "edge id %d", id)
		require.True(t, h.HasEdge(id))
	}
}
