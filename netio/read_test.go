package netio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/netio"
)

const paperText = `# two overlapping hyperedges
*Vertices 5
1 "a"
2 "b"
3 "c c"
4 d
5

*HYPEREDGES
1 1 2 3 10
2 3 4 5 20

*weights
1 1 1
1 2 1
1 3 2
2 3 1
2 4 1
2 5 2
`

func TestRead(t *testing.T) {
	t.Parallel()

	h, err := netio.Read(strings.NewReader(paperText))
	require.NoError(t, err)
	require.Equal(t, 5, h.VertexCount())
	require.Equal(t, 2, h.EdgeCount())

	v, err := h.Vertex(3)
	require.NoError(t, err)
	require.Equal(t, "c c", v.Name)
	v, _ = h.Vertex(4)
	require.Equal(t, "d", v.Name)
	v, _ = h.Vertex(5)
	require.Empty(t, v.Name)

	e, err := h.Edge(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, e.Vertices)
	require.Equal(t, 20.0, e.Omega)
	require.Len(t, h.Weights(), 6)
}

func TestRead_DefaultGamma(t *testing.T) {
	t.Parallel()

	in := "*Vertices\n1\n2\n3\n*Hyperedges\n7 1 2 3 1.5\n*Weights\n7 2 4\n"

	_, err := netio.Read(strings.NewReader(in))
	require.ErrorIs(t, err, core.ErrMalformedHypergraph)

	h, err := netio.Read(strings.NewReader(in), netio.WithDefaultGamma(1))
	require.NoError(t, err)
	require.Equal(t, []core.VertexWeight{
		{Edge: 7, Vertex: 2, Gamma: 4},
		{Edge: 7, Vertex: 1, Gamma: 1},
		{Edge: 7, Vertex: 3, Gamma: 1},
	}, h.Weights())
}

func TestRead_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		line string
	}{
		{"data before header", "1 \"a\"\n", "line 1"},
		{"unknown section", "*Vertices\n1\n*Arcs\n", "line 3"},
		{"bad vertex id", "*Vertices\nx \"a\"\n", "line 2"},
		{"bad quoted name", "*Vertices\n1 \"a\n", "line 2"},
		{"short hyperedge", "*Vertices\n1\n*Hyperedges\n1 1\n", "line 4"},
		{"bad omega", "*Vertices\n1\n*Hyperedges\n1 1 heavy\n", "line 4"},
		{"bad member", "*Vertices\n1\n*Hyperedges\n1 one 2\n", "line 4"},
		{"weight arity", "*Vertices\n1\n*Weights\n1 1\n", "line 4"},
		{"bad gamma", "*Vertices\n1\n# note\n*Weights\n1 1 x\n", "line 5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := netio.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, netio.ErrSyntax)
			require.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestRead_SemanticErrors(t *testing.T) {
	t.Parallel()

	// Member 9 is not a vertex.
	_, err := netio.Read(strings.NewReader("*Vertices\n1\n*Hyperedges\n1 1 9 1\n*Weights\n1 1 1\n1 9 1\n"))
	require.ErrorIs(t, err, core.ErrMalformedHypergraph)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { netio.WithDefaultGamma(-1) })
	require.Panics(t, func() { netio.WithLogger(nil) })
}
