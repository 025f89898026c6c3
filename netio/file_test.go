package netio_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernet/builder"
	"github.com/katalvlaran/hypernet/netio"
)

func TestCodecForPath(t *testing.T) {
	t.Parallel()

	tests := map[string]netio.Codec{
		"net.txt":       netio.CodecNone,
		"net":           netio.CodecNone,
		"net.txt.gz":    netio.CodecGzip,
		"NET.GZ":        netio.CodecGzip,
		"a/b/net.zst":   netio.CodecZstd,
		"net.lz4":       netio.CodecLZ4,
		"archive.gz.md": netio.CodecNone,
	}
	for path, want := range tests {
		require.Equal(t, want, netio.CodecForPath(path), path)
	}
	require.Equal(t, "zstd", netio.CodecZstd.String())
	require.Equal(t, "Codec(7)", netio.Codec(7).String())
}

func TestFiles_RoundTripEveryCodec(t *testing.T) {
	t.Parallel()

	h, err := netio.Read(strings.NewReader(paperText))
	require.NoError(t, err)
	rep, err := builder.Build(h, builder.Multilayer())
	require.NoError(t, err)

	dir := t.TempDir()
	for _, ext := range []string{".txt", ".txt.gz", ".txt.zst", ".txt.lz4"} {
		t.Run(ext, func(t *testing.T) {
			in := filepath.Join(dir, "hypergraph"+ext)
			require.NoError(t, netio.WriteHypergraphFile(in, h))

			back, err := netio.ReadFile(in)
			require.NoError(t, err)
			require.Equal(t, h.Edges(), back.Edges())
			require.Equal(t, h.Weights(), back.Weights())

			out := filepath.Join(dir, "multilayer"+ext)
			require.NoError(t, netio.WriteFile(out, rep))

			f, err := os.Open(out)
			require.NoError(t, err)
			defer f.Close()
			r, err := netio.NewReader(f, netio.CodecForPath(out))
			require.NoError(t, err)
			defer r.Close()

			var sb strings.Builder
			_, err = io.Copy(&sb, r)
			require.NoError(t, err)
			require.Contains(t, sb.String(), "*Multilayer\n")
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := netio.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
