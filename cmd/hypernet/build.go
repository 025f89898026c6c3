package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypernet/builder"
	"github.com/katalvlaran/hypernet/config"
	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/netio"
)

// stdio stands for stdin or stdout in place of a path.
const stdio = "-"

type buildFlags struct {
	pipelineFlags
	output        string
	featurePrefix string
	memberNames   bool
}

// BuildSummary is printed after a representation is written to a file.
type BuildSummary struct {
	Input          string `json:"input"`
	Output         string `json:"output"`
	Representation string `json:"representation"`
	Nodes          int    `json:"nodes"`
	Links          int    `json:"links"`
}

func newBuildCmd(g *globalFlags) *cobra.Command {
	b := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build <input>",
		Short: "Build a network representation of a hypergraph",
		Long: `Build reads a hypergraph (plain, .gz, .zst or .lz4; "-" for stdin) and
writes the chosen representation to --output ("-" for stdout).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, g, b, args[0])
		},
	}
	b.register(cmd)
	cmd.Flags().StringVarP(&b.output, "output", "o", stdio, "output file; the extension picks the compression")
	cmd.Flags().StringVar(&b.featurePrefix, "feature-prefix", "", "name bipartite feature nodes <prefix><edge id>")
	cmd.Flags().BoolVar(&b.memberNames, "member-names", false, "name bipartite feature nodes after their member vertices")
	cmd.MarkFlagsMutuallyExclusive("feature-prefix", "member-names")

	return cmd
}

func runBuild(cmd *cobra.Command, g *globalFlags, b *buildFlags, input string) error {
	cfg, err := resolveConfig(cmd, g, &b.pipelineFlags)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	h, err := readInput(cmd.InOrStdin(), input, cfg, logger)
	if err != nil {
		return err
	}

	kind, err := cfg.Kind()
	if err != nil {
		return err
	}
	cons, err := builder.ForKind(kind)
	if err != nil {
		return err
	}

	opts := append(cfg.BuilderOptions(), builder.WithLogger(logger))
	switch {
	case b.featurePrefix != "":
		opts = append(opts, builder.WithFeaturePrefix(b.featurePrefix))
	case b.memberNames:
		opts = append(opts, builder.WithFeatureName(builder.MemberFeatureName(memberNames(h))))
	}

	rep, err := builder.Build(h, cons, opts...)
	if err != nil {
		return err
	}

	if b.output == stdio {
		return netio.Write(cmd.OutOrStdout(), rep)
	}
	if err := netio.WriteFile(b.output, rep); err != nil {
		return err
	}
	logger.Info("representation written",
		slog.String("path", b.output),
		slog.String("codec", netio.CodecForPath(b.output).String()))

	return outputJSON(cmd.OutOrStdout(), BuildSummary{
		Input:          input,
		Output:         b.output,
		Representation: rep.Kind.String(),
		Nodes:          len(rep.AllNodes()),
		Links:          rep.LinkCount(),
	})
}

// readInput parses path, or stdin for "-".
func readInput(stdin io.Reader, path string, cfg *config.Config, logger *slog.Logger) (*core.Hypergraph, error) {
	opts := append(cfg.ReadOptions(), netio.WithLogger(logger))

	var (
		h   *core.Hypergraph
		err error
	)
	if path == stdio {
		h, err = netio.Read(stdin, opts...)
	} else {
		h, err = netio.ReadFile(path, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	st := h.Stats()
	logger.Debug("hypergraph loaded",
		slog.String("path", path),
		slog.Int("vertices", st.VertexCount),
		slog.Int("hyperedges", st.EdgeCount))

	return h, nil
}

// memberNames lists the member vertex names of every hyperedge.
func memberNames(h *core.Hypergraph) map[int][]string {
	out := make(map[int][]string, h.EdgeCount())
	for _, e := range h.Edges() {
		names := make([]string, 0, len(e.Vertices))
		for _, id := range e.Vertices {
			v, err := h.Vertex(id)
			if err != nil || v.Name == "" {
				names = append(names, fmt.Sprint(id))
				continue
			}
			names = append(names, v.Name)
		}
		out[e.ID] = names
	}

	return out
}
