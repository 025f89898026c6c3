package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypernet/core"
	"github.com/katalvlaran/hypernet/links"
	"github.com/katalvlaran/hypernet/matrix"
	"github.com/katalvlaran/hypernet/transition"
)

// defaultMatrixLimit caps the vertex count for the dense transition check.
const defaultMatrixLimit = 2000

// InspectResult is the JSON report of the inspect command.
type InspectResult struct {
	Stats      core.Stats  `json:"stats"`
	Components int         `json:"components"`
	Incidence  *Incidence  `json:"incidence,omitempty"`
	Stochastic *Stochastic `json:"stochastic,omitempty"`
}

// Incidence cross-checks the γ incidence matrix against the transition model.
type Incidence struct {
	Entries          int     `json:"entries"`
	MaxMassDeviation float64 `json:"max_mass_deviation"`
}

// Stochastic reports how far the probability rows are from summing to one.
type Stochastic struct {
	SelfLinks       bool    `json:"self_links"`
	MaxRowDeviation float64 `json:"max_row_deviation"`
	RowStochastic   bool    `json:"row_stochastic"`
	Matrix          string  `json:"matrix,omitempty"`
}

func newInspectCmd(g *globalFlags) *cobra.Command {
	p := &pipelineFlags{}
	var (
		limit       int
		printMatrix bool
	)
	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print hypergraph statistics and matrix consistency checks as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, g, p, limit, printMatrix, args[0])
		},
	}
	p.register(cmd)
	cmd.Flags().IntVar(&limit, "matrix-limit", defaultMatrixLimit, "skip the dense matrix checks above this many vertices")
	cmd.Flags().BoolVar(&printMatrix, "print-matrix", false, "include the transition matrix rows in the report")

	return cmd
}

func runInspect(cmd *cobra.Command, g *globalFlags, p *pipelineFlags, limit int, printMatrix bool, input string) error {
	cfg, err := resolveConfig(cmd, g, p)
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
	res := InspectResult{Stats: h.Stats(), Components: len(h.Components())}

	if h.VertexCount() > limit {
		logger.Info("matrix check skipped",
			slog.Int("vertices", h.VertexCount()),
			slog.Int("limit", limit))
		return outputJSON(cmd.OutOrStdout(), res)
	}

	m, err := transition.New(h)
	if err != nil {
		return err
	}

	inc, err := matrix.NewIncidence(h)
	switch {
	case errors.Is(err, matrix.ErrBadShape):
		// no vertices or no hyperedges
	case err != nil:
		return err
	default:
		dev, err := inc.MaxMassDeviation(m)
		if err != nil {
			return err
		}
		res.Incidence = &Incidence{Entries: inc.Mat.NonZero(), MaxMassDeviation: dev}
	}

	tm, err := matrix.NewTransitionMatrix(h, m, cfg.SelfLinks)
	switch {
	case errors.Is(err, matrix.ErrBadShape):
		// no vertices, nothing to check
	case err != nil:
		return err
	default:
		dev := tm.MaxRowDeviation()
		res.Stochastic = &Stochastic{
			SelfLinks:       cfg.SelfLinks,
			MaxRowDeviation: dev,
			RowStochastic:   dev <= links.Cutoff,
		}
		if printMatrix {
			res.Stochastic.Matrix = tm.Mat.String()
		}
	}

	return outputJSON(cmd.OutOrStdout(), res)
}
