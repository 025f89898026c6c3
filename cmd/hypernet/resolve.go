package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypernet/config"
)

// pipelineFlags are the representation flags shared by build and inspect.
type pipelineFlags struct {
	representation  string
	selfLinks       bool
	shifted         bool
	nonBacktracking bool
	directed        bool
	workers         int
	defaultGamma    float64
}

func (p *pipelineFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&p.representation, "representation", "r", "", "bipartite, multilayer, state or clique")
	f.BoolVar(&p.selfLinks, "self-links", false, "allow a walker to return to the vertex it left")
	f.BoolVar(&p.shifted, "shifted", false, "use the shifted probability form")
	f.BoolVar(&p.nonBacktracking, "non-backtracking", false, "bipartite: drop feature links back into the same hyperedge")
	f.BoolVar(&p.directed, "directed", true, "clique: emit both directions")
	f.IntVar(&p.workers, "workers", 1, "link enumeration workers")
	f.Float64Var(&p.defaultGamma, "default-gamma", 0, "gamma for incident pairs without a *Weights line")
}

// apply copies explicitly set flags over cfg.
func (p *pipelineFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("representation") {
		cfg.Representation = p.representation
	}
	if f.Changed("self-links") {
		cfg.SelfLinks = p.selfLinks
	}
	if f.Changed("shifted") {
		cfg.ShiftedProbability = p.shifted
	}
	if f.Changed("non-backtracking") {
		cfg.NonBacktracking = p.nonBacktracking
	}
	if f.Changed("directed") {
		cfg.Directed = p.directed
	}
	if f.Changed("workers") {
		cfg.Workers = p.workers
	}
	if f.Changed("default-gamma") {
		g := p.defaultGamma
		cfg.DefaultGamma = &g
	}
}

// resolveConfig layers defaults, the config file, the environment and flags,
// then validates the result.
func resolveConfig(cmd *cobra.Command, g *globalFlags, p *pipelineFlags) (*config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return nil, withCode(ExitConfigError, "%w", err)
		}
		cfg = *loaded
	}

	if err := config.LoadEnvFiles(g.envFiles...); err != nil {
		return nil, withCode(ExitConfigError, "%w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if p != nil {
		p.apply(cmd, &cfg)
	}
	if g.logFormat != "" {
		cfg.LogFormat = g.logFormat
	}
	if g.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
