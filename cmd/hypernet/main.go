// Command hypernet turns a hypergraph with edge-dependent vertex weights into
// a network representation (bipartite, multilayer, state or clique) that
// ordinary network tools can analyse.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	envFiles   []string
	logFormat  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "hypernet",
		Short: "Represent hypergraphs with edge-dependent vertex weights as networks",
		Long: `hypernet reads a hypergraph whose vertices carry a weight per hyperedge
and writes one of four network representations of the random walk on it:

  bipartite   vertices plus one feature node per hyperedge
  multilayer  one layer per hyperedge, intra- and inter-layer links
  state       one state node per (hyperedge, vertex) pair
  clique      vertex-to-vertex projection

Configuration is read from --config (YAML), then HYPERNET_* environment
variables (a .env file is loaded first), then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML configuration file")
	pf.StringSliceVar(&g.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newBuildCmd(g), newInspectCmd(g), newConfigCmd(g))

	return root
}
