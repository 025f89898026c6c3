package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalFlags) *cobra.Command {
	p := &pipelineFlags{}
	var write string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Long: `Config resolves defaults, --config, HYPERNET_* variables and flags exactly
as build does and prints the result. --write saves it as a config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, p)
			if err != nil {
				return err
			}
			if write != "" {
				return cfg.Save(write)
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	p.register(cmd)
	cmd.Flags().StringVar(&write, "write", "", "save the configuration to this path")

	return cmd
}
