package main

import (
	"fmt"

	"github.com/drake200120xx/constorm/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph [file...]",
		Short: "Export the menu graph visualization",
		Long:  `Loads the menu files (or the built-in sandbox) and outputs a Mermaid diagram (graph TD) of every node and link.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}
			res, err := loadGraph(cmd, cfg, newLogger(cmd, cfg), args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(res.Graph, res.Start, nil))
			return err
		},
	}
}
