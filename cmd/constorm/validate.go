package main

import (
	"fmt"

	"github.com/drake200120xx/constorm/internal/validator"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check the menu graph for consistency",
		Long:  `Loads the menu files (or the built-in sandbox), crawls the graph from the start node and reports broken links, empty option lists and unreachable nodes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}
			res, err := loadGraph(cmd, cfg, newLogger(cmd, cfg), args)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			if err := validator.ValidateGraph(res.Graph, res.Start); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Graph is valid!")
			return err
		},
	}
}
