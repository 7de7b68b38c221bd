package main

import (
	"fmt"

	"github.com/drake200120xx/constorm"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of constorm",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "constorm version %s\n", constorm.Version)
		},
	}
}
