package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/drake200120xx/constorm/pkg/wordwrap"
	"github.com/spf13/cobra"
)

func newWrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Word wrap text",
		Long:  `Wraps the arguments, or stdin when there are none, to the configured column limit.`,
		RunE:  runWrap,
	}
	cmd.Flags().Bool("box", false, "Draw a border around the wrapped text")
	return cmd
}

func runWrap(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}

	w := wordwrap.New(text, cfg.Columns, cfg.TabWidth)
	out := w.String()
	if box, _ := cmd.Flags().GetBool("box"); box {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		if !cfg.NoColor {
			style = style.BorderForeground(lipgloss.Color("63"))
		}
		out = style.Render(out)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
