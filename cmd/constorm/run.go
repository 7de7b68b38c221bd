package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/drake200120xx/constorm"
	"github.com/drake200120xx/constorm/internal/metrics"
	"github.com/drake200120xx/constorm/internal/presentation/tui"
	"github.com/drake200120xx/constorm/pkg/menu"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file...]",
		Short: "Run a menu application",
		Long:  `Loads menu definitions from the given YAML files (or the built-in sandbox) and runs them on stdin and stdout.`,
		RunE:  runMenus,
	}
	cmd.Flags().String("start", "", "Node to start from (default: the declared start node)")
	cmd.Flags().Bool("markdown", false, "Render info sections as markdown")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file when the session ends")
	cmd.Flags().Bool("banner", false, "Print the banner before the first screen")
	return cmd
}

func runMenus(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	res, err := loadGraph(cmd, cfg, logger, args)
	if err != nil {
		return err
	}
	start := res.Start
	if cfg.Start != "" {
		id, ok := res.Graph.Lookup(cfg.Start)
		if !ok {
			return fmt.Errorf("%w: %s", menu.ErrUnknownNode, cfg.Start)
		}
		start = id
	}

	m := metrics.New()
	hooks := m.Hooks(menu.Hooks{
		OnNodeLeave: func(e *menu.NodeEvent) {
			logger.Debug("node_leave", "node", e.Name, "next", res.Graph.Name(e.Next))
		},
	})

	session, err := constorm.New(res.Graph,
		constorm.WithInput(cmd.InOrStdin()),
		constorm.WithOutput(cmd.OutOrStdout()),
		constorm.WithColor(!cfg.NoColor),
		constorm.WithLogger(logger),
		constorm.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return err
	}

	if banner, _ := cmd.Flags().GetBool("banner"); banner {
		tui.PrintBanner(cmd.OutOrStdout())
	}

	m.SessionStarted()
	stats, err := session.RunLoop(start)
	if cfg.MetricsFile != "" {
		if werr := m.WriteFile(cfg.MetricsFile); werr != nil {
			logger.Error("metrics write failed", "path", cfg.MetricsFile, "error", werr)
		}
	}
	if errors.Is(err, io.EOF) {
		logger.Info("input closed", "invocations", stats.Invocations)
		return nil
	}
	return err
}
