package main

import (
	"log/slog"

	"github.com/drake200120xx/constorm/internal/config"
	"github.com/drake200120xx/constorm/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "constorm",
		Short:         "ConStorm runs text menu applications in the terminal",
		Long:          `ConStorm loads menu graphs declared in YAML and runs them as interactive console sessions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Path to a YAML config file (default $CONSTORM_CONFIG)")
	root.PersistentFlags().Int("columns", 0, "Column limit for wrapped text")
	root.PersistentFlags().Int("tab-width", 0, "Spaces per tab in wrapped text")
	root.PersistentFlags().Bool("no-color", false, "Disable colors")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")

	root.AddCommand(
		newRunCmd(),
		newWrapCmd(),
		newGraphCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return root
}

// settings resolves the config file, the environment and then explicit flags.
func settings(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("columns") {
		cfg.Columns, _ = flags.GetInt("columns")
	}
	if flags.Changed("tab-width") {
		cfg.TabWidth, _ = flags.GetInt("tab-width")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Lookup("markdown") != nil && flags.Changed("markdown") {
		cfg.Markdown, _ = flags.GetBool("markdown")
	}
	if flags.Lookup("metrics-file") != nil && flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if flags.Lookup("start") != nil && flags.Changed("start") {
		cfg.Start, _ = flags.GetString("start")
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	level := cfg.Level()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return logging.NewTo(cmd.ErrOrStderr(), level)
}
