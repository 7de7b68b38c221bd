package main

import (
	_ "embed"
	"log/slog"

	"github.com/drake200120xx/constorm/internal/config"
	"github.com/drake200120xx/constorm/internal/presentation/tui"
	"github.com/drake200120xx/constorm/pkg/loader"
	"github.com/drake200120xx/constorm/pkg/random"
	"github.com/drake200120xx/constorm/pkg/registry"
	"github.com/spf13/cobra"
)

//go:embed sandbox.yaml
var sandboxYAML []byte

// loadGraph loads the given files, or the built-in sandbox when there are none.
func loadGraph(cmd *cobra.Command, cfg config.Config, logger *slog.Logger, paths []string) (*loader.Result, error) {
	reg := registry.NewRegistry()
	registry.RegisterBuiltins(reg, random.Default())

	opts := []loader.Option{
		loader.WithRegistry(reg),
		loader.WithLogger(logger),
		loader.WithWrap(cfg.Columns, cfg.TabWidth),
	}
	if cfg.Markdown {
		render, err := tui.NewRenderer(cfg.Columns, !cfg.NoColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, loader.WithRenderer(render))
	}
	l := loader.New(opts...)

	if len(paths) == 0 {
		return l.LoadBytes(sandboxYAML, "sandbox.yaml")
	}
	return l.LoadFiles(cmd.Context(), paths...)
}
