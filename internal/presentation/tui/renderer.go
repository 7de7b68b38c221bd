package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/drake200120xx/constorm/pkg/menu"
)

// NewRenderer returns a markdown renderer for info sections, wrapping at width columns.
// Styles follow the terminal background; without color the output is plain text.
func NewRenderer(width int, color bool) (menu.ContentRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if color {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}
