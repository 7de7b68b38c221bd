package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Default header colors: bright white on black.
const (
	DefaultHeaderForeground = "15"
	DefaultHeaderBackground = "0"
)

// Header is a heading-style title drawn above a screen.
type Header struct {
	Text       string
	Foreground string
	Background string
}

// NewHeader returns a Header with the default colors.
func NewHeader(text string) Header {
	return Header{
		Text:       text,
		Foreground: DefaultHeaderForeground,
		Background: DefaultHeaderBackground,
	}
}

// Title is the colored title line.
func (h Header) Title() Value {
	return Styled(h.Text, Style{Foreground: h.Foreground, Background: h.Background, Bold: true})
}

// Rule is the dashed line under the title, two columns wider than the text.
func (h Header) Rule() string {
	return strings.Repeat("-", runewidth.StringWidth(h.Text)+2)
}
