package output

import (
	"fmt"
	"slices"

	"github.com/drake200120xx/constorm/pkg/wordwrap"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	// KindText is a single scalar rendered with its default textual form.
	KindText Kind = iota
	// KindLines is an ordered sequence printed one element per line.
	KindLines
	// KindStyled is text rendered with terminal colors and attributes.
	KindStyled
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindLines:
		return "lines"
	case KindStyled:
		return "styled"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Style describes how a KindStyled value is drawn.
// Colors accept anything termenv understands: ANSI indexes ("15") or hex ("#818cf8").
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Underline  bool
}

// Value is something the Printer knows how to render.
type Value struct {
	Kind  Kind
	Text  string
	Lines []string
	Style Style
}

// Text wraps any scalar using its fmt default form.
func Text(v any) Value {
	return Value{Kind: KindText, Text: fmt.Sprint(v)}
}

// Lines wraps an ordered sequence of lines.
func Lines(lines []string) Value {
	return Value{Kind: KindLines, Lines: slices.Clone(lines)}
}

// Wrapped renders a WordWrap as its lines.
func Wrapped(w *wordwrap.WordWrap) Value {
	if w == nil {
		return Lines(nil)
	}
	return Value{Kind: KindLines, Lines: w.Lines()}
}

// Styled wraps text drawn with style.
func Styled(text string, style Style) Value {
	return Value{Kind: KindStyled, Text: text, Style: style}
}

// Blank is an empty line.
var Blank = Value{Kind: KindText}
