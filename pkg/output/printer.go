package output

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultPrompt is shown by Prompt when no message is configured.
const DefaultPrompt = "Enter: "

// Printer writes Values to a terminal or any io.Writer.
// Write failures never reach the caller: they are reported to the logger.
type Printer struct {
	w           io.Writer
	out         *termenv.Output
	logger      *slog.Logger
	color       bool
	interactive bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithLogger sets the logger that receives rendering failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Printer) {
		p.logger = logger
	}
}

// WithColor enables or disables colors and attributes.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.color = enabled
	}
}

// NewPrinter creates a Printer on w. A nil writer means os.Stdout.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	if w == nil {
		w = os.Stdout
	}
	p := &Printer{
		w:      w,
		color:  true,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	if f, ok := w.(*os.File); ok {
		p.interactive = term.IsTerminal(int(f.Fd()))
	}
	if p.color {
		p.out = termenv.NewOutput(w)
	} else {
		p.out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return p
}

// Interactive reports whether the printer writes to a terminal.
func (p *Printer) Interactive() bool {
	return p.interactive
}

// Println writes each value followed by a line terminator.
func (p *Printer) Println(values ...Value) {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(p.Render(v))
		sb.WriteByte('\n')
	}
	p.write(sb.String())
}

// Prompt writes v without a line terminator and flushes the writer.
func (p *Printer) Prompt(v Value) {
	p.write(p.Render(v))
	p.flush()
}

// PromptText is Prompt for a plain message, falling back to DefaultPrompt.
func (p *Printer) PromptText(msg string) {
	if msg == "" {
		msg = DefaultPrompt
	}
	p.Prompt(Text(msg))
}

// Header writes a colored title underlined by dashes.
func (p *Printer) Header(h Header) {
	if h.Text == "" {
		return
	}
	p.Println(h.Title(), Text(h.Rule()))
}

// Clear erases the screen when attached to a terminal.
func (p *Printer) Clear() {
	if !p.interactive {
		return
	}
	p.out.ClearScreen()
}

// Render returns the textual form of v.
// Lines are joined without a terminator after the last element.
func (p *Printer) Render(v Value) string {
	switch v.Kind {
	case KindLines:
		return strings.Join(v.Lines, "\n")
	case KindStyled:
		return p.style(v.Text, v.Style)
	default:
		return v.Text
	}
}

func (p *Printer) style(text string, s Style) string {
	st := p.out.String(text)
	if s.Foreground != "" {
		st = st.Foreground(p.out.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(p.out.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold()
	}
	if s.Underline {
		st = st.Underline()
	}
	return st.String()
}

func (p *Printer) write(s string) {
	if _, err := io.WriteString(p.w, s); err != nil {
		p.logger.Error("output write failed", "error", err)
	}
}

func (p *Printer) flush() {
	type flusher interface{ Flush() error }
	if f, ok := p.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			p.logger.Error("output flush failed", "error", err)
		}
	}
}
