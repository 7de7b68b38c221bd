package menu

import (
	"github.com/drake200120xx/constorm/pkg/output"
	"github.com/drake200120xx/constorm/pkg/wordwrap"
)

// Screen is the title, description and prompt shared by displaying nodes.
type Screen struct {
	title  output.Header
	desc   *wordwrap.WordWrap
	prompt string
}

func newScreen(title string) Screen {
	return Screen{
		title: output.NewHeader(title),
		desc:  wordwrap.Empty(),
	}
}

// SetTitle replaces the title text, keeping default colors.
func (s *Screen) SetTitle(text string) { s.title = output.NewHeader(text) }

// SetHeader replaces the title with a custom header.
func (s *Screen) SetHeader(h output.Header) { s.title = h }

// Title returns the header drawn above the screen.
func (s *Screen) Title() output.Header { return s.title }

// SetDescription replaces the description text, keeping its column and tab settings.
func (s *Screen) SetDescription(text string) {
	s.SetDescriptionWrap(text, s.description().Limit(), s.description().TabWidth())
}

// SetDescriptionWrap replaces the description and its wrap settings.
func (s *Screen) SetDescriptionWrap(text string, limit, tabWidth int) {
	s.desc = wordwrap.New(text, limit, tabWidth)
}

// SetWrappedDescription uses w as the description.
func (s *Screen) SetWrappedDescription(w *wordwrap.WordWrap) { s.desc = w }

// Description returns the wrapped description.
func (s *Screen) Description() *wordwrap.WordWrap { return s.description() }

// SetPrompt sets the message shown before input. Empty means output.DefaultPrompt.
func (s *Screen) SetPrompt(msg string) { s.prompt = msg }

// Prompt returns the configured prompt message.
func (s *Screen) Prompt() string { return s.prompt }

func (s *Screen) description() *wordwrap.WordWrap {
	if s.desc == nil {
		s.desc = wordwrap.Empty()
	}
	return s.desc
}

// draw clears the screen and prints the header, the description and a blank line.
func (s *Screen) draw(out *output.Printer) {
	out.Clear()
	out.Header(s.title)
	if lines := s.description().Lines(); len(lines) > 0 {
		out.Println(output.Lines(lines))
	}
	out.Println(output.Blank)
}
