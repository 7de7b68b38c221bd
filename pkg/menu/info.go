package menu

import (
	"fmt"
	"strings"

	"github.com/drake200120xx/constorm/pkg/input"
	"github.com/drake200120xx/constorm/pkg/output"
	"github.com/drake200120xx/constorm/pkg/wordwrap"
)

// ContentRenderer turns section text into terminal output, e.g. markdown.
type ContentRenderer func(text string) (string, error)

// Section is one headed block of an InfoMenu.
type Section struct {
	Header output.Header
	Text   *wordwrap.WordWrap
}

// InfoMenu shows read-only sections and waits for a keypress.
type InfoMenu struct {
	Screen
	sections []Section
	pauseMsg string
	next     NodeID
	render   ContentRenderer
}

// NewInfoMenu creates an InfoMenu that continues to next.
func NewInfoMenu(title string, next NodeID) *InfoMenu {
	return &InfoMenu{
		Screen:   newScreen(title),
		pauseMsg: input.DefaultPauseMessage,
		next:     next,
	}
}

// AppendSection adds a section wrapped with the description's settings.
func (m *InfoMenu) AppendSection(header, text string) {
	d := m.description()
	m.AppendWrappedSection(output.NewHeader(header), wordwrap.New(text, d.Limit(), d.TabWidth()))
}

// AppendWrappedSection adds a section with its own wrap settings.
func (m *InfoMenu) AppendWrappedSection(h output.Header, text *wordwrap.WordWrap) {
	m.sections = append(m.sections, Section{Header: h, Text: text})
}

// Section returns the section at the zero-based index i.
func (m *InfoMenu) Section(i int) (Section, bool) {
	if i < 0 || i >= len(m.sections) {
		return Section{}, false
	}
	return m.sections[i], true
}

// SetSection replaces the section at the zero-based index i.
func (m *InfoMenu) SetSection(i int, s Section) error {
	if i < 0 || i >= len(m.sections) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	m.sections[i] = s
	return nil
}

// Sections returns a copy of the sections.
func (m *InfoMenu) Sections() []Section {
	out := make([]Section, len(m.sections))
	copy(out, m.sections)
	return out
}

// SetPauseMessage sets the message shown before waiting.
func (m *InfoMenu) SetPauseMessage(msg string) { m.pauseMsg = msg }

// PauseMessage returns the message shown before waiting.
func (m *InfoMenu) PauseMessage() string { return m.pauseMsg }

// SetNext sets the node run after the pause.
func (m *InfoMenu) SetNext(id NodeID) { m.next = id }

// Next returns the node run after the pause.
func (m *InfoMenu) Next() NodeID { return m.next }

// SetRenderer renders section text through fn instead of word wrapping.
func (m *InfoMenu) SetRenderer(fn ContentRenderer) { m.render = fn }

func (m *InfoMenu) Kind() Kind { return KindInfo }

func (m *InfoMenu) Edges() []Edge { return edgeTo(m.next) }

func (m *InfoMenu) Run(env *Env) (NodeID, error) {
	m.draw(env.Out)
	env.Out.Println(output.Blank)
	for _, s := range m.sections {
		env.Out.Header(s.Header)
		env.Out.Println(m.body(env, s), output.Blank)
	}
	env.Out.Println(output.Blank)

	if err := env.In.Pause(m.pauseMsg); err != nil {
		return None, err
	}
	return m.next, nil
}

func (m *InfoMenu) body(env *Env, s Section) output.Value {
	if m.render == nil || s.Text == nil {
		return output.Wrapped(s.Text)
	}
	rendered, err := m.render(s.Text.Text())
	if err != nil {
		env.Logger.Warn("section render failed", "section", s.Header.Text, "error", err)
		return output.Wrapped(s.Text)
	}
	return output.Text(strings.TrimRight(rendered, "\n"))
}
