package menu

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/drake200120xx/constorm/pkg/input"
	"github.com/drake200120xx/constorm/pkg/output"
)

// Option is one numbered choice of an OptionsMenu.
type Option struct {
	Label string
	To    NodeID
}

// OptionsMenu lists numbered choices and moves to the one the user picks.
type OptionsMenu struct {
	Screen
	labels  []string
	targets []NodeID
	logger  *slog.Logger
}

// NewOptionsMenu creates an OptionsMenu with no options.
func NewOptionsMenu(title string) *OptionsMenu {
	return &OptionsMenu{Screen: newScreen(title)}
}

// SetLogger sets where configuration errors are reported. Defaults to slog.Default.
func (m *OptionsMenu) SetLogger(logger *slog.Logger) { m.logger = logger }

// SetOptions replaces every option. Mismatched lengths leave the menu untouched.
func (m *OptionsMenu) SetOptions(labels []string, targets []NodeID) error {
	if len(labels) != len(targets) {
		err := fmt.Errorf("%w: %d labels, %d targets", ErrOptionsMismatch, len(labels), len(targets))
		m.log().Error("options rejected", "title", m.title.Text, "error", err)
		return err
	}
	m.labels = slices.Clone(labels)
	m.targets = slices.Clone(targets)
	return nil
}

// AppendOption adds a choice at the end.
func (m *OptionsMenu) AppendOption(label string, to NodeID) {
	m.labels = append(m.labels, label)
	m.targets = append(m.targets, to)
}

// Option returns the choice at the zero-based index i.
func (m *OptionsMenu) Option(i int) (Option, bool) {
	if i < 0 || i >= len(m.labels) {
		return Option{}, false
	}
	return Option{Label: m.labels[i], To: m.targets[i]}, true
}

// SetOption replaces the choice at the zero-based index i.
func (m *OptionsMenu) SetOption(i int, o Option) error {
	if i < 0 || i >= len(m.labels) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	m.labels[i] = o.Label
	m.targets[i] = o.To
	return nil
}

// Options returns a copy of every choice in order.
func (m *OptionsMenu) Options() []Option {
	opts := make([]Option, len(m.labels))
	for i := range m.labels {
		opts[i] = Option{Label: m.labels[i], To: m.targets[i]}
	}
	return opts
}

// Len is the number of choices.
func (m *OptionsMenu) Len() int { return len(m.labels) }

func (m *OptionsMenu) Kind() Kind { return KindOptions }

func (m *OptionsMenu) Edges() []Edge {
	edges := make([]Edge, len(m.labels))
	for i := range m.labels {
		edges[i] = Edge{Label: m.labels[i], To: m.targets[i]}
	}
	return edges
}

// Run shows the choices and reads a number in [1, Len()], re-prompting until it gets one.
func (m *OptionsMenu) Run(env *Env) (NodeID, error) {
	m.draw(env.Out)
	for i, label := range m.labels {
		env.Out.Println(output.Text(fmt.Sprintf(" (%d) %s", i+1, label)))
	}
	env.Out.Println(output.Blank)
	env.Out.PromptText(m.prompt)

	n := len(m.labels)
	choice, err := input.Read(env.In, func(c int) bool { return c >= 1 && c <= n }, "")
	if err != nil {
		return None, err
	}
	return m.targets[choice-1], nil
}

func (m *OptionsMenu) log() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}
