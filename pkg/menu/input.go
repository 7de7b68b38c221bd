package menu

import (
	"github.com/drake200120xx/constorm/pkg/input"
)

// InputMenu asks for one value of type T and moves on once it is valid.
type InputMenu[T input.Scalar] struct {
	Screen
	valid   func(T) bool
	choices []T
	next    NodeID
	last    T
	has     bool
}

// NewInputMenu creates an InputMenu that accepts any T.
func NewInputMenu[T input.Scalar](title string) *InputMenu[T] {
	return &InputMenu[T]{Screen: newScreen(title)}
}

// SetValidation sets the predicate a value must satisfy. Nil accepts anything.
func (m *InputMenu[T]) SetValidation(fn func(T) bool) { m.valid = fn }

// SetChoices restricts values to a set. An empty set lifts the restriction.
func (m *InputMenu[T]) SetChoices(choices ...T) { m.choices = choices }

// SetNext sets the node run after a value is collected.
func (m *InputMenu[T]) SetNext(id NodeID) { m.next = id }

// Next returns the node run after a value is collected.
func (m *InputMenu[T]) Next() NodeID { return m.next }

// Collect displays the screen and reads a value, storing it as the last value.
func (m *InputMenu[T]) Collect(env *Env) (T, error) {
	m.draw(env.Out)
	env.Out.PromptText(m.prompt)

	v, err := input.Read(env.In, m.accepts, "")
	if err != nil {
		var zero T
		return zero, err
	}
	m.last, m.has = v, true
	return v, nil
}

// Last returns the most recently collected value. It reports false before the first Collect.
func (m *InputMenu[T]) Last() (T, bool) { return m.last, m.has }

func (m *InputMenu[T]) Kind() Kind { return KindInput }

func (m *InputMenu[T]) Edges() []Edge { return edgeTo(m.next) }

func (m *InputMenu[T]) Run(env *Env) (NodeID, error) {
	if _, err := m.Collect(env); err != nil {
		return None, err
	}
	return m.next, nil
}

func (m *InputMenu[T]) accepts(v T) bool {
	if len(m.choices) > 0 {
		found := false
		for _, c := range m.choices {
			if c == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return m.valid == nil || m.valid(v)
}
