package loader

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/drake200120xx/constorm/pkg/input"
	"github.com/drake200120xx/constorm/pkg/menu"
	"github.com/drake200120xx/constorm/pkg/output"
	"github.com/drake200120xx/constorm/pkg/registry"
	"github.com/drake200120xx/constorm/pkg/wordwrap"
)

// Outcome is the result of a registry function run by a function node.
type Outcome struct {
	Value any
	Err   error
}

type builder struct {
	*Loader
	graph *menu.Graph
}

func (b builder) node(s NodeSpec) (menu.Node, error) {
	switch menu.Kind(s.Type) {
	case menu.KindOptions:
		return b.options(s)
	case menu.KindInput:
		return b.input(s)
	case menu.KindInfo:
		return b.info(s)
	case menu.KindFunction:
		return b.function(s)
	case menu.KindExit:
		return menu.NewExitMenu(s.Message), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, s.Type)
	}
}

func (b builder) ref(name string) (menu.NodeID, error) {
	if name == "" {
		return menu.None, nil
	}
	id, ok := b.graph.Lookup(name)
	if !ok {
		return menu.None, fmt.Errorf("%w: %s", ErrDanglingReference, name)
	}
	return id, nil
}

// wrap returns the node's column and tab settings, falling back to the loader's when unset.
func (b builder) wrap(s NodeSpec) (columns, tabWidth int) {
	columns, tabWidth = b.columns, b.tabWidth
	if s.Columns != nil {
		columns = *s.Columns
	}
	if s.TabWidth != nil {
		tabWidth = *s.TabWidth
	}
	return columns, tabWidth
}

func (b builder) screen(sc *menu.Screen, s NodeSpec) {
	columns, tab := b.wrap(s)
	sc.SetTitle(s.Title)
	sc.SetDescriptionWrap(s.Description, columns, tab)
	sc.SetPrompt(s.Prompt)
}

func (b builder) options(s NodeSpec) (menu.Node, error) {
	m := menu.NewOptionsMenu(s.Title)
	m.SetLogger(b.logger)
	b.screen(&m.Screen, s)
	for _, o := range s.Options {
		to, err := b.ref(o.To)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", o.Text, err)
		}
		m.AppendOption(o.Text, to)
	}
	return m, nil
}

func (b builder) input(s NodeSpec) (menu.Node, error) {
	to, err := b.ref(s.To)
	if err != nil {
		return nil, err
	}
	switch s.Value {
	case "", ValueString:
		return inputMenu[string](b, s, to)
	case ValueInt:
		return inputMenu[int](b, s, to)
	case ValueFloat:
		return inputMenu[float64](b, s, to)
	case ValueBool:
		return inputMenu[bool](b, s, to)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownValueType, s.Value)
	}
}

func inputMenu[T input.Scalar](b builder, s NodeSpec, to menu.NodeID) (*menu.InputMenu[T], error) {
	m := menu.NewInputMenu[T](s.Title)
	b.screen(&m.Screen, s)
	m.SetNext(to)

	choices := make([]T, 0, len(s.Validate.Choices))
	for _, c := range s.Validate.Choices {
		v, err := input.Parse[T](c)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidChoice, c)
		}
		choices = append(choices, v)
	}
	m.SetChoices(choices...)
	m.SetValidation(predicate[T](s.Validate))
	return m, nil
}

// predicate applies non_empty to strings, and min/max to numbers or string lengths.
func predicate[T input.Scalar](v ValidateSpec) func(T) bool {
	within := func(f float64) bool {
		return (v.Min == nil || f >= *v.Min) && (v.Max == nil || f <= *v.Max)
	}
	return func(x T) bool {
		switch val := any(x).(type) {
		case string:
			if v.NonEmpty && strings.TrimSpace(val) == "" {
				return false
			}
			return within(float64(utf8.RuneCountInString(val)))
		case int:
			return within(float64(val))
		case float64:
			return within(val)
		default:
			return true
		}
	}
}

func (b builder) info(s NodeSpec) (menu.Node, error) {
	to, err := b.ref(s.To)
	if err != nil {
		return nil, err
	}
	m := menu.NewInfoMenu(s.Title, to)
	b.screen(&m.Screen, s)
	if s.Pause != "" {
		m.SetPauseMessage(s.Pause)
	}
	for _, sec := range s.Sections {
		m.AppendSection(sec.Header, sec.Text)
	}
	if b.render != nil {
		m.SetRenderer(b.render)
	}
	return m, nil
}

func (b builder) function(s NodeSpec) (menu.Node, error) {
	to, err := b.ref(s.To)
	if err != nil {
		return nil, err
	}
	m := menu.NewFunctionMenu[map[string]any, Outcome](nil, s.Args, to)
	if s.Call == "" {
		b.logger.Warn("function node has no call; it ends its branch", "node", s.ID)
		return m, nil
	}

	fn, ok := b.registry.Lookup(s.Call)
	if !ok {
		return nil, fmt.Errorf("%w: %s", registry.ErrNotFound, s.Call)
	}
	m.SetFunction(func(args map[string]any) Outcome {
		v, err := fn(args)
		return Outcome{Value: v, Err: err}
	})
	m.SetDisplay(b.showOutcome(s))
	return m, nil
}

func (b builder) showOutcome(s NodeSpec) func(*menu.Env, Outcome) error {
	columns, tab := b.wrap(s)
	return func(env *menu.Env, o Outcome) error {
		env.Out.Clear()
		env.Out.Header(output.NewHeader(s.Title))
		if s.Description != "" {
			env.Out.Println(output.Wrapped(wordwrap.New(s.Description, columns, tab)))
		}
		if o.Err != nil {
			env.Logger.Error("function failed", "node", s.ID, "call", s.Call, "error", o.Err)
			env.Out.Println(output.Text("Error: " + o.Err.Error()))
		} else {
			env.Out.Println(output.Text(o.Value))
		}
		env.Out.Println(output.Blank)
		return env.In.Pause(s.Pause)
	}
}
