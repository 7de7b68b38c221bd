package menu

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/drake200120xx/constorm/pkg/input"
	"github.com/drake200120xx/constorm/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnv(in string, opts ...EnvOption) (*Env, *bytes.Buffer) {
	var out bytes.Buffer
	p := output.NewPrinter(&out, output.WithColor(false))
	r := input.NewReader(strings.NewReader(in), p)
	return NewEnv(r, p, opts...), &out
}

func twoOptions(t *testing.T, g *Graph) (m *OptionsMenu, a, b NodeID) {
	t.Helper()
	a = g.Add(NewExitMenu(""))
	b = g.Add(NewExitMenu(""))
	m = NewOptionsMenu("Pick")
	require.NoError(t, m.SetOptions([]string{"A", "B"}, []NodeID{a, b}))
	return m, a, b
}

func TestOptionsMenu_SelectsSecond(t *testing.T) {
	g := NewGraph()
	m, _, b := twoOptions(t, g)
	env, _ := newTestEnv("2\n")

	got, err := m.Run(env)

	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestOptionsMenu_OneRepromptThenFirst(t *testing.T) {
	g := NewGraph()
	m, a, _ := twoOptions(t, g)
	env, out := newTestEnv("3\n1\n")
	reprompts := 0
	env.In.SetInvalidHook(func() { reprompts++ })

	got, err := m.Run(env)

	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.Equal(t, 1, reprompts)
	assert.True(t, strings.HasSuffix(out.String(), input.DefaultInvalidMessage))
}

func TestOptionsMenu_RejectsEverythingOutsideRange(t *testing.T) {
	g := NewGraph()
	m, a, _ := twoOptions(t, g)
	env, _ := newTestEnv("letters\n0\n3\n\n-1\n1\n")
	reprompts := 0
	env.In.SetInvalidHook(func() { reprompts++ })

	got, err := m.Run(env)

	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.Equal(t, 5, reprompts)
}

func TestOptionsMenu_Display(t *testing.T) {
	g := NewGraph()
	m, _, _ := twoOptions(t, g)
	m.SetTitle("Main")
	m.SetDescription("Pick one")
	env, out := newTestEnv("1\n")

	_, err := m.Run(env)

	require.NoError(t, err)
	assert.Equal(t, "Main\n------\nPick one\n\n (1) A\n (2) B\n\nEnter: ", out.String())
}

func TestOptionsMenu_CustomPrompt(t *testing.T) {
	g := NewGraph()
	m, _, _ := twoOptions(t, g)
	m.SetPrompt("Enter the numerical option: ")
	env, out := newTestEnv("1\n")

	_, err := m.Run(env)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "Enter the numerical option: "))
}

func TestOptionsMenu_SetOptionsMismatch(t *testing.T) {
	var logBuf bytes.Buffer
	m := NewOptionsMenu("Menu")
	m.SetLogger(slog.New(slog.NewTextHandler(&logBuf, nil)))
	m.AppendOption("Keep", 7)

	err := m.SetOptions([]string{"A", "B"}, []NodeID{1})

	assert.ErrorIs(t, err, ErrOptionsMismatch)
	assert.Equal(t, []Option{{Label: "Keep", To: 7}}, m.Options())
	assert.Contains(t, logBuf.String(), "options rejected")
}

func TestOptionsMenu_IndexedAccess(t *testing.T) {
	m := NewOptionsMenu("Menu")
	m.AppendOption("One", 1)
	m.AppendOption("Two", 2)

	o, ok := m.Option(1)
	require.True(t, ok)
	assert.Equal(t, Option{Label: "Two", To: 2}, o)

	_, ok = m.Option(2)
	assert.False(t, ok)

	require.NoError(t, m.SetOption(0, Option{Label: "Uno", To: 3}))
	assert.ErrorIs(t, m.SetOption(5, Option{}), ErrIndexOutOfRange)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []Edge{{Label: "Uno", To: 3}, {Label: "Two", To: 2}}, m.Edges())
}

func TestInputMenu_Collect(t *testing.T) {
	m := NewInputMenu[string]("User Name Entry")
	m.SetValidation(func(s string) bool { return s != "" })
	m.SetNext(4)
	env, _ := newTestEnv("\nJane Doe\n")

	_, ok := m.Last()
	assert.False(t, ok)

	next, err := m.Run(env)
	require.NoError(t, err)
	assert.Equal(t, NodeID(4), next)

	v, ok := m.Last()
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", v)
}

func TestInputMenu_Choices(t *testing.T) {
	m := NewInputMenu[int]("Level")
	m.SetChoices(1, 5, 9)
	m.SetValidation(func(n int) bool { return n != 9 })
	env, _ := newTestEnv("2\n9\n5\n")

	v, err := m.Collect(env)

	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestInputMenu_EOFKeepsLastValue(t *testing.T) {
	m := NewInputMenu[int]("Age")
	env, _ := newTestEnv("30\n")

	_, err := m.Collect(env)
	require.NoError(t, err)
	_, err = m.Collect(env)
	assert.ErrorIs(t, err, io.EOF)

	v, ok := m.Last()
	assert.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestInfoMenu_Run(t *testing.T) {
	m := NewInfoMenu("Application Help", 3)
	m.SetDescription("About")
	m.AppendSection("Getting Started", "Pick an option.")
	env, out := newTestEnv("\n")

	next, err := m.Run(env)

	require.NoError(t, err)
	assert.Equal(t, NodeID(3), next)
	want := "Application Help\n" + strings.Repeat("-", 18) + "\n" +
		"About\n\n\n" +
		"Getting Started\n" + strings.Repeat("-", 17) + "\n" +
		"Pick an option.\n\n" +
		"\n" +
		input.DefaultPauseMessage + "\n"
	assert.Equal(t, want, out.String())
}

func TestInfoMenu_SectionsUseDescriptionWrap(t *testing.T) {
	m := NewInfoMenu("Help", None)
	m.SetDescriptionWrap("", 10, 2)
	m.AppendSection("H", "The quick brown fox")

	s, ok := m.Section(0)
	require.True(t, ok)
	assert.Equal(t, []string{"The quick ", "brown fox"}, s.Text.Lines())
	assert.ErrorIs(t, m.SetSection(3, s), ErrIndexOutOfRange)
}

func TestInfoMenu_Renderer(t *testing.T) {
	m := NewInfoMenu("Help", None)
	m.AppendSection("Bold", "**hi**")
	m.SetRenderer(func(s string) (string, error) { return "<" + s + ">\n", nil })
	env, out := newTestEnv("\n")

	_, err := m.Run(env)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "<**hi**>\n")
}

func TestInfoMenu_RendererFailureFallsBack(t *testing.T) {
	var logBuf bytes.Buffer
	m := NewInfoMenu("Help", None)
	m.AppendSection("Plain", "text")
	m.SetRenderer(func(string) (string, error) { return "", errors.New("boom") })
	env, out := newTestEnv("\n", WithLogger(slog.New(slog.NewTextHandler(&logBuf, nil))))

	_, err := m.Run(env)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "text\n")
	assert.Contains(t, logBuf.String(), "section render failed")
}

func TestInfoMenu_EOF(t *testing.T) {
	m := NewInfoMenu("Help", 2)
	env, _ := newTestEnv("")

	next, err := m.Run(env)

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, None, next)
}

func TestFunctionMenu_Unbound(t *testing.T) {
	m := NewFunctionMenu[int, int](nil, 1, 5)
	env, out := newTestEnv("")

	next, err := m.Run(env)

	require.NoError(t, err)
	assert.Equal(t, None, next)
	assert.Empty(t, out.String())
	_, ran := m.Result()
	assert.False(t, ran)
	assert.Empty(t, m.Edges())

	m.SetFunction(func(n int) int { return n })
	assert.Equal(t, []Edge{{To: 5}}, m.Edges())
}

func TestFunctionMenu_Bound(t *testing.T) {
	calls := 0
	m := NewFunctionMenu(func(n int) int { calls++; return n * 2 }, 21, 5)
	var shown int
	m.SetDisplay(func(_ *Env, r int) error { shown = r; return nil })
	env, _ := newTestEnv("")

	next, err := m.Run(env)

	require.NoError(t, err)
	assert.Equal(t, NodeID(5), next)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 42, shown)
	r, ran := m.Result()
	assert.True(t, ran)
	assert.Equal(t, 42, r)

	m.SetFunction(nil)
	assert.False(t, m.Bound())
}

func TestExitMenu(t *testing.T) {
	env, out := newTestEnv("")

	next, err := NewExitMenu("Bye").Run(env)

	require.NoError(t, err)
	assert.Equal(t, None, next)
	assert.Equal(t, "\n Bye\n", out.String())
}

func TestExitMenu_Silent(t *testing.T) {
	env, out := newTestEnv("")

	next, err := NewExitMenu("").Run(env)

	require.NoError(t, err)
	assert.Equal(t, None, next)
	assert.Empty(t, out.String())
}
