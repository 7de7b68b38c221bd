package menu

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/drake200120xx/constorm/pkg/input"
	"github.com/drake200120xx/constorm/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type hookRecorder struct {
	mock.Mock
}

func (h *hookRecorder) enter(e *NodeEvent)    { h.Called(e.Type, e.Name) }
func (h *hookRecorder) leave(e *NodeEvent)    { h.Called(e.Type, e.Name) }
func (h *hookRecorder) reprompt(e *NodeEvent) { h.Called(e.Type, e.Name) }

func (h *hookRecorder) hooks() Hooks {
	return Hooks{OnNodeEnter: h.enter, OnNodeLeave: h.leave, OnReprompt: h.reprompt}
}

func TestRun_OptionsInputExitChain(t *testing.T) {
	g := NewGraph()
	exit := g.Add(NewExitMenu(""))
	name := NewInputMenu[string]("Name")
	name.SetNext(exit)
	nameID := g.Add(name)
	main := NewOptionsMenu("Main")
	main.AppendOption("Enter name", nameID)
	start := g.Add(main)

	env, _ := newTestEnv("1\nJane\n")
	stats, err := Run(env, g, start)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Invocations)
	assert.Equal(t, 0, stats.Reprompts)
	v, _ := name.Last()
	assert.Equal(t, "Jane", v)
}

func TestRun_CyclicGraph(t *testing.T) {
	g := NewGraph()
	loop, err := g.AddNamed("loop", nil)
	require.NoError(t, err)
	exit := g.Add(NewExitMenu(""))
	m := NewOptionsMenu("Loop")
	m.AppendOption("Again", loop)
	m.AppendOption("Quit", exit)
	require.NoError(t, g.Set(loop, m))

	env, _ := newTestEnv("1\n1\n1\n2\n")
	stats, err := Run(env, g, loop)

	require.NoError(t, err)
	assert.Equal(t, 5, stats.Invocations)
	assert.Equal(t, 4, stats.Visits[loop])
	assert.Equal(t, 1, stats.Visits[exit])
}

func TestRun_Hooks(t *testing.T) {
	g := NewGraph()
	exit, _ := g.AddNamed("exit", NewExitMenu(""))
	m := NewOptionsMenu("Main")
	m.AppendOption("Quit", exit)
	start, _ := g.AddNamed("main", m)

	rec := &hookRecorder{}
	rec.On("enter", EventNodeEnter, "main").Once()
	rec.On("enter", EventNodeEnter, "exit").Once()
	rec.On("leave", EventNodeLeave, "main").Once()
	rec.On("leave", EventNodeLeave, "exit").Once()
	rec.On("reprompt", EventReprompt, "main").Twice()

	env, _ := newTestEnv("x\n9\n1\n", WithHooks(rec.hooks()))
	stats, err := Run(env, g, start)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Reprompts)
	rec.AssertExpectations(t)
}

func TestRun_UnknownNode(t *testing.T) {
	env, _ := newTestEnv("")

	stats, err := Run(env, NewGraph(), 99)

	assert.ErrorIs(t, err, ErrUnknownNode)
	assert.Zero(t, stats.Invocations)
}

func TestRun_StartAtNone(t *testing.T) {
	env, out := newTestEnv("")

	stats, err := Run(env, NewGraph(), None)

	require.NoError(t, err)
	assert.Zero(t, stats.Invocations)
	assert.Empty(t, out.String())
}

func TestRun_InputClosed(t *testing.T) {
	g := NewGraph()
	m := NewOptionsMenu("Main")
	m.AppendOption("Nowhere", None)
	start := g.Add(m)
	env, _ := newTestEnv("")

	stats, err := Run(env, g, start)

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, stats.Invocations)
}

func TestRun_UnboundFunctionEndsSession(t *testing.T) {
	g := NewGraph()
	fn := NewFunctionMenu[struct{}, int](nil, struct{}{}, None)
	fnID := g.Add(fn)
	m := NewOptionsMenu("Main")
	m.AppendOption("Run", fnID)
	start := g.Add(m)
	fn.SetNext(start)

	env, _ := newTestEnv("1\n")
	stats, err := Run(env, g, start)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Invocations)
}

func TestRun_PartialEnvGetsDefaults(t *testing.T) {
	g := NewGraph()
	m, a, _ := twoOptions(t, g)
	start := g.Add(m)

	var out bytes.Buffer
	p := output.NewPrinter(&out, output.WithColor(false))
	env := &Env{In: input.NewReader(strings.NewReader("3\n1\n"), p), Out: p}

	var stats Stats
	var err error
	require.NotPanics(t, func() { stats, err = Run(env, g, start) })

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Invocations)
	assert.Equal(t, 1, stats.Reprompts)
	assert.Equal(t, 1, stats.Visits[a])
}
