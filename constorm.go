package constorm

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/drake200120xx/constorm/pkg/input"
	"github.com/drake200120xx/constorm/pkg/menu"
	"github.com/drake200120xx/constorm/pkg/output"
)

// ErrNoGraph is returned by New when no graph is given.
var ErrNoGraph = errors.New("menu graph is required")

// Session is the high-level entry point: one user walking one graph on one
// input and output stream.
type Session struct {
	graph  *menu.Graph
	in     io.Reader
	out    io.Writer
	color  bool
	hooks  menu.Hooks
	logger *slog.Logger
	env    *menu.Env
}

// Option defines a functional option for configuring the Session.
type Option func(*Session)

// WithInput reads answers from r instead of os.Stdin.
func WithInput(r io.Reader) Option {
	return func(s *Session) {
		s.in = r
	}
}

// WithOutput writes screens to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

// WithColor enables or disables colored headers (default: enabled).
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.color = enabled
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks menu.Hooks) Option {
	return func(s *Session) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New prepares a session over g.
func New(g *menu.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNoGraph
	}
	s := &Session{
		graph: g,
		in:    os.Stdin,
		out:   os.Stdout,
		color: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	printer := output.NewPrinter(s.out, output.WithLogger(s.logger), output.WithColor(s.color))
	reader := input.NewReader(s.in, printer, input.WithLogger(s.logger))
	s.env = menu.NewEnv(reader, printer, menu.WithLogger(s.logger), menu.WithHooks(s.hooks))
	return s, nil
}

// Env exposes the collaborators nodes run against.
func (s *Session) Env() *menu.Env { return s.env }

// Graph returns the session's graph.
func (s *Session) Graph() *menu.Graph { return s.graph }

// RunLoop runs nodes from start until one of them returns menu.None.
// A closed input stream ends the loop with an error wrapping io.EOF.
func (s *Session) RunLoop(start menu.NodeID) (menu.Stats, error) {
	s.logger.Debug("session started", "start", s.graph.Name(start))
	stats, err := menu.Run(s.env, s.graph, start)
	if err != nil {
		return stats, err
	}
	s.logger.Debug("session finished", "invocations", stats.Invocations, "reprompts", stats.Reprompts)
	return stats, nil
}

// RunNamed is RunLoop starting at the node registered under name.
func (s *Session) RunNamed(name string) (menu.Stats, error) {
	id, ok := s.graph.Lookup(name)
	if !ok {
		return menu.Stats{}, fmt.Errorf("%w: %s", menu.ErrUnknownNode, name)
	}
	return s.RunLoop(id)
}

// RunLoop runs g from start on stdin and stdout.
func RunLoop(g *menu.Graph, start menu.NodeID) error {
	s, err := New(g)
	if err != nil {
		return err
	}
	_, err = s.RunLoop(start)
	return err
}
