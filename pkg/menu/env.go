package menu

import (
	"io"
	"log/slog"

	"github.com/drake200120xx/constorm/pkg/input"
	"github.com/drake200120xx/constorm/pkg/output"
)

// Env carries the collaborators every node runs against.
type Env struct {
	In     *input.Reader
	Out    *output.Printer
	Logger *slog.Logger
	Hooks  Hooks
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) EnvOption {
	return func(e *Env) {
		e.Logger = logger
	}
}

// WithHooks sets the lifecycle hooks.
func WithHooks(h Hooks) EnvOption {
	return func(e *Env) {
		e.Hooks = h
	}
}

// NewEnv builds an Env. Nil collaborators fall back to stdin and stdout.
func NewEnv(in *input.Reader, out *output.Printer, opts ...EnvOption) *Env {
	e := &Env{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if out == nil {
		out = output.NewPrinter(nil, output.WithLogger(e.Logger))
	}
	if in == nil {
		in = input.NewReader(nil, out, input.WithLogger(e.Logger))
	}
	e.In = in
	e.Out = out
	return e
}

// complete returns env with nil collaborators filled as NewEnv fills them.
// A fully populated env is returned as is.
func complete(env *Env) *Env {
	if env == nil {
		return NewEnv(nil, nil)
	}
	if env.In != nil && env.Out != nil && env.Logger != nil {
		return env
	}
	opts := []EnvOption{WithHooks(env.Hooks)}
	if env.Logger != nil {
		opts = append(opts, WithLogger(env.Logger))
	}
	return NewEnv(env.In, env.Out, opts...)
}
