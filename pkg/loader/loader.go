package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/drake200120xx/constorm/pkg/files"
	"github.com/drake200120xx/constorm/pkg/menu"
	"github.com/drake200120xx/constorm/pkg/registry"
	"github.com/drake200120xx/constorm/pkg/wordwrap"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownType       = errors.New("unknown node type")
	ErrDanglingReference = errors.New("reference to undefined node")
	ErrMissingID         = errors.New("node without id")
	ErrNoNodes           = errors.New("no nodes defined")
	ErrInvalidChoice     = errors.New("choice does not parse as the input value type")
	ErrUnknownValueType  = errors.New("unknown input value type")
	ErrUnknownStartNode  = errors.New("start node is not defined")
)

// Result is a built menu graph.
type Result struct {
	Graph *menu.Graph
	Start menu.NodeID
	// Specs are the node declarations in graph order.
	Specs []NodeSpec
}

// Loader turns YAML menu definitions into a menu.Graph.
type Loader struct {
	registry *registry.Registry
	logger   *slog.Logger
	render   menu.ContentRenderer
	columns  int
	tabWidth int
	workers  int
}

// Option configures a Loader.
type Option func(*Loader)

// WithRegistry resolves function nodes against r.
func WithRegistry(r *registry.Registry) Option {
	return func(l *Loader) {
		l.registry = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithRenderer renders info sections through fn.
func WithRenderer(fn menu.ContentRenderer) Option {
	return func(l *Loader) {
		l.render = fn
	}
}

// WithWrap sets the column limit and tab width used when a node sets none.
func WithWrap(columns, tabWidth int) Option {
	return func(l *Loader) {
		l.columns = columns
		l.tabWidth = tabWidth
	}
}

// WithWorkers bounds concurrent file reads in LoadFiles.
func WithWorkers(n int) Option {
	return func(l *Loader) {
		l.workers = n
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		registry: registry.NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		columns:  wordwrap.DefaultLimit,
		tabWidth: wordwrap.DefaultTabWidth,
		workers:  4,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Parse decodes every YAML document in data. source names data in errors.
func Parse(data []byte, source string) ([]Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var defs []Definition
	for i := 0; ; i++ {
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%s: document %d: %w", source, i+1, err)
		}
		if raw == nil {
			continue
		}

		var def Definition
		md, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &def,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := md.Decode(raw); err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", source, i+1, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadBytes parses and builds a single source.
func (l *Loader) LoadBytes(data []byte, source string) (*Result, error) {
	defs, err := Parse(data, source)
	if err != nil {
		return nil, err
	}
	return l.Build(defs...)
}

// LoadFiles reads paths concurrently and builds one graph from all of them.
// Files are merged in path order so the result does not depend on read order.
func (l *Loader) LoadFiles(ctx context.Context, paths ...string) (*Result, error) {
	loaded, err := files.LoadAll(ctx, paths, l.workers)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(loaded, func(a, b files.File) int {
		return strings.Compare(a.Path, b.Path)
	})

	var defs []Definition
	for _, f := range loaded {
		d, err := Parse(f.Data, f.Path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("menu file parsed", "path", f.Path, "documents", len(d))
		defs = append(defs, d...)
	}
	return l.Build(defs...)
}

// Build creates the graph. The start node is the first declared start, or
// the first node when none is declared.
func (l *Loader) Build(defs ...Definition) (*Result, error) {
	var (
		specs []NodeSpec
		start string
	)
	for _, d := range defs {
		if start == "" {
			start = d.Start
		}
		specs = append(specs, d.Nodes...)
	}
	if len(specs) == 0 {
		return nil, ErrNoNodes
	}

	g := menu.NewGraph()
	for i, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("node #%d: %w", i+1, ErrMissingID)
		}
		if _, err := g.AddNamed(s.ID, nil); err != nil {
			return nil, err
		}
	}

	b := builder{Loader: l, graph: g}
	for _, s := range specs {
		n, err := b.node(s)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", s.ID, err)
		}
		id, _ := g.Lookup(s.ID)
		if err := g.Set(id, n); err != nil {
			return nil, err
		}
	}

	if start == "" {
		start = specs[0].ID
	}
	startID, ok := g.Lookup(start)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStartNode, start)
	}
	return &Result{Graph: g, Start: startID, Specs: specs}, nil
}
