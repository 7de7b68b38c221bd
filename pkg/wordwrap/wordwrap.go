package wordwrap

import (
	"slices"
	"strings"
)

// WordWrap is a piece of text kept wrapped to a fixed column limit.
// Every mutation recomputes the lines in full.
type WordWrap struct {
	text     string
	limit    int
	tabWidth int
	lines    []string
}

// New wraps text to limit columns, expanding tabs to tabWidth spaces.
func New(text string, limit, tabWidth int) *WordWrap {
	w := &WordWrap{text: text, limit: limit, tabWidth: tabWidth}
	w.wrap()
	return w
}

// Empty returns an empty WordWrap using the default limit and tab width.
func Empty() *WordWrap {
	return New("", DefaultLimit, DefaultTabWidth)
}

// SetText replaces the source text, keeping limit and tab width.
func (w *WordWrap) SetText(text string) {
	w.text = text
	w.wrap()
}

// SetLimit changes the column limit.
func (w *WordWrap) SetLimit(limit int) {
	w.limit = limit
	w.wrap()
}

// SetTabWidth changes the tab expansion width.
func (w *WordWrap) SetTabWidth(tabWidth int) {
	w.tabWidth = tabWidth
	w.wrap()
}

// WithText returns a new WordWrap for text using the same limit and tab width.
func (w *WordWrap) WithText(text string) *WordWrap {
	return New(text, w.limit, w.tabWidth)
}

func (w *WordWrap) Text() string  { return w.text }
func (w *WordWrap) Limit() int    { return w.limit }
func (w *WordWrap) TabWidth() int { return w.tabWidth }

// Lines returns a copy of the wrapped lines.
func (w *WordWrap) Lines() []string {
	return slices.Clone(w.lines)
}

// String joins the wrapped lines with newlines.
func (w *WordWrap) String() string {
	return strings.Join(w.lines, "\n")
}

func (w *WordWrap) wrap() {
	w.lines = Wrap(w.text, w.limit, w.tabWidth)
}
