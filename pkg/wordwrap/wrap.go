package wordwrap

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultLimit is the column limit used when none is configured.
	DefaultLimit = 80
	// DefaultTabWidth is the number of spaces a tab expands to.
	DefaultTabWidth = 4
	// MinLimit is the smallest usable column limit: one column of text plus the hyphen.
	MinLimit = 2
)

// Wrap reflows text into lines no wider than limit columns.
//
// Spaces, newlines and tabs delimit tokens. A tab expands inline to tabWidth spaces.
// A token wider than limit is split into chunks of at most limit-1 columns followed by a
// hyphen; a rune too wide to sit next to the hyphen goes out alone.
// Text that already fits, counting each control character as one column, is returned
// untouched as a single line.
func Wrap(text string, limit, tabWidth int) []string {
	if limit < MinLimit {
		limit = MinLimit
	}
	if length(text) <= limit {
		return []string{text}
	}

	w := &wrapper{
		limit: limit,
		tab:   strings.Repeat(" ", clamp(tabWidth, 0, limit)),
	}
	for _, r := range text {
		switch r {
		case ' ':
			w.space()
		case '\n':
			w.newline()
		case '\t':
			w.tabulate()
		default:
			w.char(r)
		}
	}
	w.finish()
	return w.lines
}

// wrapper holds the scan state of a single Wrap call.
type wrapper struct {
	limit int
	tab   string

	line  string
	token string
	lines []string
}

func (w *wrapper) space() {
	switch {
	case width(w.line+w.token)+1 <= w.limit:
		w.line += w.token + " "
	default:
		w.emit(w.line)
		if width(w.token)+1 <= w.limit {
			w.line = w.token + " "
		} else {
			w.emit(w.token)
			w.line = ""
		}
	}
	w.token = ""
}

func (w *wrapper) newline() {
	w.flush()
	w.line, w.token = "", ""
}

func (w *wrapper) tabulate() {
	tabW := len(w.tab)
	switch {
	case width(w.line+w.token)+tabW <= w.limit:
		w.line += w.token + w.tab
	case width(w.line+w.token) <= w.limit:
		w.emit(w.line + w.token)
		w.line = w.tab
	default:
		w.emit(w.line)
		if width(w.token)+tabW <= w.limit {
			w.line = w.token + w.tab
		} else {
			w.emit(w.token)
			w.line = w.tab
		}
	}
	w.token = ""
}

// char appends r to the current token. Once the token can no longer fit on a line of its
// own it is hyphenated: the pending line goes out first, then up to limit-1 columns plus "-".
func (w *wrapper) char(r rune) {
	rw := runewidth.RuneWidth(r)
	for w.token != "" && width(w.token)+rw > w.limit {
		w.emit(w.line)
		w.line = ""
		head, tail := split(w.token, w.limit-1)
		if head == "" {
			head, tail = split(w.token, w.limit)
			w.emit(head)
		} else {
			w.emit(head + "-")
		}
		w.token = tail
	}
	w.token += string(r)
}

func (w *wrapper) finish() {
	w.flush()
}

// flush moves the current line and token to the output, on one line when they fit.
func (w *wrapper) flush() {
	if width(w.line+w.token) <= w.limit {
		w.emit(w.line + w.token)
		return
	}
	w.emit(w.line)
	w.emit(w.token)
}

// emit appends a completed line. Empty lines are never emitted.
func (w *wrapper) emit(line string) {
	if line == "" {
		return
	}
	w.lines = append(w.lines, line)
}

// split cuts s after the widest prefix that fits in cols columns. head is empty when
// the first rune alone is wider than cols.
func split(s string, cols int) (head, tail string) {
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > cols {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}

func width(s string) int {
	return runewidth.StringWidth(s)
}

// length is the display width of s with tabs, newlines and other control characters
// counted as one column each.
func length(s string) int {
	n := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw < 1 && unicode.IsControl(r) {
			rw = 1
		}
		n += rw
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
