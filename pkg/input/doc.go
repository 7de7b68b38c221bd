// Package input reads validated values from a line-oriented stream.
//
// Each read consumes one line. Numeric, boolean and single-word reads take the
// first whitespace-separated token of that line and discard the rest; string
// reads take the whole line. When a line is empty, fails to parse or is
// rejected by the predicate, the Reader prompts an invalid-input message and
// reads again. Only a failing stream (including io.EOF) ends a read with an
// error.
//
//	r := input.NewReader(os.Stdin, printer)
//	choice, err := input.Read(r, func(n int) bool { return n >= 1 && n <= 3 }, "")
package input
