package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/drake200120xx/constorm/pkg/output"
	"golang.org/x/term"
)

const (
	// DefaultInvalidMessage is prompted after a rejected answer.
	DefaultInvalidMessage = "Invalid input. Re-enter: "
	// DefaultPauseMessage is shown by Pause when no message is given.
	DefaultPauseMessage = "Press any key to continue..."
)

// Reader reads validated values line by line.
// Every successful read consumes the rest of its line, so the next read starts clean.
type Reader struct {
	in        *bufio.Reader
	out       *output.Printer
	logger    *slog.Logger
	terminal  *os.File
	onInvalid func()
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// WithInvalidHook registers a callback fired on every re-prompt.
func WithInvalidHook(fn func()) Option {
	return func(r *Reader) {
		r.onInvalid = fn
	}
}

// NewReader reads from src and prompts through out.
// A nil src means os.Stdin; a nil out prints to os.Stdout.
func NewReader(src io.Reader, out *output.Printer, opts ...Option) *Reader {
	if src == nil {
		src = os.Stdin
	}
	if out == nil {
		out = output.NewPrinter(nil)
	}
	r := &Reader{
		in:     bufio.NewReader(src),
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if f, ok := src.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.terminal = f
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetInvalidHook replaces the re-prompt callback.
func (r *Reader) SetInvalidHook(fn func()) {
	r.onInvalid = fn
}

// Read returns the first value that parses as T and satisfies valid.
// A nil valid accepts anything. For strings the whole line is the value.
func Read[T Scalar](r *Reader, valid func(T) bool, invalidMsg string) (T, error) {
	if valid == nil {
		valid = Always[T]
	}
	var zero T
	if _, ok := any(zero).(string); ok {
		s, err := r.ReadLine(func(s string) bool { return valid(any(s).(T)) }, invalidMsg)
		if err != nil {
			return zero, err
		}
		return any(s).(T), nil
	}

	for {
		line, ok, err := r.line()
		if err != nil {
			return zero, err
		}
		if ok {
			if fields := strings.Fields(line); len(fields) > 0 {
				if v, perr := Parse[T](fields[0]); perr == nil && valid(v) {
					return v, nil
				}
			}
		}
		r.invalid(invalidMsg)
	}
}

// ReadSet returns the first value that is a member of set. An empty set accepts anything.
func ReadSet[T Scalar](r *Reader, set []T, invalidMsg string) (T, error) {
	if len(set) == 0 {
		return Read[T](r, nil, invalidMsg)
	}
	members := make(map[T]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}
	return Read(r, func(v T) bool {
		_, ok := members[v]
		return ok
	}, invalidMsg)
}

// ReadLine returns the first whole line accepted by valid, spaces included.
func (r *Reader) ReadLine(valid func(string) bool, invalidMsg string) (string, error) {
	if valid == nil {
		valid = Always[string]
	}
	for {
		line, ok, err := r.line()
		if err != nil {
			return "", err
		}
		if ok && valid(line) {
			return line, nil
		}
		r.invalid(invalidMsg)
	}
}

// Pause shows msg and blocks until one line, or one key on a terminal, is received.
func (r *Reader) Pause(msg string) error {
	if msg == "" {
		msg = DefaultPauseMessage
	}
	r.out.Println(output.Text(msg))

	if r.terminal != nil && r.in.Buffered() == 0 {
		fd := int(r.terminal.Fd())
		if state, err := term.MakeRaw(fd); err == nil {
			defer func() {
				if err := term.Restore(fd, state); err != nil {
					r.logger.Error("restore terminal failed", "error", err)
				}
			}()
			if _, err := r.in.ReadByte(); err != nil {
				return fmt.Errorf("pause: %w", err)
			}
			return nil
		}
	}

	text, err := r.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || text == "") {
		return fmt.Errorf("pause: %w", err)
	}
	return nil
}

// line reads the next line without its terminator. ok is false when the
// sanitizer rejected the line; err is set only when the stream fails.
func (r *Reader) line() (text string, ok bool, err error) {
	text, err = r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || text == "" {
			return "", false, fmt.Errorf("read input: %w", err)
		}
	}
	text = strings.TrimRight(text, "\r\n")

	clean, serr := SanitizeLine(text)
	if serr != nil {
		r.logger.Debug("input line rejected", "error", serr)
		return "", false, nil
	}
	return clean, true, nil
}

func (r *Reader) invalid(msg string) {
	if msg == "" {
		msg = DefaultInvalidMessage
	}
	r.out.PromptText(msg)
	if r.onInvalid != nil {
		r.onInvalid()
	}
}
