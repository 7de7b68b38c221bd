package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxLineSize is the largest accepted input line in bytes.
	DefaultMaxLineSize = 4096
	// EnvMaxLineSize overrides DefaultMaxLineSize.
	EnvMaxLineSize = "CONSTORM_MAX_INPUT_SIZE"
)

var (
	ErrLineTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeLine enforces the size limit, validates UTF-8 and strips control
// characters other than tab. A rejected line is reported as an error.
func SanitizeLine(line string) (string, error) {
	limit := maxLineSize()
	if len(line) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrLineTooLarge, len(line), limit)
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	clean := true
	for _, r := range line {
		if unicode.IsControl(r) && r != '\t' {
			clean = false
			break
		}
	}
	if clean {
		return line, nil
	}

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if !unicode.IsControl(r) || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func maxLineSize() int {
	if val := os.Getenv(EnvMaxLineSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxLineSize
}
