package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain", in: "hello world", want: "hello world"},
		{name: "keeps tabs", in: "a\tb", want: "a\tb"},
		{name: "strips controls", in: "a\x00b\x1bc", want: "abc"},
		{name: "unicode", in: "日本語", want: "日本語"},
		{name: "invalid utf8", in: "bad\xffbyte", wantErr: ErrInvalidUTF8},
		{name: "too large", in: strings.Repeat("x", DefaultMaxLineSize+1), wantErr: ErrLineTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeLine(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeLine_EnvLimit(t *testing.T) {
	t.Setenv(EnvMaxLineSize, "5")

	_, err := SanitizeLine("12345")
	assert.NoError(t, err)

	_, err = SanitizeLine("123456")
	assert.ErrorIs(t, err, ErrLineTooLarge)
}

func TestSanitizeLine_BadEnvFallsBack(t *testing.T) {
	t.Setenv(EnvMaxLineSize, "lots")

	_, err := SanitizeLine(strings.Repeat("x", DefaultMaxLineSize))
	assert.NoError(t, err)
}
