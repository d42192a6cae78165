package configloader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Delimiter
	}{
		{input: "=", want: Equals},
		{input: ";", want: Semicolon},
		{input: ",", want: Comma},
		{input: ":", want: Colon},
		{input: "equals", want: Equals},
		{input: "SEMICOLON", want: Semicolon},
		{input: " comma ", want: Comma},
		{input: "Colon", want: Colon},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDelimiter(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDelimiterRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "|", "==", "tab"} {
		_, err := ParseDelimiter(input)
		if !errors.Is(err, ErrInvalidDelimiter) {
			t.Fatalf("expected ErrInvalidDelimiter for %q, got %v", input, err)
		}
	}
}

func TestDelimiterValidAndString(t *testing.T) {
	t.Parallel()

	for _, d := range Delimiters() {
		assert.True(t, d.Valid(), d.String())
		assert.Equal(t, string(d), d.Symbol())
	}
	assert.Equal(t, "semicolon", Semicolon.String())
	assert.False(t, Delimiter("|").Valid())
	assert.Equal(t, `Delimiter("|")`, Delimiter("|").String())
}
