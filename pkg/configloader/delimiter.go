package configloader

import (
	"fmt"
	"strings"
)

// Delimiter separates a key from its value on a configuration line.
type Delimiter string

// Supported delimiters.
const (
	// Equals splits KEY=VALUE and is the default.
	Equals Delimiter = "="
	// Semicolon splits KEY;VALUE.
	Semicolon Delimiter = ";"
	// Comma splits KEY,VALUE.
	Comma Delimiter = ","
	// Colon splits KEY:VALUE.
	Colon Delimiter = ":"
)

var delimiterNames = map[Delimiter]string{
	Equals:    "equals",
	Semicolon: "semicolon",
	Comma:     "comma",
	Colon:     "colon",
}

// Delimiters returns the supported delimiters in a stable order.
func Delimiters() []Delimiter {
	return []Delimiter{Equals, Semicolon, Comma, Colon}
}

// ParseDelimiter accepts either the symbol ("=") or the name ("equals").
func ParseDelimiter(s string) (Delimiter, error) {
	s = strings.TrimSpace(s)
	for _, d := range Delimiters() {
		if s == string(d) || strings.EqualFold(s, delimiterNames[d]) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
}

// Symbol returns the literal separator.
func (d Delimiter) Symbol() string {
	return string(d)
}

// Valid reports whether d is one of the supported delimiters.
func (d Delimiter) Valid() bool {
	_, ok := delimiterNames[d]
	return ok
}

// String returns the delimiter's name, such as "equals".
func (d Delimiter) String() string {
	if name, ok := delimiterNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Delimiter(%q)", string(d))
}
