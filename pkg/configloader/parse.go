package configloader

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Entry is a key with its raw, uncoerced value. HasValue is false when the
// line carried nothing after the delimiter.
type Entry struct {
	Key      string
	Raw      string
	HasValue bool
	Line     int
}

// Value coerces the raw value.
func (e Entry) Value() Value {
	return Coerce(e.Raw, e.HasValue)
}

// Parse reads every line from r and returns the entries in order of first
// appearance. Lines without the delimiter are ignored and duplicate keys keep
// their first value. Malformed lines are logged and skipped.
func Parse(r io.Reader, d Delimiter, logger *zap.Logger) ([]Entry, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDelimiter, string(d))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	return parseLines(string(data), d, logger), nil
}

func parseLines(content string, d Delimiter, logger *zap.Logger) []Entry {
	symbol := d.Symbol()
	seen := make(map[string]struct{})
	var entries []Entry

	for idx, line := range splitLines(content) {
		lineNo := idx + 1
		if !strings.Contains(line, symbol) {
			continue
		}

		entry, err := splitEntry(line, symbol)
		if err != nil {
			logger.Warn("skipping malformed configuration line",
				zap.Int("line", lineNo),
				zap.String("delimiter", symbol),
				zap.Error(err),
			)
			continue
		}
		if _, dup := seen[entry.Key]; dup {
			continue
		}
		seen[entry.Key] = struct{}{}
		entry.Line = lineNo
		entries = append(entries, entry)
	}

	return entries
}

// splitEntry splits on every occurrence of symbol and drops trailing empty
// segments, so "KEY=" and "KEY==" both leave the value absent. Segments past
// the second are discarded.
func splitEntry(line, symbol string) (Entry, error) {
	parts := strings.Split(line, symbol)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return Entry{}, fmt.Errorf("%w: no key before %q", ErrMalformedLine, symbol)
	}

	entry := Entry{Key: parts[0]}
	if len(parts) > 1 {
		entry.Raw = parts[1]
		entry.HasValue = true
	}
	return entry, nil
}

// splitLines breaks content on \n, \r\n and a lone \r.
func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
