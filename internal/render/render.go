// Package render writes coerced configuration entries in a chosen format.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format other than yaml, json or toml.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
func Formats() []string {
	return []string{"yaml", "json", "toml"}
}

// Encode writes data to w. TOML has no null, so absent values are omitted
// from TOML output.
func Encode(w io.Writer, format string, data map[string]any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jsonSafe(data)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "toml":
		if err := toml.NewEncoder(w).Encode(data); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// jsonSafe replaces NaN and infinities, which JSON cannot represent, with
// their string form ("NaN", "+Inf", "-Inf").
func jsonSafe(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for key, value := range data {
		if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			out[key] = strconv.FormatFloat(f, 'g', -1, 64)
			continue
		}
		out[key] = value
	}
	return out
}
