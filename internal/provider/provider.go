// Package provider exposes a delimited key-value file as a koanf.Provider.
package provider

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/configloader/pkg/configloader"
)

// Provider reads a KEY<delimiter>VALUE file and returns coerced values.
type Provider struct {
	path      string
	delimiter configloader.Delimiter
	logger    *zap.Logger
}

// New returns a Provider for path. A nil logger discards malformed-line warnings.
func New(path string, delimiter configloader.Delimiter, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		path:      path,
		delimiter: delimiter,
		logger:    logger.With(zap.String("path", path)),
	}
}

// ReadBytes returns the raw file contents.
func (p *Provider) ReadBytes() ([]byte, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", configloader.ErrFileAccess, err)
	}
	return data, nil
}

// Read returns every key mapped to its coerced value: bool, int64, float64,
// string, or nil for an absent value.
func (p *Provider) Read() (map[string]any, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", configloader.ErrFileAccess, err)
	}
	defer f.Close()

	entries, err := configloader.Parse(f, p.delimiter, p.logger)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.path, err)
	}

	out := make(map[string]any, len(entries))
	for _, entry := range entries {
		out[entry.Key] = entry.Value().Interface()
	}
	return out, nil
}
