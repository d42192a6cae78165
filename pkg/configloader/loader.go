package configloader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const defaultFilePath = ".env"

type loaderOptions struct {
	Delimiter Delimiter `validate:"delimiter"`
	FilePath  string    `validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("delimiter", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(Delimiter)
		return ok && d.Valid()
	}); err != nil {
		panic(fmt.Sprintf("configloader: register delimiter validation: %v", err))
	}
	return v
}

// Loader reads a configuration file and binds its entries onto a target.
// A Loader is not safe for concurrent use, and two loaders must not write
// the same target at the same time.
type Loader struct {
	delimiter Delimiter
	filePath  string
	target    any
	logger    *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithDelimiter sets the key/value separator. Defaults to Equals.
func WithDelimiter(d Delimiter) Option {
	return func(l *Loader) {
		l.delimiter = d
	}
}

// WithFilePath sets the file to read. Defaults to ".env".
func WithFilePath(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithTarget sets the object whose fields are written.
func WithTarget(target any) Option {
	return func(l *Loader) {
		l.target = target
	}
}

// WithLogger overrides the logger. Defaults to zap.L().
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New constructs a Loader with defaults applied before opts.
func New(opts ...Option) *Loader {
	l := &Loader{
		delimiter: Equals,
		filePath:  defaultFilePath,
		logger:    zap.L(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetDelimiter changes the key/value separator and returns l.
func (l *Loader) SetDelimiter(d Delimiter) *Loader {
	l.delimiter = d
	return l
}

// SetFilePath changes the file to read and returns l.
func (l *Loader) SetFilePath(path string) *Loader {
	l.filePath = path
	return l
}

// SetTarget changes the object whose fields are written and returns l.
func (l *Loader) SetTarget(target any) *Loader {
	l.target = target
	return l
}

// Load reads the whole file, parses and coerces every entry, checks every
// binding and only then writes the target. A missing target is logged and
// ignored. File access and binding failures leave the target untouched and
// are returned wrapping ErrFileAccess or ErrFieldBinding.
func (l *Loader) Load() error {
	logger := l.logger.With(
		zap.String("path", l.filePath),
		zap.String("delimiter", l.delimiter.Symbol()),
	)

	if isNil(l.target) {
		logger.Error("configuration target must be set before loading", zap.Error(ErrTargetMissing))
		return nil
	}

	if err := validate.Struct(loaderOptions{Delimiter: l.delimiter, FilePath: l.filePath}); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		logger.Error("invalid loader options", zap.Error(err))
		return err
	}

	fields, err := fieldsFor(l.target)
	if err != nil {
		logger.Error("unsupported configuration target", zap.Error(err))
		return err
	}

	data, err := readFile(l.filePath)
	if err != nil {
		logger.Error("cannot read configuration file", zap.Error(err))
		return err
	}

	entries := parseLines(string(data), l.delimiter, logger)

	commits := make([]func(), 0, len(entries))
	for _, entry := range entries {
		setter, level, ok := fields.Lookup(entry.Key)
		if !ok {
			logger.Debug("no field matches configuration key",
				zap.String("key", entry.Key),
				zap.Int("line", entry.Line),
			)
			continue
		}

		commit, err := setter(entry.Value())
		if err != nil {
			if !errors.Is(err, ErrFieldBinding) {
				err = fmt.Errorf("%w: %w", ErrFieldBinding, err)
			}
			err = fmt.Errorf("key %q on %s: %w", entry.Key, level, err)
			logger.Error("cannot bind configuration value",
				zap.String("key", entry.Key),
				zap.Int("line", entry.Line),
				zap.Error(err),
			)
			return err
		}
		if commit == nil {
			continue
		}
		commits = append(commits, commit)
	}

	for _, commit := range commits {
		commit()
	}

	logger.Debug("configuration loaded",
		zap.Int("entries", len(entries)),
		zap.Int("bound", len(commits)),
	)
	return nil
}

// readFile loads the file in one pass so that an I/O failure is reported
// before any field is written.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrFileAccess, path, err)
	}
	return data, nil
}

func isNil(target any) bool {
	if target == nil {
		return true
	}
	rv := reflect.ValueOf(target)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
