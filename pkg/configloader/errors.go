package configloader

import "errors"

var (
	// ErrTargetMissing is logged when Load runs without a target. Load itself returns nil.
	ErrTargetMissing = errors.New("configuration target is not set")
	// ErrFileAccess is returned when the configuration file cannot be opened or read.
	ErrFileAccess = errors.New("cannot access configuration file")
	// ErrMalformedLine is logged for a line that contains the delimiter but yields no key.
	ErrMalformedLine = errors.New("malformed configuration line")
	// ErrFieldBinding is returned when a field exists but cannot hold the coerced value.
	ErrFieldBinding = errors.New("cannot bind value to field")
	// ErrInvalidDelimiter is returned for a delimiter outside the supported set.
	ErrInvalidDelimiter = errors.New("unsupported delimiter")
	// ErrInvalidOptions is returned when the loader options fail validation.
	ErrInvalidOptions = errors.New("invalid loader options")
	// ErrInvalidTarget is returned when the target is neither a Mapper nor a non-nil pointer to struct.
	ErrInvalidTarget = errors.New("target must be a Mapper or a non-nil pointer to struct")
)
