// Package errs defines the sentinel errors shared across toml-to-rdb packages.
//
// Every failure is fatal to the dump pass: callers wrap these with context
// via fmt.Errorf("...: %w", err) and abort, leaving whatever bytes were
// already flushed in the output sink.
package errs

import "errors"

var (
	// ErrMalformedFragment indicates a dispatched text block failed to parse as TOML.
	ErrMalformedFragment = errors.New("fragment is not valid TOML")

	// ErrMissingKey indicates a parsed fragment yields no usable top-level key.
	ErrMissingKey = errors.New("fragment has no top-level key")

	// ErrUnsupportedScalar indicates a value has no defined textual form,
	// e.g. a list or table nested where a scalar is expected.
	ErrUnsupportedScalar = errors.New("value has no scalar text form")

	// ErrInvalidVersion indicates an RDB version outside the four-digit
	// range the header can carry.
	ErrInvalidVersion = errors.New("rdb version must be in [0, 9999]")

	// ErrInvalidCompression indicates an unknown input compression name or type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
