package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedConversion means the format pair is absent from the
	// catalog, disabled for the required direction, or claimed by no family.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	// ErrDecode means the input bytes are malformed for their declared format.
	ErrDecode = errors.New("malformed input")
	// ErrNotImplemented means the family owns the pair but has no handler yet.
	ErrNotImplemented = errors.New("conversion not implemented")
	// ErrUnsupportedPixelFormat means the source and target pixel models
	// cannot be bridged.
	ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")
)

// ConversionError wraps an internal converter failure with the family that
// produced it. Callers receive either a result or exactly one typed error.
type ConversionError struct {
	Family string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s conversion failed: %v", e.Family, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
