package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorKindInvalidKey       ErrorKind = "invalid_key"
	ErrorKindSourceRead       ErrorKind = "source_read"
	ErrorKindDecode           ErrorKind = "decode"
	ErrorKindSynthesis        ErrorKind = "synthesis"
	ErrorKindDestinationWrite ErrorKind = "destination_write"
)

// ConversionError tags a failure with the pipeline stage it came from, so
// callers can tell a missing source object from a synthesis rejection without
// parsing log output.
type ConversionError struct {
	Kind ErrorKind
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func NewInvalidKeyError(key string) error {
	return &ConversionError{
		Kind: ErrorKindInvalidKey,
		Err:  fmt.Errorf("key %q does not end with %s", key, TextKeySuffix),
	}
}

func NewSourceReadError(err error) error {
	return &ConversionError{Kind: ErrorKindSourceRead, Err: err}
}

func NewDecodeError(err error) error {
	return &ConversionError{Kind: ErrorKindDecode, Err: err}
}

func NewSynthesisError(err error) error {
	return &ConversionError{Kind: ErrorKindSynthesis, Err: err}
}

func NewDestinationWriteError(err error) error {
	return &ConversionError{Kind: ErrorKindDestinationWrite, Err: err}
}

// KindOf returns the stage tag of err, or an empty kind for untagged errors.
func KindOf(err error) ErrorKind {
	var conversionErr *ConversionError
	if errors.As(err, &conversionErr) {
		return conversionErr.Kind
	}

	return ""
}
