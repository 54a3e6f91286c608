package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when no content is supplied on a path where
	// content is mandatory (the markup entry point).
	ErrEmptyInput = errors.New("empty input")
)

// MalformedDocumentError indicates the input could not be tokenized into the
// expected structural shape at all. It wraps the underlying syntax error for
// diagnostics. Anomalies short of this (missing fields, unknown records,
// non-numeric amounts) are absorbed via defaults and unknown-tag tracking
// and never raised as errors.
type MalformedDocumentError struct {
	Format string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed %s document", e.Format)
	}
	return fmt.Sprintf("malformed %s document: %v", e.Format, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// NewMalformedDocumentError creates a MalformedDocumentError for format,
// wrapping cause.
func NewMalformedDocumentError(format string, cause error) *MalformedDocumentError {
	return &MalformedDocumentError{Format: format, Err: cause}
}

// IsMalformedDocument reports whether err is a MalformedDocumentError.
func IsMalformedDocument(err error) bool {
	var target *MalformedDocumentError
	return errors.As(err, &target)
}
