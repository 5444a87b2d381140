package fiterrors

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// StatusError pairs a Status with a wrapped cause, so a failure deep in
// a recursive wire-parser frame (e.g. a bad field nested inside a
// vendor's product's part) can be traced back through the error chain
// without losing the stable status code a caller switches on. Built on
// the sentinel-error-plus-wrapping idiom, using pkg/errors wrapping for
// the longer chains a recursive parse produces.
type StatusError struct {
	Status Status
	cause  error
}

func (e *StatusError) Error() string {
	if e.cause == nil {
		return e.Status.String()
	}
	return e.Status.String() + ": " + e.cause.Error()
}

func (e *StatusError) Unwrap() error {
	return e.cause
}

// New returns a StatusError with no wrapped cause.
func New(status Status) error {
	return &StatusError{Status: status}
}

// Wrap annotates cause with status, preserving the original error in the
// chain (via Unwrap) so errors.Is/As keep working. StatusError has no
// Cause method, so pkg/errors.Cause stops at the StatusError itself.
func Wrap(status Status, cause error) error {
	if cause == nil {
		return New(status)
	}
	return &StatusError{Status: status, cause: errors.WithStack(cause)}
}

// StatusOf extracts the Status from err, defaulting to Error if err does
// not wrap a StatusError.
func StatusOf(err error) Status {
	if err == nil {
		return OK
	}
	var se *StatusError
	if stderrors.As(err, &se) {
		return se.Status
	}
	return Error
}
