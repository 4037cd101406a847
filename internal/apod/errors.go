package apod

import (
	"errors"
	"fmt"
)

// Errors returned before any network call is made.
var (
	ErrDateOutOfRange  = errors.New("date is outside the archive (1995-06-16 .. today)")
	ErrInvalidOrdering = errors.New("start date is after end date")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrUpstream matches any *UpstreamError via errors.Is.
var ErrUpstream = errors.New("apod api request failed")

// UpstreamError wraps a transport, status, or decoding failure from the
// APOD API, keeping the original cause for diagnostics.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("apod api: %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

func upstreamErr(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
