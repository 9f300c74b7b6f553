package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for a missing mandatory field.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrUnavailable       = errors.New("unavailable")
	ErrFetch             = errors.New("fetch failed")
	ErrMalformedResponse = errors.New("malformed organization response")
	ErrEmptyDomain       = errors.New("domain must not be empty")
	ErrBusy              = errors.New("a lookup is already in progress")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FetchError reports a metadata response with a non-success status code.
// Err is the sentinel the status maps to (ErrNotFound, ErrUnavailable or
// ErrFetch). Detail carries the server's own error summary when it sent one.
type FetchError struct {
	StatusCode int
	// Status is the reason phrase, e.g. "Not Found".
	Status     string
	Detail     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Detail != "" {
		return "Failed to fetch: " + e.Status + ": " + e.Detail
	}
	return "Failed to fetch: " + e.Status
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
