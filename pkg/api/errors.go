package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials is a rejected login exchange (a 400-class
	// response), as opposed to a transport failure
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized is a 401/403 response from any endpoint. It is the
	// canonical trigger for the session gate's redirect to the login route.
	ErrUnauthorized = errors.New("authorization denied")

	// ErrNotFound is a 404 response for a record id the server no longer has
	ErrNotFound = errors.New("not found")
)

// ValidationError carries per-field messages from a rejected create, update
// or register request
type ValidationError struct {
	Fields map[string][]string
}

// Error joins every reported field as "field: message" pairs so no
// field-level error is silently dropped
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	return strings.Join(parts, "; ")
}

// StatusError is a non-2xx response that carries no field-level detail
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// IsUnauthorized reports whether err is an authorization-denied response
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound reports whether err is a missing-record response
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
