package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthError is returned when a login attempt fails.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// FetchError is returned when a page cannot be loaded.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }
func (e *FetchError) Unwrap() error { return e.Err }

// WriteError is returned when a create, update or delete is rejected.
type WriteError struct {
	Message string
	Err     error
}

func (e *WriteError) Error() string { return e.Message }
func (e *WriteError) Unwrap() error { return e.Err }

// statusError is a non-2xx answer. Message is the server's {"error": ...}
// payload, if it sent one.
type statusError struct {
	Code    int
	Message string
}

func (e *statusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("status %d", e.Code)
}

func (e *statusError) Unwrap() error {
	switch {
	case e.Code == http.StatusUnauthorized, e.Code == http.StatusForbidden:
		return ErrUnauthorized
	case e.Code >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return nil
	}
}

// describe turns a round-trip failure into a display message and a cause.
// Transport failures read "Network Error"; HTTP failures use the server's
// payload when present and the status code otherwise.
func describe(err error) (string, error) {
	var se *statusError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message, se
		}
		return fmt.Sprintf("Request failed with status code %d", se.Code), se
	}
	return "Network Error", fmt.Errorf("%w: %w", ErrUnavailable, err)
}
