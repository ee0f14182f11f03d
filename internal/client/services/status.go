// Package services holds the two stores of the userdesk client: the session
// store, which owns the authentication token, and the collection store,
// which owns the currently loaded page of users.
//
// Both stores are plain values built by the application and shared by
// reference; nothing here is global. Each operation marks its pending state,
// releases the store lock while the transport call is in flight, and applies
// the settlement under the lock again. Overlapping page fetches are not
// fenced: whichever settles last wins. The stores add no timeouts of their
// own; bound a request with the context passed in.
package services

import (
	"errors"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
)

// Status describes the request a store is tracking.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
)

func authError(err error) *client.AuthError {
	var ae *client.AuthError
	if errors.As(err, &ae) {
		return ae
	}
	return &client.AuthError{Message: "Login failed", Err: err}
}

func fetchError(err error) *client.FetchError {
	var fe *client.FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &client.FetchError{Message: "Failed to load users", Err: err}
}

func writeError(err error, fallback string) *client.WriteError {
	var we *client.WriteError
	if errors.As(err, &we) {
		return we
	}
	return &client.WriteError{Message: fallback, Err: err}
}
