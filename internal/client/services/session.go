package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// Authenticator is the part of the transport the session store needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenSlot is the durable persistence slot for the session.
type TokenSlot interface {
	Get(ctx context.Context) (token, email string, err error)
	Set(ctx context.Context, token, email string) error
	Clear(ctx context.Context) error
}

// SessionState is a snapshot of the session store.
//
// Token is non-empty exactly when the session is authenticated. Status and
// LastError describe the most recent login request only.
type SessionState struct {
	Token           string
	Status          Status
	LastError       string
	RememberedEmail string
}

type SessionStore struct {
	mu     sync.Mutex
	state  SessionState
	auth   Authenticator
	slot   TokenSlot
	logger logging.Logger
}

// NewSessionStore builds a store and loads any token left in the slot. A
// stored token is trusted as is; it is not re-validated against the server.
func NewSessionStore(ctx context.Context, auth Authenticator, slot TokenSlot, logger logging.Logger) (*SessionStore, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	token, email, err := slot.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session slot: %w", err)
	}

	s := &SessionStore{
		state: SessionState{
			Token:           token,
			Status:          StatusIdle,
			RememberedEmail: email,
		},
		auth:   auth,
		slot:   slot,
		logger: logger.With("store", "session"),
	}
	s.logger.Debug(ctx, "session restored", "authenticated", token != "")
	return s, nil
}

// Login exchanges credentials for a token. On success the token is kept in
// memory and written to the slot; with remember set the email is stored too,
// otherwise any remembered email is forgotten. On failure the store moves to
// StatusError and a previously held token is left alone.
//
// Inputs are not validated here; the caller rejects empty fields.
func (s *SessionStore) Login(ctx context.Context, email, password string, remember bool) (string, error) {
	s.mu.Lock()
	s.state.Status = StatusPending
	s.state.LastError = ""
	s.mu.Unlock()

	token, err := s.auth.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		ae := authError(err)
		s.state.Status = StatusError
		s.state.LastError = ae.Message
		s.logger.Warn(ctx, "login failed", "error", err)
		return "", ae
	}

	remembered := ""
	if remember {
		remembered = email
	}
	if err := s.slot.Set(ctx, token, remembered); err != nil {
		s.logger.Error(ctx, "persist session token", "error", err)
	}

	s.state.Token = token
	s.state.RememberedEmail = remembered
	s.state.Status = StatusIdle
	s.logger.Info(ctx, "logged in")
	return token, nil
}

// Logout drops the token from memory and from the slot. It never fails; a
// slot error is only logged.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Token = ""
	if err := s.slot.Clear(ctx); err != nil {
		s.logger.Error(ctx, "clear session token", "error", err)
	}
	s.logger.Info(ctx, "logged out")
}

func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *SessionStore) Authenticated() bool {
	return s.State().Token != ""
}

func (s *SessionStore) RememberedEmail() string {
	return s.State().RememberedEmail
}
