package services

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/search"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/google/uuid"
)

// UsersAPI is the part of the transport the collection store needs.
type UsersAPI interface {
	ListUsers(ctx context.Context, page int) (models.Page, error)
	CreateUser(ctx context.Context, fields models.UserFields) (models.Created, error)
	UpdateUser(ctx context.Context, id models.ID, fields models.UserFields) error
	DeleteUser(ctx context.Context, id models.ID) error
}

// PageState is a snapshot of the collection store.
//
// Page, PerPage, TotalPages and Total are whatever the server last reported,
// adjusted only by local creates and deletes; they are not recomputed from
// len(Records). Status and LastError describe page fetches only.
type PageState struct {
	Records    []models.User
	Page       int
	PerPage    int
	TotalPages int
	Total      int
	Status     Status
	LastError  string
}

func (p PageState) clone() PageState {
	p.Records = slices.Clone(p.Records)
	if p.Records == nil {
		p.Records = []models.User{}
	}
	return p
}

func (p PageState) indexOf(id models.ID) int {
	return slices.IndexFunc(p.Records, func(u models.User) bool { return u.ID == id })
}

type CollectionStore struct {
	mu     sync.Mutex
	state  PageState
	api    UsersAPI
	logger logging.Logger
	newID  func() models.ID
}

func NewCollectionStore(api UsersAPI, logger logging.Logger) *CollectionStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CollectionStore{
		state: PageState{
			Records:    []models.User{},
			Page:       1,
			PerPage:    6,
			TotalPages: 1,
			Status:     StatusIdle,
		},
		api:    api,
		logger: logger.With("store", "collection"),
		newID:  func() models.ID { return models.ID(uuid.NewString()) },
	}
}

// State returns a copy of the current page; callers may keep or modify it.
func (s *CollectionStore) State() PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Search filters the loaded records by term. See search.Filter.
func (s *CollectionStore) Search(term string) []models.User {
	return search.Filter(s.State().Records, term)
}

// FetchPage loads page n and replaces the records wholesale with the
// server's set, dropping any local-only creates and edits. Metadata fields
// the server leaves out keep their previous values. On failure the records
// stay as they were and the error message is kept in LastError.
func (s *CollectionStore) FetchPage(ctx context.Context, n int) (PageState, error) {
	if n < 1 {
		return s.State(), models.ValidationErrors{{Field: "page", Message: "Page must be a positive integer"}}
	}

	s.mu.Lock()
	s.state.Status = StatusLoading
	s.state.LastError = ""
	s.mu.Unlock()

	p, err := s.api.ListUsers(ctx, n)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		fe := fetchError(err)
		s.state.Status = StatusError
		s.state.LastError = fe.Message
		s.logger.Warn(ctx, "fetch page failed", "page", n, "error", err)
		return s.state.clone(), fe
	}

	records := make([]models.User, 0, len(p.Data))
	seen := make(map[models.ID]struct{}, len(p.Data))
	for _, u := range p.Data {
		if _, dup := seen[u.ID]; dup {
			s.logger.Warn(ctx, "server returned duplicate id, keeping first", "id", u.ID)
			continue
		}
		seen[u.ID] = struct{}{}
		u.Origin = models.OriginServer
		records = append(records, u)
	}

	s.state.Records = records
	s.state.Page = orPrevious(p.Page, s.state.Page)
	s.state.PerPage = orPrevious(p.PerPage, s.state.PerPage)
	s.state.TotalPages = orPrevious(p.TotalPages, s.state.TotalPages)
	s.state.Total = orPrevious(p.Total, s.state.Total)
	s.state.Status = StatusIdle

	s.logger.Debug(ctx, "page loaded", "page", s.state.Page, "records", len(records), "total", s.state.Total)
	return s.state.clone(), nil
}

func orPrevious(v, prev int) int {
	if v == 0 {
		return prev
	}
	return v
}

// CreateUser sends fields to the server and prepends the resulting user.
// The server-assigned id is used when present and not already on the page;
// otherwise a UUID is generated. Total grows by one, Page and TotalPages are
// left alone.
func (s *CollectionStore) CreateUser(ctx context.Context, fields models.UserFields) (models.User, error) {
	if err := fields.Validate(); err != nil {
		return models.User{}, err
	}

	created, err := s.api.CreateUser(ctx, fields)
	if err != nil {
		s.logger.Warn(ctx, "create user failed", "error", err)
		return models.User{}, writeError(err, "Create failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := created.ID
	if id == "" || s.state.indexOf(id) >= 0 {
		id = s.newID()
	}
	u := models.NewLocalUser(id, fields)

	s.state.Records = slices.Insert(s.state.Records, 0, u)
	s.state.Total++

	s.logger.Debug(ctx, "user created locally", "id", id)
	return u, nil
}

// UpdateUser sends the new fields and, on success, rewrites the matching
// record in place. An id that is not on the loaded page is not added; the
// merged user is still returned.
func (s *CollectionStore) UpdateUser(ctx context.Context, id models.ID, fields models.UserFields) (models.User, error) {
	if id == "" {
		return models.User{}, models.ValidationErrors{{Field: "id", Message: "User id required"}}
	}
	if err := fields.Validate(); err != nil {
		return models.User{}, err
	}

	if err := s.api.UpdateUser(ctx, id, fields); err != nil {
		s.logger.Warn(ctx, "update user failed", "id", id, "error", err)
		return models.User{}, writeError(err, "Update failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.NewLocalUser(id, fields)
	if i := s.state.indexOf(id); i >= 0 {
		s.state.Records[i] = u
	} else {
		s.logger.Debug(ctx, "updated user not on loaded page", "id", id)
	}
	return u, nil
}

// DeleteUser asks the server to delete id and removes the matching record.
// Total shrinks by one, never below zero, and only when a record was
// actually removed.
func (s *CollectionStore) DeleteUser(ctx context.Context, id models.ID) error {
	if id == "" {
		return models.ValidationErrors{{Field: "id", Message: "User id required"}}
	}

	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.logger.Warn(ctx, "delete user failed", "id", id, "error", err)
		return writeError(err, "Delete failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.indexOf(id)
	if i < 0 {
		return nil
	}
	s.state.Records = slices.Delete(s.state.Records, i, i+1)
	s.state.Total = max(0, s.state.Total-1)
	return nil
}
