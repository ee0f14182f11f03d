package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// fakeAPI implements Authenticator and UsersAPI for store tests.
type fakeAPI struct {
	mu sync.Mutex

	LoginToken string
	LoginErr   error

	Pages   map[int]models.Page
	ListErr error

	CreatedID models.ID
	CreateErr error
	UpdateErr error
	DeleteErr error

	// gates, when set for a page, block ListUsers until closed.
	gates map[int]chan struct{}

	calls []string
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.record("login " + email)
	return f.LoginToken, f.LoginErr
}

func (f *fakeAPI) ListUsers(ctx context.Context, page int) (models.Page, error) {
	f.record(fmt.Sprintf("list %d", page))

	f.mu.Lock()
	gate := f.gates[page]
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return models.Page{}, ctx.Err()
		}
	}

	if f.ListErr != nil {
		return models.Page{}, f.ListErr
	}
	p := f.Pages[page]
	p.Data = append([]models.User(nil), p.Data...)
	return p, nil
}

func (f *fakeAPI) CreateUser(ctx context.Context, fields models.UserFields) (models.Created, error) {
	f.record("create " + fields.Email)
	if f.CreateErr != nil {
		return models.Created{}, f.CreateErr
	}
	return models.Created{ID: f.CreatedID}, nil
}

func (f *fakeAPI) UpdateUser(ctx context.Context, id models.ID, fields models.UserFields) error {
	f.record("update " + id.String())
	return f.UpdateErr
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id models.ID) error {
	f.record("delete " + id.String())
	return f.DeleteErr
}

type memorySlot struct {
	token, email string
	getErr       error
	setErr       error
	clearErr     error
}

func (m *memorySlot) Get(ctx context.Context) (string, string, error) {
	return m.token, m.email, m.getErr
}

func (m *memorySlot) Set(ctx context.Context, token, email string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.token, m.email = token, email
	return nil
}

func (m *memorySlot) Clear(ctx context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.token = ""
	return nil
}

func user(id, first string) models.User {
	return models.User{
		ID: models.ID(id),
		UserFields: models.UserFields{
			FirstName: first,
			LastName:  "Test",
			Email:     first + "@reqres.in",
			AvatarURL: "https://reqres.in/img/faces/" + id + "-image.jpg",
		},
		Origin: models.OriginServer,
	}
}

func fields(first string) models.UserFields {
	return models.UserFields{
		FirstName: first,
		LastName:  "Local",
		Email:     first + "@example.com",
		AvatarURL: "https://example.com/" + first + ".png",
	}
}

func ids(us []models.User) []models.ID {
	out := make([]models.ID, 0, len(us))
	for _, u := range us {
		out = append(out, u.ID)
	}
	return out
}
