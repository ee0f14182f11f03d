package client

import (
	"context"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// Client is the transport contract consumed by the session and collection
// stores. Implementations must honor context cancellation.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context, page int) (models.Page, error)
	CreateUser(ctx context.Context, fields models.UserFields) (models.Created, error)
	UpdateUser(ctx context.Context, id models.ID, fields models.UserFields) error
	DeleteUser(ctx context.Context, id models.ID) error
}
