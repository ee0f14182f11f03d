package metadata

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/dbx"
)

// SessionSlot is the durable persistence slot of the session store. It
// keeps the token and, optionally, the email that logged in.
type SessionSlot struct {
	db *sql.DB
}

func NewSessionSlot(db *sql.DB) *SessionSlot {
	return &SessionSlot{db: db}
}

// Get returns the stored token and email; empty strings mean absent.
func (s *SessionSlot) Get(ctx context.Context) (token, email string, err error) {
	repo := NewSQLiteRepository(s.db)

	t, err := repo.Get(ctx, common.MetadataKeyToken)
	if err != nil {
		return "", "", err
	}
	e, err := repo.Get(ctx, common.MetadataKeyEmail)
	if err != nil {
		return "", "", err
	}
	return string(t), string(e), nil
}

// Set stores the token. A non-empty email is stored alongside it; an empty
// one removes any previously remembered email. Both writes share one
// transaction.
func (s *SessionSlot) Set(ctx context.Context, token, email string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.MetadataKeyToken, []byte(token)); err != nil {
			return err
		}
		if email == "" {
			return repo.Delete(ctx, common.MetadataKeyEmail)
		}
		return repo.Set(ctx, common.MetadataKeyEmail, []byte(email))
	})
}

// Clear removes the token. The remembered email is kept so the next login
// prompt can offer it.
func (s *SessionSlot) Clear(ctx context.Context) error {
	return NewSQLiteRepository(s.db).Delete(ctx, common.MetadataKeyToken)
}
