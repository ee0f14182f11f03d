package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSlot_EmptyByDefault(t *testing.T) {
	s := NewSessionSlot(setupDB(t))

	token, email, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, email)
}

func TestSessionSlot_SetGetClear(t *testing.T) {
	db := setupDB(t)
	s := NewSessionSlot(db)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "QpwL5tke4Pnpja7X4", "eve.holt@reqres.in"))

	token, email, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "QpwL5tke4Pnpja7X4", token)
	assert.Equal(t, "eve.holt@reqres.in", email)

	require.NoError(t, s.Clear(ctx))

	token, email, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "eve.holt@reqres.in", email, "email is remembered past logout")
}

func TestSessionSlot_SetWithoutEmailForgetsIt(t *testing.T) {
	s := NewSessionSlot(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "t1", "eve.holt@reqres.in"))
	require.NoError(t, s.Set(ctx, "t2", ""))

	token, email, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", token)
	assert.Empty(t, email)
}

func TestSessionSlot_SetRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk full")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO metadata`).WithArgs(common.MetadataKeyToken, []byte("t")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO metadata`).WithArgs(common.MetadataKeyEmail, []byte("e@x.io")).
		WillReturnError(boom)
	mock.ExpectRollback()

	err = NewSessionSlot(db).Set(context.Background(), "t", "e@x.io")
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
