package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/mission-control/internal/db"
)

func setupSQL(t *testing.T) *SQLBackend {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewSQLBackend(database)
}

func setupSQLMock(t *testing.T) (*SQLBackend, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return NewSQLBackend(db.Wrap(sqlDB)), mock
}

func TestSQLBackendUpsert(t *testing.T) {
	b := setupSQL(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "c1", KeyTheme, "dark"))
	require.NoError(t, b.Set(ctx, "c1", KeyTheme, "light"))

	v, ok, err := b.Get(ctx, "c1", KeyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", v)

	all, err := b.List(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLBackendMissingKey(t *testing.T) {
	b := setupSQL(t)

	v, ok, err := b.Get(context.Background(), "c1", KeyAuth)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLBackendRemoveAndClear(t *testing.T) {
	b := setupSQL(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "c1", KeyAuth, AuthMarker))
	require.NoError(t, b.Set(ctx, "c1", KeyTheme, "light"))
	require.NoError(t, b.Set(ctx, "c2", KeyTheme, "dark"))

	require.NoError(t, b.Remove(ctx, "c1", KeyAuth))
	_, ok, err := b.Get(ctx, "c1", KeyAuth)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Clear(ctx, "c1"))
	all, err := b.List(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, all)

	other, err := b.List(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyTheme: "dark"}, other)
}

func TestSQLBackendGetError(t *testing.T) {
	b, mock := setupSQLMock(t)

	mock.ExpectQuery("SELECT value FROM preferences").
		WithArgs("c1", KeyTheme).
		WillReturnError(errors.New("database is locked"))

	_, ok, err := b.Get(context.Background(), "c1", KeyTheme)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreOverFailingSQL(t *testing.T) {
	b, mock := setupSQLMock(t)
	s := NewStore(b, "c1", nil)

	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("c1", KeyAuth, AuthMarker).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectQuery("SELECT value FROM preferences").
		WithArgs("c1", KeyAuth).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectExec("DELETE FROM preferences").
		WithArgs("c1", KeyAuth).
		WillReturnError(errors.New("disk I/O error"))

	s.Set(KeyAuth, AuthMarker)
	_, ok := s.Get(KeyAuth)
	assert.False(t, ok, "unreadable flag must read as absent")
	s.Remove(KeyAuth)

	assert.NoError(t, mock.ExpectationsWereMet())
}
