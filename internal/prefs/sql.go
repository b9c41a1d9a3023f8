package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/mission-control/internal/db"
)

// SQLBackend stores preferences in the SQLite preferences table.
type SQLBackend struct {
	db *db.DB
}

// NewSQLBackend creates a SQLBackend backed by the given database.
func NewSQLBackend(database *db.DB) *SQLBackend {
	return &SQLBackend{db: database}
}

func (s *SQLBackend) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE client_id = ? AND key = ?`,
		clientID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLBackend) Set(ctx context.Context, clientID, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (client_id, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(client_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		clientID, key, value)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

func (s *SQLBackend) Remove(ctx context.Context, clientID, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE client_id = ? AND key = ?`,
		clientID, key)
	if err != nil {
		return fmt.Errorf("removing preference %s: %w", key, err)
	}
	return nil
}

func (s *SQLBackend) List(ctx context.Context, clientID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM preferences WHERE client_id = ? ORDER BY key`,
		clientID)
	if err != nil {
		return nil, fmt.Errorf("listing preferences: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (s *SQLBackend) Clear(ctx context.Context, clientID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE client_id = ?`, clientID); err != nil {
		return fmt.Errorf("clearing preferences: %w", err)
	}
	return nil
}
