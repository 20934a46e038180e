package token

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xJoaG/cpphub-cli/internal/dbx"
)

// Keys used in the state table. credentialKey holds the bearer credential
// itself; savedAtKey is bookkeeping written in the same transaction.
const (
	credentialKey = "credential"
	savedAtKey    = "credential_saved_at"
)

// SQLiteStore persists the credential in the client state table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) set(ctx context.Context, tx dbx.DBTX, key string, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}

// Save overwrites the credential slot. The credential and its timestamp are
// written in one transaction so the slot is always a single whole value.
func (s *SQLiteStore) Save(ctx context.Context, credential string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, credentialKey, credential); err != nil {
			return err
		}
		return s.set(ctx, tx, savedAtKey, time.Now().UTC().Format(time.RFC3339))
	})
}

// Load returns the stored credential, or "" when the slot is empty.
func (s *SQLiteStore) Load(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, credentialKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load credential: %w", err)
	}
	return value, nil
}

// Clear removes the credential and its bookkeeping unconditionally.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM state WHERE key IN (?, ?)`, credentialKey, savedAtKey)
		if err != nil {
			return fmt.Errorf("failed to clear credential: %w", err)
		}
		return nil
	})
}
