// Package prefs stores per-visitor key/value preferences in SQLite.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/serviqo/internal/db"
)

// Store provides CRUD operations for visitor preferences.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get returns the value stored under key for the client. found is false when
// the key has never been set.
func (s *Store) Get(ctx context.Context, clientID, key string) (value string, found bool, err error) {
	err = s.db.QueryRowContext(ctx,
		"SELECT value FROM preferences WHERE client_id = ? AND key = ?",
		clientID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces the value stored under key for the client.
func (s *Store) Set(ctx context.Context, clientID, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (client_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT(client_id, key) DO UPDATE SET value = excluded.value, updated_at = datetime('now')`,
		clientID, key, value,
	)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

// Delete removes the key for the client. Deleting a missing key is not an
// error.
func (s *Store) Delete(ctx context.Context, clientID, key string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM preferences WHERE client_id = ? AND key = ?",
		clientID, key,
	); err != nil {
		return fmt.Errorf("deleting preference %s: %w", key, err)
	}
	return nil
}

// Slot binds the store to one client so it can back a theme.Resolver.
func (s *Store) Slot(ctx context.Context, clientID string) *Slot {
	return &Slot{store: s, ctx: ctx, clientID: clientID}
}

// Slot is a single client's view of the store. It satisfies theme.Storage.
type Slot struct {
	store    *Store
	ctx      context.Context
	clientID string
}

// Load returns the stored value, or "" when the key is unset.
func (sl *Slot) Load(key string) (string, error) {
	v, _, err := sl.store.Get(sl.ctx, sl.clientID, key)
	return v, err
}

// Save writes the value under key.
func (sl *Slot) Save(key, value string) error {
	return sl.store.Set(sl.ctx, sl.clientID, key, value)
}
