package subscribers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ziadkadry99/serviqo/internal/db"
)

// ErrInvalidEmail is returned when an address cannot be parsed as a bare
// mailbox.
var ErrInvalidEmail = errors.New("invalid email address")

// DefaultSource is recorded when the caller does not say where the signup
// came from.
const DefaultSource = "footer"

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists newsletter subscribers.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Normalize validates an address and returns its canonical lower-case form.
func Normalize(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return strings.ToLower(addr.Address), nil
}

// Subscribe records an address. created is false when it was already on the
// list.
func (s *Store) Subscribe(ctx context.Context, email, source string) (bool, error) {
	normalized, err := Normalize(email)
	if err != nil {
		return false, err
	}
	if source == "" {
		source = DefaultSource
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO subscribers (id, email, source) VALUES (?, ?, ?)
		ON CONFLICT(email) DO NOTHING`,
		uuid.New().String(), normalized, source,
	)
	if err != nil {
		return false, fmt.Errorf("inserting subscriber: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking subscriber insert: %w", err)
	}
	return n == 1, nil
}

// Unsubscribe removes an address. Removing an unknown address is not an
// error; removed reports whether a row was deleted.
func (s *Store) Unsubscribe(ctx context.Context, email string) (bool, error) {
	normalized, err := Normalize(email)
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM subscribers WHERE email = ?", normalized)
	if err != nil {
		return false, fmt.Errorf("deleting subscriber: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the number of subscribers.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM subscribers").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting subscribers: %w", err)
	}
	return n, nil
}

// List returns subscribers, newest first.
func (s *Store) List(ctx context.Context) ([]Subscriber, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email, source, created_at FROM subscribers
		ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing subscribers: %w", err)
	}
	defer rows.Close()

	var out []Subscriber
	for rows.Next() {
		sub, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sub)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Subscriber, error) {
	var (
		sub Subscriber
		ts  sql.NullString
	)
	if err := sc.Scan(&sub.ID, &sub.Email, &sub.Source, &ts); err != nil {
		return nil, err
	}
	if ts.Valid {
		if t, err := time.Parse(time.DateTime, ts.String); err == nil {
			sub.CreatedAt = t
		} else if t, err := time.Parse(time.RFC3339, ts.String); err == nil {
			sub.CreatedAt = t
		}
	}
	return &sub, nil
}
