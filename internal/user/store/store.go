package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jarvish-app/jarvish/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	prefs, err := json.Marshal(u.Preferences)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	query := `
		INSERT INTO users (first_name, last_name, email, password, preferences, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		prefs,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password, preferences, created_at
		FROM users
		WHERE id = $1
	`

	return scanUser(s.db.QueryRowContext(ctx, query, id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password, preferences, created_at
		FROM users
		WHERE email = $1
	`

	return scanUser(s.db.QueryRowContext(ctx, query, email))
}

func scanUser(row *sql.Row) (*user.User, error) {
	var (
		u     user.User
		prefs []byte
	)

	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &prefs, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &u.Preferences); err != nil {
			return nil, fmt.Errorf("decoding preferences: %w", err)
		}
	}

	return &u, nil
}
