package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jarvish-app/jarvish/internal/message"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateMessage(ctx context.Context, m *message.Message) error {
	query := `
		INSERT INTO messages (user_id, content, type, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, m.UserID, m.Content, m.Type).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating message: %w", err)
	}

	return nil
}

func (s *Store) ListMessages(ctx context.Context, userID int64, limit int) ([]*message.Message, error) {
	query := `
		SELECT id, user_id, content, type, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	args := []any{userID}

	if limit > 0 {
		query += " LIMIT $2"

		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var msgs []*message.Message

	for rows.Next() {
		var (
			m       message.Message
			roleStr string
		)

		if err := rows.Scan(&m.ID, &m.UserID, &m.Content, &roleStr, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}

		m.Type = message.Role(roleStr)

		msgs = append(msgs, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating message rows: %w", err)
	}

	return msgs, nil
}
