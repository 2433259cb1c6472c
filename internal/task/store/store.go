package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jarvish-app/jarvish/internal/task"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTask reads a task row and decodes its payload into the concrete type.
// Expected column order: id, user_id, type, status, data, created_at
func scanTask(s scanner) (*task.Task, error) {
	var (
		t       task.Task
		typeStr string
		status  string
		data    []byte
	)

	if err := s.Scan(&t.ID, &t.UserID, &typeStr, &status, &data, &t.CreatedAt); err != nil {
		return nil, err
	}

	t.Type = task.Type(typeStr)
	t.Status = task.Status(status)

	payload, err := task.UnmarshalPayload(t.Type, data)
	if err != nil {
		return nil, err
	}

	t.Payload = payload

	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, t *task.Task) error {
	data, err := json.Marshal(t.Payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	query := `
		INSERT INTO tasks (user_id, type, status, data, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		t.UserID,
		t.Type,
		t.Status,
		data,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}

	return nil
}

func (s *Store) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	query := `
		SELECT id, user_id, type, status, data, created_at
		FROM tasks
		WHERE id = $1
	`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, task.ErrNotFound
		}

		return nil, fmt.Errorf("getting task: %w", err)
	}

	return t, nil
}

func (s *Store) GetTaskByPayloadID(ctx context.Context, userID int64, payloadID string) (*task.Task, error) {
	query := `
		SELECT id, user_id, type, status, data, created_at
		FROM tasks
		WHERE user_id = $1 AND data->>'id' = $2
	`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, userID, payloadID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, task.ErrNotFound
		}

		return nil, fmt.Errorf("getting task by payload id: %w", err)
	}

	return t, nil
}

func (s *Store) ListTasks(ctx context.Context, userID int64) ([]*task.Task, error) {
	query := `
		SELECT id, user_id, type, status, data, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}

		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}

	return tasks, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status task.Status) (*task.Task, error) {
	query := `
		UPDATE tasks
		SET status = $1, data = jsonb_set(data, '{status}', to_jsonb($1::text))
		WHERE id = $2
		RETURNING id, user_id, type, status, data, created_at
	`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, status, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, task.ErrNotFound
		}

		return nil, fmt.Errorf("updating task status: %w", err)
	}

	return t, nil
}

func (s *Store) UpdatePayload(ctx context.Context, id int64, payload task.Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	query := `UPDATE tasks SET data = $1 WHERE id = $2`

	res, err := s.db.ExecContext(ctx, query, data, id)
	if err != nil {
		return fmt.Errorf("updating task payload: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return task.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	return nil
}
