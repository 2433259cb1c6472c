package task

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=task
type Repository interface {
	CreateTask(ctx context.Context, t *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	GetTaskByPayloadID(ctx context.Context, userID int64, payloadID string) (*Task, error)
	ListTasks(ctx context.Context, userID int64) ([]*Task, error)

	// UpdateStatus changes only the status column. Transition legality is the
	// settlement engine's responsibility, not the store's.
	UpdateStatus(ctx context.Context, id int64, status Status) (*Task, error)
	UpdatePayload(ctx context.Context, id int64, payload Payload) error
	DeleteTask(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create materializes a new task for the user. The initial status comes from
// the payload's lifecycle (pending/select for payable types, display for
// informational ones).
func (s *Service) Create(ctx context.Context, userID int64, status Status, payload Payload) (*Task, error) {
	payload.SetStatus(status)

	t := &Task{
		UserID:  userID,
		Type:    payload.Kind(),
		Status:  status,
		Payload: payload,
	}
	if err := s.repo.CreateTask(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]*Task, error) {
	return s.repo.ListTasks(ctx, userID)
}

// Find resolves a task reference (row id or payload id) for the given user.
func (s *Service) Find(ctx context.Context, userID int64, ref Ref) (*Task, error) {
	if ref.ID != 0 {
		t, err := s.repo.GetTask(ctx, ref.ID)
		if err != nil {
			return nil, err
		}

		if t.UserID != userID {
			return nil, ErrNotFound
		}

		return t, nil
	}

	return s.repo.GetTaskByPayloadID(ctx, userID, ref.PayloadID)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) (*Task, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) UpdatePayload(ctx context.Context, id int64, payload Payload) error {
	return s.repo.UpdatePayload(ctx, id, payload)
}

// Delete removes a task. Deleting a task that no longer exists is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTask(ctx, id)
}
