package message

import "context"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=message
type Repository interface {
	CreateMessage(ctx context.Context, m *Message) error
	ListMessages(ctx context.Context, userID int64, limit int) ([]*Message, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Append(ctx context.Context, userID int64, role Role, content string) (*Message, error) {
	m := &Message{
		UserID:  userID,
		Content: content,
		Type:    role,
	}
	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// History returns the transcript oldest-first. limit <= 0 means no limit.
func (s *Service) History(ctx context.Context, userID int64, limit int) ([]*Message, error) {
	return s.repo.ListMessages(ctx, userID, limit)
}
