package paymentmethod

import "context"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=paymentmethod
type Repository interface {
	ListPaymentMethods(ctx context.Context, userID int64) ([]*PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, pm *PaymentMethod) error
	SetDefaultPaymentMethod(ctx context.Context, userID, id int64) (*PaymentMethod, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID int64) ([]*PaymentMethod, error) {
	return s.repo.ListPaymentMethods(ctx, userID)
}

func (s *Service) Add(ctx context.Context, pm *PaymentMethod) error {
	return s.repo.CreatePaymentMethod(ctx, pm)
}

func (s *Service) SetDefault(ctx context.Context, userID, id int64) (*PaymentMethod, error) {
	return s.repo.SetDefaultPaymentMethod(ctx, userID, id)
}
