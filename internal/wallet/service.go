package wallet

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=wallet
type Repository interface {
	// Balance returns the current balance, zero if the user has no wallet row yet.
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)

	// Adjust appends a transaction with amount=delta and moves the balance by
	// the same delta in one atomic unit. It must never leave a transaction
	// without the matching balance change or vice versa.
	Adjust(ctx context.Context, userID int64, delta decimal.Decimal, description string, txType Type) (decimal.Decimal, *Transaction, error)

	// Transactions lists entries most-recent-first. limit <= 0 means no limit.
	Transactions(ctx context.Context, userID int64, limit int) ([]*Transaction, error)
}

// Service is the only component allowed to mutate a user's balance. Policy
// decisions (blocking on insufficient funds, auto top-up) live in the
// settlement engine; the ledger itself accepts any delta, including one that
// drives the balance negative.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return s.repo.Balance(ctx, userID)
}

func (s *Service) Adjust(ctx context.Context, userID int64, delta decimal.Decimal, description string, txType Type) (decimal.Decimal, *Transaction, error) {
	return s.repo.Adjust(ctx, userID, delta, description, txType)
}

func (s *Service) Transactions(ctx context.Context, userID int64, limit int) ([]*Transaction, error) {
	return s.repo.Transactions(ctx, userID, limit)
}

// AddFunds credits the wallet with a manual top-up.
func (s *Service) AddFunds(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, *Transaction, error) {
	return s.repo.Adjust(ctx, userID, amount, "Added Funds", TypeTopUp)
}
