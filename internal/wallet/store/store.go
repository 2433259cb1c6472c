package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jarvish-app/jarvish/internal/wallet"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	query := `SELECT balance FROM wallets WHERE user_id = $1`

	var raw string

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err != nil {
		// A user without a wallet row has an implicit zero balance.
		if err == sql.ErrNoRows {
			return decimal.Zero, nil
		}

		return decimal.Zero, fmt.Errorf("getting balance: %w", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing balance: %w", err)
	}

	return balance, nil
}

// Adjust appends a ledger entry and moves the wallet balance in a single SQL
// transaction. The wallet row is locked for the duration so concurrent
// adjustments for the same user serialize at the database.
func (s *Store) Adjust(ctx context.Context, userID int64, delta decimal.Decimal, description string, txType wallet.Type) (decimal.Decimal, *wallet.Transaction, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	upsert := `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance
		RETURNING balance
	`

	var raw string
	if err := dbTx.QueryRowContext(ctx, upsert, userID, delta.String()).Scan(&raw); err != nil {
		return decimal.Zero, nil, fmt.Errorf("adjusting balance: %w", err)
	}

	newBalance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("parsing balance: %w", err)
	}

	entry := &wallet.Transaction{
		UserID:      userID,
		Amount:      delta,
		Description: description,
		Type:        txType,
	}

	insert := `
		INSERT INTO transactions (user_id, amount, description, type, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, insert,
		userID,
		delta.String(),
		description,
		txType,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("creating transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return decimal.Zero, nil, fmt.Errorf("committing adjustment: %w", err)
	}

	return newBalance, entry, nil
}

func (s *Store) Transactions(ctx context.Context, userID int64, limit int) ([]*wallet.Transaction, error) {
	query := `
		SELECT id, user_id, amount, description, type, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	args := []any{userID}

	if limit > 0 {
		query += " LIMIT $2"

		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*wallet.Transaction

	for rows.Next() {
		var (
			tx      wallet.Transaction
			raw     string
			typeStr string
		)

		if err := rows.Scan(&tx.ID, &tx.UserID, &raw, &tx.Description, &typeStr, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		tx.Amount, err = decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing amount: %w", err)
		}

		tx.Type = wallet.Type(typeStr)

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}
