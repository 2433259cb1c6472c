package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jarvish-app/jarvish/internal/paymentmethod"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListPaymentMethods(ctx context.Context, userID int64) ([]*paymentmethod.PaymentMethod, error) {
	query := `
		SELECT id, user_id, type, last4, expiry_date, is_default
		FROM payment_methods
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing payment methods: %w", err)
	}
	defer rows.Close()

	var methods []*paymentmethod.PaymentMethod

	for rows.Next() {
		var pm paymentmethod.PaymentMethod

		if err := rows.Scan(&pm.ID, &pm.UserID, &pm.Type, &pm.Last4, &pm.ExpiryDate, &pm.IsDefault); err != nil {
			return nil, fmt.Errorf("scanning payment method: %w", err)
		}

		methods = append(methods, &pm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment method rows: %w", err)
	}

	return methods, nil
}

// CreatePaymentMethod inserts a card; when the new card is marked default,
// the previous default is cleared in the same SQL transaction.
func (s *Store) CreatePaymentMethod(ctx context.Context, pm *paymentmethod.PaymentMethod) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if pm.IsDefault {
		clear := `UPDATE payment_methods SET is_default = FALSE WHERE user_id = $1`
		if _, err := dbTx.ExecContext(ctx, clear, pm.UserID); err != nil {
			return fmt.Errorf("clearing default payment method: %w", err)
		}
	}

	insert := `
		INSERT INTO payment_methods (user_id, type, last4, expiry_date, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err = dbTx.QueryRowContext(ctx, insert,
		pm.UserID,
		pm.Type,
		pm.Last4,
		pm.ExpiryDate,
		pm.IsDefault,
	).Scan(&pm.ID)
	if err != nil {
		return fmt.Errorf("creating payment method: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing payment method: %w", err)
	}

	return nil
}

func (s *Store) SetDefaultPaymentMethod(ctx context.Context, userID, id int64) (*paymentmethod.PaymentMethod, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	clear := `UPDATE payment_methods SET is_default = FALSE WHERE user_id = $1`
	if _, err := dbTx.ExecContext(ctx, clear, userID); err != nil {
		return nil, fmt.Errorf("clearing default payment method: %w", err)
	}

	set := `
		UPDATE payment_methods
		SET is_default = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, type, last4, expiry_date, is_default
	`

	var pm paymentmethod.PaymentMethod

	err = dbTx.QueryRowContext(ctx, set, id, userID).
		Scan(&pm.ID, &pm.UserID, &pm.Type, &pm.Last4, &pm.ExpiryDate, &pm.IsDefault)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, paymentmethod.ErrNotFound
		}

		return nil, fmt.Errorf("setting default payment method: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing default payment method: %w", err)
	}

	return &pm, nil
}
