package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarvish-app/jarvish/internal/wallet"
	"github.com/jarvish-app/jarvish/internal/wallet/store"
)

func newMockDB(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_Balance_NoWalletRowMeansZero(t *testing.T) {
	s, mock := newMockDB(t)

	mock.ExpectQuery("SELECT balance FROM wallets").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	balance, err := s.Balance(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Adjust_AppendsEntryAndMovesBalance(t *testing.T) {
	s, mock := newMockDB(t)

	createdAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	delta := decimal.RequireFromString("-21.98")

	// The same delta must reach both statements: the balance moves by exactly
	// the amount recorded in the ledger.
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO wallets").
		WithArgs(int64(1), "-21.98").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("28.02"))
	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(int64(1), "-21.98", "Pizza Express", "food").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), createdAt))
	mock.ExpectCommit()

	balance, entry, err := s.Adjust(context.Background(), 1, delta, "Pizza Express", wallet.TypeFood)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("28.02").Equal(balance), "got balance %s", balance)
	assert.Equal(t, int64(11), entry.ID)
	assert.Equal(t, int64(1), entry.UserID)
	assert.True(t, delta.Equal(entry.Amount))
	assert.Equal(t, wallet.TypeFood, entry.Type)
	assert.Equal(t, createdAt, entry.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Adjust_RollsBackWhenEntryInsertFails(t *testing.T) {
	s, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO wallets").
		WithArgs(int64(1), "-21.98").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("28.02"))
	mock.ExpectQuery("INSERT INTO transactions").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, _, err := s.Adjust(context.Background(), 1,
		decimal.RequireFromString("-21.98"), "Pizza Express", wallet.TypeFood)

	// The balance update rolls back with the failed insert; no commit happens.
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Adjust_BalanceTracksLedgerSum(t *testing.T) {
	s, mock := newMockDB(t)

	deltas := []string{"50", "-21.98", "100"}
	running := decimal.Zero

	for i, d := range deltas {
		delta := decimal.RequireFromString(d)
		running = running.Add(delta)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO wallets").
			WithArgs(int64(1), delta.String()).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(running.String()))
		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs(int64(1), delta.String(), "Replay", "topup").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
				AddRow(int64(i+1), time.Now()))
		mock.ExpectCommit()
	}

	var final decimal.Decimal

	for _, d := range deltas {
		balance, _, err := s.Adjust(context.Background(), 1,
			decimal.RequireFromString(d), "Replay", wallet.TypeTopUp)
		require.NoError(t, err)

		final = balance
	}

	// 50 - 21.98 + 100
	assert.True(t, decimal.RequireFromString("128.02").Equal(final), "got balance %s", final)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Transactions_AppliesLimit(t *testing.T) {
	s, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "amount", "description", "type", "created_at"}).
		AddRow(int64(3), int64(1), "50", "Auto Top-up", "topup", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)).
		AddRow(int64(2), int64(1), "-21.98", "Pizza Express", "food", time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC))

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(int64(1), 2).
		WillReturnRows(rows)

	txs, err := s.Transactions(context.Background(), 1, 2)

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, int64(3), txs[0].ID)
	assert.Equal(t, wallet.TypeTopUp, txs[0].Type)
	assert.True(t, decimal.RequireFromString("-21.98").Equal(txs[1].Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}
