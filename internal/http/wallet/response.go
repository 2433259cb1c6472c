package wallet

import (
	"time"

	"github.com/jarvish-app/jarvish/internal/wallet"
)

// TransactionResponse mirrors a ledger entry with the amount as a plain JSON
// number the client can render directly.
type TransactionResponse struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userId"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Type        wallet.Type `json:"type"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func ToTransaction(t *wallet.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}

	return &TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.Amount.InexactFloat64(),
		Description: t.Description,
		Type:        t.Type,
		CreatedAt:   t.CreatedAt,
	}
}

func ToTransactions(ts []*wallet.Transaction) []*TransactionResponse {
	out := make([]*TransactionResponse, len(ts))

	for i, t := range ts {
		out[i] = ToTransaction(t)
	}

	return out
}

// WalletResponse is the balance plus recent activity block embedded in
// several endpoint responses.
type WalletResponse struct {
	Balance      float64                `json:"balance"`
	Transactions []*TransactionResponse `json:"transactions"`
}
