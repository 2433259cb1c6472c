package wallet

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Type is the business reason for a ledger entry.
type Type string

const (
	TypeFood    Type = "food"
	TypeTicket  Type = "ticket"
	TypeTrain   Type = "train"
	TypeTopUp   Type = "topup"
	TypePayment Type = "payment"
)

// Transaction is one immutable entry in a user's ledger. A negative amount
// is a debit (payment), a positive amount a credit (top-up). The wallet
// balance must equal the sum of all transaction amounts at any point in time.
type Transaction struct {
	ID          int64
	UserID      int64
	Amount      decimal.Decimal
	Description string
	Type        Type
	CreatedAt   time.Time
}
