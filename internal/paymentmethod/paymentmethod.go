package paymentmethod

import "errors"

var ErrNotFound = errors.New("payment method not found")

// PaymentMethod is a stored card shown in the wallet UI. The closed-loop
// ledger never charges it; it exists so the client can render a funding
// source next to the balance.
type PaymentMethod struct {
	ID         int64
	UserID     int64
	Type       string // visa, mastercard, ...
	Last4      string
	ExpiryDate string
	IsDefault  bool
}
