package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailTaken  = errors.New("email already registered")
	ErrBadPassword = errors.New("invalid email or password")
)

// User is an account holder. Each user owns exactly one wallet plus any
// number of tasks, transactions and chat messages.
type User struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	Password    string // bcrypt hash
	Preferences Preferences
	CreatedAt   time.Time
}

// Preferences is the free-form settings blob attached to a user. The
// settlement engine reads AutoPayment to decide whether auto top-up is
// enabled account-wide.
type Preferences struct {
	AutoPayment bool `json:"autoPayment,omitempty"`
}
