package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jarvish-app/jarvish/internal/task"
	"github.com/jarvish-app/jarvish/internal/user"
	"github.com/jarvish-app/jarvish/internal/wallet"
)

var (
	// ErrNotPayable means the task carries no amount owed (display types, or a
	// payable task with a zero total).
	ErrNotPayable = errors.New("task is not payable")

	// ErrNotConfirmable means the task is not in its awaiting-confirmation
	// status. Re-confirming an already confirmed task would double-charge the
	// wallet, so it is rejected here.
	ErrNotConfirmable = errors.New("task cannot be confirmed in its current status")
)

// topUpIncrement is the auto top-up quantum: credits are applied in $50
// steps, rounded up to cover the shortfall.
var topUpIncrement = decimal.NewFromInt(50)

// TopUpAmount returns the auto top-up credit for a given shortfall.
func TopUpAmount(shortfall decimal.Decimal) decimal.Decimal {
	return shortfall.Div(topUpIncrement).Ceil().Mul(topUpIncrement)
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=settlement
type Ledger interface {
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
	Adjust(ctx context.Context, userID int64, delta decimal.Decimal, description string, txType wallet.Type) (decimal.Decimal, *wallet.Transaction, error)
}

type Tasks interface {
	Find(ctx context.Context, userID int64, ref task.Ref) (*task.Task, error)
	UpdateStatus(ctx context.Context, id int64, status task.Status) (*task.Task, error)
	UpdatePayload(ctx context.Context, id int64, payload task.Payload) error
}

type Users interface {
	Get(ctx context.Context, id int64) (*user.User, error)
}

// Service settles payable tasks against the wallet ledger. The balance
// check followed by the debit is a check-then-act sequence, so all settlement
// for one user runs under that user's lock.
type Service struct {
	ledger Ledger
	tasks  Tasks
	users  Users

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewService(ledger Ledger, tasks Tasks, users Users) *Service {
	return &Service{
		ledger: ledger,
		tasks:  tasks,
		users:  users,
		locks:  make(map[int64]*sync.Mutex),
	}
}

func (s *Service) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}

	return l
}

// Confirmation is the result of a successful confirm.
type Confirmation struct {
	Task             *task.Task
	Transaction      *wallet.Transaction
	TopUp            *wallet.Transaction // nil unless auto top-up was applied
	Balance          decimal.Decimal
	Message          string
	AutoTopUpApplied bool
}

// Confirm settles a payable task: it checks the balance, applies auto top-up
// if enabled and needed, debits the total, and transitions the task to
// confirmed. autoTopUp is the client-declared intent; the stored user
// preference enables auto top-up as well.
func (s *Service) Confirm(ctx context.Context, userID int64, ref task.Ref, autoTopUp bool) (*Confirmation, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	t, err := s.tasks.Find(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	want, ok := task.AwaitingConfirmation(t.Type)
	if !ok {
		return nil, ErrNotPayable
	}

	payable, ok := t.Payload.(task.Payable)
	if !ok {
		return nil, ErrNotPayable
	}

	total := payable.TotalAmount()
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNotPayable
	}

	if t.Status != want {
		return nil, ErrNotConfirmable
	}

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	var topUp *wallet.Transaction

	if balance.LessThan(total) {
		enabled := autoTopUp

		if u, err := s.users.Get(ctx, userID); err == nil && u.Preferences.AutoPayment {
			enabled = true
		}

		if !enabled {
			return nil, wallet.ErrInsufficientFunds
		}

		amount := TopUpAmount(total.Sub(balance))

		balance, topUp, err = s.ledger.Adjust(ctx, userID, amount, "Auto Top-up", wallet.TypeTopUp)
		if err != nil {
			return nil, err
		}

		slog.Info("auto top-up applied", "user", userID, "task", t.ID, "amount", amount)
	}

	description, txType := debitDetails(t.Payload)

	newBalance, entry, err := s.ledger.Adjust(ctx, userID, total.Neg(), description, txType)
	if err != nil {
		return nil, err
	}

	updated, err := s.tasks.UpdateStatus(ctx, t.ID, task.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	msg, err := s.finalizePayload(ctx, updated)
	if err != nil {
		return nil, err
	}

	if topUp != nil {
		msg = fmt.Sprintf("Auto top-up applied: $%s added to your wallet. %s",
			topUp.Amount.StringFixed(2), msg)
	}

	return &Confirmation{
		Task:             updated,
		Transaction:      entry,
		TopUp:            topUp,
		Balance:          newBalance,
		Message:          msg,
		AutoTopUpApplied: topUp != nil,
	}, nil
}

// debitDetails returns the ledger description and transaction type for a
// payable task.
func debitDetails(p task.Payload) (string, wallet.Type) {
	switch p := p.(type) {
	case *task.FoodOrder:
		return p.Restaurant, wallet.TypeFood
	case *task.TrainTicket:
		return p.TrainName, wallet.TypeTrain
	default:
		return "Movie Tickets", wallet.TypeTicket
	}
}

// finalizePayload attaches type-specific confirmation fields (order number
// for food; trains already carry a PNR) and returns the confirmation message.
func (s *Service) finalizePayload(ctx context.Context, t *task.Task) (string, error) {
	switch p := t.Payload.(type) {
	case *task.FoodOrder:
		if p.OrderNumber == "" {
			p.OrderNumber = fmt.Sprintf("PZ%05d", 10000+rand.Intn(90000))

			if err := s.tasks.UpdatePayload(ctx, t.ID, p); err != nil {
				return "", err
			}
		}

		return fmt.Sprintf("Your food order from %s has been confirmed and will be delivered in %s.",
			p.Restaurant, p.DeliveryTime), nil
	case *task.TrainTicket:
		return fmt.Sprintf("Your train ticket for %s from %s to %s has been confirmed. PNR: %s",
			p.TrainName, p.From, p.To, p.PNR), nil
	case *task.TicketBooking:
		return fmt.Sprintf("Your tickets for %s at %s have been booked for %s.",
			p.Options.Movie, p.Venue, p.Options.Time), nil
	default:
		return "Your order has been confirmed.", nil
	}
}

// Cancel transitions a task to cancelled. It is unconditional: any existing
// task may be cancelled regardless of status, and the ledger is never touched.
// It still runs under the user's lock so a cancel cannot slip between an
// in-flight confirm's status check and its debit.
func (s *Service) Cancel(ctx context.Context, userID int64, ref task.Ref) (*task.Task, string, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	t, err := s.tasks.Find(ctx, userID, ref)
	if err != nil {
		return nil, "", err
	}

	updated, err := s.tasks.UpdateStatus(ctx, t.ID, task.StatusCancelled)
	if err != nil {
		return nil, "", err
	}

	var msg string

	switch p := updated.Payload.(type) {
	case *task.FoodOrder:
		msg = fmt.Sprintf("Your food order from %s has been cancelled.", p.Restaurant)
	case *task.TrainTicket:
		msg = fmt.Sprintf("Your train booking for %s from %s to %s has been cancelled.",
			p.TrainName, p.From, p.To)
	case *task.TicketBooking:
		msg = fmt.Sprintf("Your ticket booking for %s has been cancelled.", p.Options.Movie)
	default:
		msg = "Your task has been cancelled."
	}

	return updated, msg, nil
}

// Payment is the result of a direct payment outside the task flow.
type Payment struct {
	Transaction      *wallet.Transaction
	TopUp            *wallet.Transaction
	Balance          decimal.Decimal
	AutoTopUpApplied bool
}

// ProcessPayment settles a payment that is not tied to a task, using the same
// auto top-up quantization rule as task confirmation.
func (s *Service) ProcessPayment(ctx context.Context, userID int64, amount decimal.Decimal, description string, autoTopUp bool) (*Payment, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	amount = amount.Abs()

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	var topUp *wallet.Transaction

	if balance.LessThan(amount) {
		if !autoTopUp {
			return nil, wallet.ErrInsufficientFunds
		}

		credit := TopUpAmount(amount.Sub(balance))

		_, topUp, err = s.ledger.Adjust(ctx, userID, credit, "Auto Top-up", wallet.TypeTopUp)
		if err != nil {
			return nil, err
		}

		slog.Info("auto top-up applied", "user", userID, "amount", credit)
	}

	newBalance, entry, err := s.ledger.Adjust(ctx, userID, amount.Neg(), description, paymentType(description))
	if err != nil {
		return nil, err
	}

	return &Payment{
		Transaction:      entry,
		TopUp:            topUp,
		Balance:          newBalance,
		AutoTopUpApplied: topUp != nil,
	}, nil
}

// paymentType guesses the transaction type from the payment description.
func paymentType(description string) wallet.Type {
	d := strings.ToLower(description)

	switch {
	case strings.Contains(d, "pizza"), strings.Contains(d, "burger"), strings.Contains(d, "restaurant"):
		return wallet.TypeFood
	case strings.Contains(d, "movie"), strings.Contains(d, "ticket"):
		return wallet.TypeTicket
	default:
		return wallet.TypePayment
	}
}
