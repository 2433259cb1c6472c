package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

var ErrNotFound = errors.New("task not found")

// Type identifies what kind of work a task represents.
type Type string

const (
	TypeFood          Type = "food"
	TypeTicket        Type = "ticket"
	TypeTrain         Type = "train"
	TypeWeather       Type = "weather"
	TypeNews          Type = "news"
	TypeDictionary    Type = "dictionary"
	TypeCurrency      Type = "currency"
	TypeEntertainment Type = "entertainment"
	TypeEncyclopedia  Type = "wikipedia"
	TypeVideo         Type = "youtube"
)

// Status is the lifecycle state of a task. Which statuses are legal depends
// on the task type: food runs pending→confirmed→delivered, movie tickets
// select→confirmed, trains pending→confirmed→boarding, and informational
// tasks stay at display forever. Any payable task can end at cancelled.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSelect    Status = "select"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusDelivered Status = "delivered"
	StatusBoarding  Status = "boarding"
	StatusDisplay   Status = "display"
)

// AwaitingConfirmation returns the status a task of the given type must be
// in before it may be confirmed, or false for display-only types.
func AwaitingConfirmation(t Type) (Status, bool) {
	switch t {
	case TypeFood, TypeTrain:
		return StatusPending, true
	case TypeTicket:
		return StatusSelect, true
	default:
		return "", false
	}
}

// Task is one stateful unit of work owned by a user. The store treats the
// payload as opaque; only the settlement engine and the handlers interpret it.
type Task struct {
	ID        int64
	UserID    int64
	Type      Type
	Status    Status
	Payload   Payload
	CreatedAt time.Time
}

// Ref identifies a task either by its row id or by the client-facing payload
// id (e.g. "food-3f9c..."). The confirm/cancel endpoints accept both.
type Ref struct {
	ID        int64
	PayloadID string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		id, err := n.Int64()
		if err != nil {
			return fmt.Errorf("invalid task id %q", n)
		}

		*r = Ref{ID: id}

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("task id must be a number or string")
	}

	// Numeric strings count as row ids too.
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		*r = Ref{ID: id}
		return nil
	}

	*r = Ref{PayloadID: s}

	return nil
}
