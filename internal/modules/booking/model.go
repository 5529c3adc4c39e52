// README: Booking aggregate and reservation status flow.
package booking

import (
	"time"

	"motorpool/internal/types"
)

type Status string

const (
	StatusNone      Status = "none"
	StatusReserved  Status = "reserved"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

type Booking struct {
	ID            types.ID
	CarID         types.ID
	UserID        types.ID
	Status        Status
	StatusVersion int
	StartsAt      time.Time
	EndsAt        time.Time
	Fee           types.Money
	CreatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time
	CancelReason  *string
}

type Event struct {
	ID         int64
	BookingID  types.ID
	FromStatus Status
	ToStatus   Status
	ActorType  string
	ActorID    *types.ID
	CreatedAt  time.Time
}

// AllowedTransitions represents the reservation lifecycle as code.
var AllowedTransitions = map[Status][]Status{
	StatusReserved: {StatusActive, StatusCancelled, StatusExpired},
	StatusActive:   {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
