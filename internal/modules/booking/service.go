// README: Booking service implements reservation state transitions and persistence.
package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"motorpool/internal/types"
)

var (
	ErrInvalidState   = errors.New("invalid state transition")
	ErrNotFound       = errors.New("booking not found")
	ErrConflict       = errors.New("booking state conflict")
	ErrCarUnavailable = errors.New("car has a live reservation")
	ErrBadRequest     = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	CarID    types.ID
	UserID   types.ID
	StartsAt time.Time
	EndsAt   time.Time
	Fee      types.Money
}

type StartCommand struct {
	BookingID types.ID
}

type CompleteCommand struct {
	BookingID types.ID
}

type CancelCommand struct {
	BookingID types.ID
	ActorType string
	Reason    string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.CarID == "" || cmd.UserID == "" || !cmd.StartsAt.Before(cmd.EndsAt) {
		return "", ErrBadRequest
	}
	busy, err := s.store.HasActiveByCar(ctx, cmd.CarID)
	if err != nil {
		return "", err
	}
	if busy {
		return "", ErrCarUnavailable
	}

	fee := cmd.Fee
	if fee.Currency == "" {
		fee.Currency = "EUR"
	}

	now := time.Now()
	b := &Booking{
		ID:            types.NewID(),
		CarID:         cmd.CarID,
		UserID:        cmd.UserID,
		Status:        StatusReserved,
		StatusVersion: 0,
		StartsAt:      cmd.StartsAt,
		EndsAt:        cmd.EndsAt,
		Fee:           fee,
		CreatedAt:     now,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return "", err
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: StatusNone,
		ToStatus:   StatusReserved,
		ActorType:  "user",
		ActorID:    &cmd.UserID,
		CreatedAt:  now,
	})
	return b.ID, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Start(ctx context.Context, cmd StartCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusActive, "user")
}

func (s *Service) Complete(ctx context.Context, cmd CompleteCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusCompleted, "user")
}

func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusCancelled, cmd.ActorType)
}

func (s *Service) transition(ctx context.Context, id types.ID, to Status, actorType string) error {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(b.Status, to) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, b.ID, b.Status, to, b.StatusVersion)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   to,
		ActorType:  actorType,
		ActorID:    &b.UserID,
		CreatedAt:  time.Now(),
	})
	return nil
}

// RunExpireTicker periodically expires reservations whose window closed
// before they were started.
func (s *Service) RunExpireTicker(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.store.ExpireOverdue(ctx, time.Now())
			if err != nil {
				log.Printf("booking: expire overdue: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("booking: expired %d overdue reservations", n)
			}
		}
	}
}
