// README: Car registry service (validation over the store).
package car

import (
	"context"
	"errors"

	"motorpool/internal/types"
)

var (
	ErrNotFound   = errors.New("car not found")
	ErrBadRequest = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	Name            string
	Plate           *string
	TraccarDeviceID *int64
	TraccarUniqueID *string
}

type LinkCommand struct {
	CarID           types.ID
	TraccarDeviceID *int64
	TraccarUniqueID *string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.Name == "" {
		return "", ErrBadRequest
	}
	c := &Car{
		ID:              types.NewID(),
		Name:            cmd.Name,
		Plate:           cmd.Plate,
		TraccarDeviceID: cmd.TraccarDeviceID,
		TraccarUniqueID: cmd.TraccarUniqueID,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Car, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Car, error) {
	return s.store.List(ctx)
}

func (s *Service) ListMapped(ctx context.Context) ([]Car, error) {
	return s.store.ListMapped(ctx)
}

// SetTraccarLink updates the car ↔ provider-device mapping.
func (s *Service) SetTraccarLink(ctx context.Context, cmd LinkCommand) error {
	ok, err := s.store.UpdateTraccarLink(ctx, cmd.CarID, cmd.TraccarDeviceID, cmd.TraccarUniqueID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
