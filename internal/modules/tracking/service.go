// README: Tracking gateway service: rate limit → resolve → classify, plus fleet aggregation.
package tracking

import (
	"context"
	"errors"
	"log"
	"time"

	"motorpool/internal/modules/car"
	"motorpool/internal/traccar"
	"motorpool/internal/types"
)

// Registry is the slice of the car module the gateway reads.
type Registry interface {
	Get(ctx context.Context, id types.ID) (*car.Car, error)
	ListMapped(ctx context.Context) ([]car.Car, error)
}

// Provider is the telemetry provider boundary. Implementations report
// traccar.ErrNotFound for unknown ids and traccar.ErrNotConfigured when the
// integration is not deployed.
type Provider interface {
	Device(ctx context.Context, id int64) (*traccar.Device, error)
	Position(ctx context.Context, id int64) (*traccar.Position, error)
}

// Geocoder resolves coordinates to an address; used only when the provider
// returns a fix without one.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

type Service struct {
	cars     Registry
	provider Provider
	limiter  *Limiter
	geocoder Geocoder // nil disables address enrichment
}

func NewService(cars Registry, provider Provider, limiter *Limiter, geocoder Geocoder) *Service {
	return &Service{cars: cars, provider: provider, limiter: limiter, geocoder: geocoder}
}

// PollAfterSeconds is the minimum poll interval advertised in every response.
func (s *Service) PollAfterSeconds() int {
	return s.limiter.PollAfterSeconds()
}

// CarPosition handles a single-car tracking request. Every outcome,
// including failures, lands in the result's Status; the returned error is
// reserved for registry faults the taxonomy does not cover.
func (s *Service) CarPosition(ctx context.Context, callerID string, carID types.ID) (CarResult, error) {
	res := CarResult{PollAfterSeconds: s.limiter.PollAfterSeconds()}

	// The rate limit is checked before the car lookup so a throttled caller
	// never costs a registry read.
	admitted, err := s.limiter.Admit(ctx, callerID, ScopeCar(carID), time.Now())
	if err != nil {
		log.Printf("tracking: rate-limit ledger for car %s: %v", carID, err)
		res.Status = StatusTraccarError
		return res, nil
	}
	if !admitted {
		res.Status = StatusRateLimited
		return res, nil
	}

	c, err := s.cars.Get(ctx, carID)
	if errors.Is(err, car.ErrNotFound) {
		res.Status = StatusCarNotFound
		return res, nil
	}
	if err != nil {
		return CarResult{}, err
	}
	res.Car = summarize(c)

	status, pos, err := s.resolve(ctx, c)
	if err != nil {
		res.Status = s.classify(c.ID, err)
		return res, nil
	}
	res.Status = status
	res.Position = pos
	return res, nil
}

// Fleet resolves the latest position of every mapped car. Per-car failures
// are isolated into that car's entry; a misconfigured integration aborts the
// whole batch since it would fail every car identically.
func (s *Service) Fleet(ctx context.Context, callerID string) (FleetResult, error) {
	res := FleetResult{Cars: []FleetEntry{}, PollAfterSeconds: s.limiter.PollAfterSeconds()}

	admitted, err := s.limiter.Admit(ctx, callerID, ScopeFleet, time.Now())
	if err != nil {
		log.Printf("tracking: rate-limit ledger for fleet: %v", err)
		res.Status = StatusTraccarError
		return res, nil
	}
	if !admitted {
		res.Status = StatusRateLimited
		return res, nil
	}

	cars, err := s.cars.ListMapped(ctx)
	if err != nil {
		return FleetResult{}, err
	}

	for i := range cars {
		c := &cars[i]
		entry := FleetEntry{Car: *summarize(c)}
		status, pos, err := s.resolve(ctx, c)
		switch {
		case errors.Is(err, traccar.ErrNotConfigured):
			res.Status = StatusNotConfigured
			res.Cars = []FleetEntry{}
			return res, nil
		case err != nil:
			log.Printf("tracking: resolve car %s: %v", c.ID, err)
			entry.Status = StatusTraccarError
		default:
			entry.Status = status
			entry.Position = pos
		}
		res.Cars = append(res.Cars, entry)
	}
	// A fully processed batch is ok even when individual entries failed;
	// callers read per-car statuses for the detail.
	res.Status = StatusOK
	return res, nil
}

// resolve walks car → device → latest position, stopping at the first
// terminal condition. Provider contact failures come back as errors so the
// caller can tell "Traccar said no" from "Traccar was unreachable".
func (s *Service) resolve(ctx context.Context, c *car.Car) (Status, *Position, error) {
	if c.TraccarDeviceID == nil {
		return StatusNotMapped, nil, nil
	}
	dev, err := s.provider.Device(ctx, *c.TraccarDeviceID)
	if errors.Is(err, traccar.ErrNotFound) {
		// A device id Traccar no longer recognises is an expected mismatch,
		// not a system error.
		return StatusDeviceNotFound, nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	if dev.PositionID == 0 {
		return StatusNoFixYet, nil, nil
	}
	raw, err := s.provider.Position(ctx, dev.PositionID)
	if errors.Is(err, traccar.ErrNotFound) {
		// Device metadata can race position storage; treat like no fix.
		return StatusNoFixYet, nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	pos := normalizePosition(raw)
	if pos.Address == "" && s.geocoder != nil {
		// Best effort: a geocoder failure never degrades the tracking status.
		if addr, err := s.geocoder.ReverseGeocode(ctx, pos.Latitude, pos.Longitude); err == nil {
			pos.Address = addr
		}
	}
	return StatusOK, pos, nil
}

func (s *Service) classify(carID types.ID, err error) Status {
	if errors.Is(err, traccar.ErrNotConfigured) {
		// Deployment state, not an outage; surfaced distinctly and not
		// logged as an error.
		return StatusNotConfigured
	}
	log.Printf("tracking: resolve car %s: %v", carID, err)
	return StatusTraccarError
}
