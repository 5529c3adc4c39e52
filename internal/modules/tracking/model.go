// README: Tracking status taxonomy and response shapes.
package tracking

import (
	"time"

	"motorpool/internal/modules/car"
	"motorpool/internal/types"
)

// Status is the closed outcome taxonomy of the tracking gateway. Exactly one
// status is attached to every single-car result and to every per-car entry
// of a fleet result.
type Status string

const (
	StatusOK             Status = "ok"
	StatusNoFixYet       Status = "no_fix_yet"
	StatusNotMapped      Status = "not_mapped"
	StatusDeviceNotFound Status = "device_not_found"
	StatusCarNotFound    Status = "car_not_found"
	StatusNotConfigured  Status = "traccar_not_configured"
	StatusTraccarError   Status = "traccar_error"
	StatusRateLimited    Status = "rate_limited"
)

// Position is the only position shape that leaves the gateway; raw Traccar
// shapes never escape. FixTime is the resolved timestamp (fix time, falling
// back to device time, then server time).
type Position struct {
	Latitude  float64    `json:"lat"`
	Longitude float64    `json:"lon"`
	Speed     *float64   `json:"speed,omitempty"`
	Course    *float64   `json:"course,omitempty"`
	FixTime   *time.Time `json:"fix_time,omitempty"`
	Address   string     `json:"address,omitempty"`
}

// CarSummary is the slice of the registry record exposed to tracking callers.
type CarSummary struct {
	ID              types.ID `json:"id"`
	Name            string   `json:"name"`
	Plate           *string  `json:"plate,omitempty"`
	TraccarDeviceID *int64   `json:"traccar_device_id,omitempty"`
	TraccarUniqueID *string  `json:"traccar_unique_id,omitempty"`
}

type CarResult struct {
	Status           Status      `json:"status"`
	Car              *CarSummary `json:"car"`
	Position         *Position   `json:"position,omitempty"`
	PollAfterSeconds int         `json:"poll_after_seconds"`
}

type FleetEntry struct {
	Car      CarSummary `json:"car"`
	Status   Status     `json:"status"`
	Position *Position  `json:"position,omitempty"`
}

type FleetResult struct {
	Status           Status       `json:"status"`
	Cars             []FleetEntry `json:"cars"`
	PollAfterSeconds int          `json:"poll_after_seconds"`
}

func summarize(c *car.Car) *CarSummary {
	return &CarSummary{
		ID:              c.ID,
		Name:            c.Name,
		Plate:           c.Plate,
		TraccarDeviceID: c.TraccarDeviceID,
		TraccarUniqueID: c.TraccarUniqueID,
	}
}
