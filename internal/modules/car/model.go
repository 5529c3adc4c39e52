// README: Car record for the fleet registry.
package car

import "motorpool/internal/types"

// Car is a fleet vehicle. A car is mapped to the telemetry provider iff
// TraccarDeviceID is set; TraccarUniqueID (hardware serial / IMEI) alone is
// informational and never constitutes a mapping.
type Car struct {
	ID              types.ID
	Name            string
	Plate           *string
	TraccarDeviceID *int64
	TraccarUniqueID *string
}

func (c *Car) Mapped() bool {
	return c.TraccarDeviceID != nil
}
