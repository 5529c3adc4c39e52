// README: Converts raw Traccar positions into the gateway's stable shape.
package tracking

import "motorpool/internal/traccar"

// normalizePosition flattens a raw provider fix. The resolved timestamp
// prefers the GPS fix time, then the device clock, then the server receipt
// time; a provider may omit any of them.
func normalizePosition(p *traccar.Position) *Position {
	out := &Position{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Speed:     p.Speed,
		Course:    p.Course,
		Address:   p.Address,
	}
	switch {
	case p.FixTime != nil:
		out.FixTime = p.FixTime
	case p.DeviceTime != nil:
		out.FixTime = p.DeviceTime
	default:
		out.FixTime = p.ServerTime
	}
	return out
}
