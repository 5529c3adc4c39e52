// README: Raw Traccar wire shapes for devices and positions.
package traccar

import "time"

// Device is a Traccar device record. PositionID is zero until the device has
// reported at least one fix; Traccar serialises the absent pointer as 0.
type Device struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	UniqueID   string `json:"uniqueId"`
	Status     string `json:"status"`
	PositionID int64  `json:"positionId"`
}

// Position is a single GPS fix as reported by Traccar. Latitude and
// longitude are always present; every other field is provider-optional.
type Position struct {
	ID         int64      `json:"id"`
	DeviceID   int64      `json:"deviceId"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Speed      *float64   `json:"speed"`
	Course     *float64   `json:"course"`
	FixTime    *time.Time `json:"fixTime"`
	DeviceTime *time.Time `json:"deviceTime"`
	ServerTime *time.Time `json:"serverTime"`
	Address    string     `json:"address"`
}
