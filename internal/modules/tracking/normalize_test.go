// README: Position normalizer tests, mainly the timestamp preference chain.
package tracking

import (
	"testing"
	"time"

	"motorpool/internal/traccar"
)

func timePtr(t time.Time) *time.Time { return &t }
func floatPtr(v float64) *float64 { return &v }

func TestNormalizeTimestampPreference(t *testing.T) {
	fix := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	device := fix.Add(2 * time.Second)
	server := fix.Add(5 * time.Second)

	cases := []struct {
		name string
		in   traccar.Position
		want *time.Time
	}{
		{"fix time wins", traccar.Position{FixTime: timePtr(fix), DeviceTime: timePtr(device), ServerTime: timePtr(server)}, timePtr(fix)},
		{"device time when fix absent", traccar.Position{DeviceTime: timePtr(device), ServerTime: timePtr(server)}, timePtr(device)},
		{"server time when both absent", traccar.Position{ServerTime: timePtr(server)}, timePtr(server)},
		{"nothing when all absent", traccar.Position{}, nil},
	}
	for _, tc := range cases {
		got := normalizePosition(&tc.in)
		switch {
		case tc.want == nil && got.FixTime != nil:
			t.Errorf("%s: expected nil timestamp, got %v", tc.name, got.FixTime)
		case tc.want != nil && (got.FixTime == nil || !got.FixTime.Equal(*tc.want)):
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got.FixTime)
		}
	}
}

func TestNormalizeCarriesOptionalFields(t *testing.T) {
	in := &traccar.Position{
		Latitude:  51.5,
		Longitude: -0.12,
		Speed:     floatPtr(10),
		Address:   "1 Main St",
	}
	got := normalizePosition(in)

	if got.Latitude != 51.5 || got.Longitude != -0.12 {
		t.Errorf("unexpected coordinates: %+v", got)
	}
	if got.Speed == nil || *got.Speed != 10 {
		t.Errorf("expected speed 10, got %v", got.Speed)
	}
	if got.Course != nil {
		t.Errorf("expected absent course, got %v", *got.Course)
	}
	if got.Address != "1 Main St" {
		t.Errorf("expected address passthrough, got %q", got.Address)
	}
}
