// README: Booking state machine tests (no database required).
package booking

import "testing"

// TestCanTransition verifies the reservation transition table.
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// happy-path forward transitions
		{StatusReserved, StatusActive, true},
		{StatusActive, StatusCompleted, true},
		// cancel only before the rental starts
		{StatusReserved, StatusCancelled, true},
		{StatusActive, StatusCancelled, false},
		// expiry applies to unstarted reservations only
		{StatusReserved, StatusExpired, true},
		{StatusActive, StatusExpired, false},
		// terminal states have no outgoing transitions
		{StatusCompleted, StatusActive, false},
		{StatusCancelled, StatusReserved, false},
		{StatusExpired, StatusReserved, false},
		// skipping states
		{StatusReserved, StatusCompleted, false},
	}
	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		if got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
