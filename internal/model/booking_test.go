package model

import (
	"regexp"
	"testing"
)

func TestNewNomorBooking(t *testing.T) {
	pattern := regexp.MustCompile(`^BK\d+$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := NewNomorBooking()
		if !pattern.MatchString(n) {
			t.Fatalf("nomor %q does not match BK\\d+", n)
		}
		seen[n] = true
	}
	// 100 numbers minted back to back should not all collide; the random
	// suffix gives distinct values even within one millisecond.
	if len(seen) < 2 {
		t.Fatalf("expected distinct booking numbers, got %d unique of 100", len(seen))
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusExpired, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusPending, false},
		{StatusExpired, StatusConfirmed, false},
		// setting the same status again is a no-op, not an error
		{StatusPending, StatusPending, true},
		{StatusCancelled, StatusCancelled, true},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v; want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
