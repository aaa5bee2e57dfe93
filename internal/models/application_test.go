package models

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusPending, StatusReviewed, true},
		{StatusPending, StatusShortlisted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusHired, true},
		{StatusPending, StatusPending, false},
		{StatusReviewed, StatusShortlisted, true},
		{StatusReviewed, StatusRejected, true},
		{StatusReviewed, StatusHired, true},
		{StatusReviewed, StatusReviewed, false},
		{StatusRejected, StatusReviewed, false},
		{StatusRejected, StatusHired, false},
		{StatusHired, StatusRejected, false},
		{StatusHired, StatusShortlisted, false},
		{StatusPending, "archived", false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
