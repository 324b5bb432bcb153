package models

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to BookingStatus
	}{
		{BookingPending, BookingConfirmed},
		{BookingPending, BookingRejected},
		{BookingPending, BookingCancelled},
		{BookingConfirmed, BookingUpcoming},
		{BookingConfirmed, BookingCancelled},
		{BookingUpcoming, BookingCompleted},
		{BookingUpcoming, BookingCancelled},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to BookingStatus
	}{
		{BookingPending, BookingUpcoming},
		{BookingPending, BookingCompleted},
		{BookingConfirmed, BookingPending},
		{BookingConfirmed, BookingRejected},
		{BookingConfirmed, BookingCompleted},
		{BookingUpcoming, BookingConfirmed},
		{BookingCompleted, BookingCancelled},
		{BookingCancelled, BookingPending},
		{BookingRejected, BookingConfirmed},
		{BookingPending, BookingStatus("paused")},
		{BookingStatus("paused"), BookingPending},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	for _, s := range []BookingStatus{BookingCompleted, BookingCancelled, BookingRejected} {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingUpcoming} {
		if s.IsTerminal() {
			t.Errorf("expected %s not to be terminal", s)
		}
	}
}

func TestBookingStatusCountsTowardOccupancy(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingUpcoming, BookingCompleted} {
		if !s.CountsTowardOccupancy() {
			t.Errorf("expected %s to hold its slots", s)
		}
	}
	for _, s := range []BookingStatus{BookingCancelled, BookingRejected} {
		if s.CountsTowardOccupancy() {
			t.Errorf("expected %s to free its slots", s)
		}
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "upcoming", "completed", "cancelled", "rejected"} {
		if _, ok := ParseBookingStatus(s); !ok {
			t.Errorf("expected %q to parse", s)
		}
	}
	for _, s := range []string{"", "Pending", "CANCELED", "done"} {
		if _, ok := ParseBookingStatus(s); ok {
			t.Errorf("expected %q not to parse", s)
		}
	}
}

func TestSlotKeys(t *testing.T) {
	keys := SlotKeys([]SlotRange{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "14:30", EndTime: "15:00"},
	})
	want := []string{"09:00-10:00", "14:30-15:00"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: got %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	if got := WeekdayOf(0); got != Sunday {
		t.Errorf("weekday 0: got %s, want %s", got, Sunday)
	}
	if got := WeekdayOf(6); got != Saturday {
		t.Errorf("weekday 6: got %s, want %s", got, Saturday)
	}
}
