package domain

import "testing"

func TestTripTransitionsLegalEdges(t *testing.T) {
	legal := []struct{ from, to TripStatus }{
		{TripPending, TripAccepted},
		{TripPending, TripCancelled},
		{TripAccepted, TripInProgress},
		{TripAccepted, TripCompleted},
		{TripAccepted, TripCancelled},
		{TripInProgress, TripCompleted},
		{TripInProgress, TripCancelled},
	}
	for _, e := range legal {
		if !CanTransition(e.from, e.to) {
			t.Errorf("expected %s -> %s to be legal", e.from, e.to)
		}
	}
}

func TestTripTransitionsIllegalEdges(t *testing.T) {
	illegal := []struct{ from, to TripStatus }{
		{TripPending, TripInProgress},
		{TripPending, TripCompleted},
		{TripCompleted, TripPending},
		{TripCompleted, TripCompleted},
		{TripCompleted, TripCancelled},
		{TripCancelled, TripAccepted},
		{TripCancelled, TripCancelled},
		{TripAccepted, TripPending},
	}
	for _, e := range illegal {
		if CanTransition(e.from, e.to) {
			t.Errorf("expected %s -> %s to be rejected", e.from, e.to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []TripStatus{TripCompleted, TripCancelled} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []TripStatus{TripPending, TripAccepted, TripInProgress} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestParseTripStatus(t *testing.T) {
	if st, ok := ParseTripStatus("  Accepted "); !ok || st != TripAccepted {
		t.Fatalf("expected Accepted, got %q ok=%v", st, ok)
	}
	if _, ok := ParseTripStatus("Done"); ok {
		t.Fatal("unknown status should not parse")
	}
}

func TestActiveTripStatuses(t *testing.T) {
	active := ActiveTripStatuses()
	if len(active) != 2 || active[0] != TripAccepted || active[1] != TripInProgress {
		t.Fatalf("unexpected active set: %v", active)
	}
}
