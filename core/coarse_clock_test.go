package core

import (
	"testing"
	"time"
)

func TestCoarseNow(t *testing.T) {
	StartCoarseClock()
	// Let the refresh ticker fire at least once
	time.Sleep(2 * time.Millisecond)

	got := CoarseNow()
	diff := time.Since(got)
	if diff < 0 {
		diff = -diff
	}

	// Cached time must track real time within a few refresh intervals
	if diff > 5*time.Millisecond {
		t.Errorf("CoarseNow() lags time.Now() by %v", diff)
	}
}

func TestStartCoarseClockIdempotent(t *testing.T) {
	StartCoarseClock()
	StartCoarseClock()
	StartCoarseClock()

	if CoarseNow().IsZero() {
		t.Error("CoarseNow() returned zero time after repeated StartCoarseClock calls")
	}
}
