package idle

import "testing"

func TestBecomesIdleAfterThreshold(t *testing.T) {
	c := New()
	idleMetrics := Metrics{CPUPct: 1, TempC: 30, Net1: 0, Net2: 0}

	// The first low-activity update only starts the timer, so 30 updates
	// of 1s leave 29s elapsed.
	for i := 0; i < 30; i++ {
		c.Update(idleMetrics, 1.0)
	}
	if c.IsIdle() {
		t.Fatalf("became idle before the 30s threshold elapsed")
	}
	c.Update(idleMetrics, 2.0)
	if !c.IsIdle() {
		t.Fatalf("expected idle after exceeding threshold")
	}
}

func TestActivityResetsTimer(t *testing.T) {
	c := New()
	idleMetrics := Metrics{CPUPct: 1, TempC: 30}
	busyMetrics := Metrics{CPUPct: 90, TempC: 30}

	for i := 0; i < 25; i++ {
		c.Update(idleMetrics, 1.0)
	}
	c.Update(busyMetrics, 1.0)
	if c.IsIdle() {
		t.Fatalf("activity should reset idle state")
	}
	c.Update(idleMetrics, 5.0)
	if c.IsIdle() {
		t.Fatalf("timer should have restarted from zero after activity")
	}
}

func TestTransitionProgressConvergesAndClamps(t *testing.T) {
	c := New()
	idleMetrics := Metrics{CPUPct: 0, TempC: 20}
	for i := 0; i < 40; i++ {
		c.Update(idleMetrics, 1.0)
	}
	p := c.TransitionProgress()
	if p < 0 || p > 1 {
		t.Fatalf("transition progress out of range: %v", p)
	}
	if p < 0.9 {
		t.Fatalf("expected progress to have converged near 1, got %v", p)
	}
}
