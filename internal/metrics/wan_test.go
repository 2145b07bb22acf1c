package metrics

import "testing"

func TestWanStabilizationDownDominates(t *testing.T) {
	h := NewWanHistory()
	h.Push(WanOK)
	h.Push(WanDegraded)
	h.Push(WanDown)
	if got := h.Stabilized(); got != WanDown {
		t.Fatalf("Stabilized() = %v, want DOWN", got)
	}
}

func TestWanStabilizationPlurality(t *testing.T) {
	h := NewWanHistory()
	h.Push(WanOK)
	h.Push(WanOK)
	h.Push(WanDegraded)
	if got := h.Stabilized(); got != WanOK {
		t.Fatalf("Stabilized() = %v, want OK", got)
	}
}

func TestWanStabilizationSingleObservation(t *testing.T) {
	h := NewWanHistory()
	h.Push(WanDegraded)
	if got := h.Stabilized(); got != WanDegraded {
		t.Fatalf("Stabilized() = %v, want DEGRADED", got)
	}
}

func TestWanStabilizationDownDominatesRegardlessOfPlurality(t *testing.T) {
	h := NewWanHistory()
	h.Push(WanOK)
	h.Push(WanOK)
	h.Push(WanDown)
	if got := h.Stabilized(); got != WanDown {
		t.Fatalf("Stabilized() = %v, want DOWN even though OK is the plurality", got)
	}
}
