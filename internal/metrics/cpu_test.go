package metrics

import "testing"

func TestCPUUsagePctFullyIdle(t *testing.T) {
	prev := cpuSample{total: 1000, idle: 800}
	cur := cpuSample{total: 1100, idle: 900}
	if got := cpuUsagePct(prev, cur); got != 0 {
		t.Fatalf("cpuUsagePct() = %v, want 0", got)
	}
}

func TestCPUUsagePctFullyBusy(t *testing.T) {
	prev := cpuSample{total: 1000, idle: 800}
	cur := cpuSample{total: 1100, idle: 800}
	if got := cpuUsagePct(prev, cur); got != 100 {
		t.Fatalf("cpuUsagePct() = %v, want 100", got)
	}
}

func TestCPUUsagePctZeroTotalDeltaIsZero(t *testing.T) {
	prev := cpuSample{total: 1000, idle: 800}
	cur := cpuSample{total: 1000, idle: 800}
	if got := cpuUsagePct(prev, cur); got != 0 {
		t.Fatalf("cpuUsagePct() = %v, want 0 for a zero delta", got)
	}
}

func TestCPUUsagePctHalfBusy(t *testing.T) {
	prev := cpuSample{total: 1000, idle: 800}
	cur := cpuSample{total: 1200, idle: 900}
	if got := cpuUsagePct(prev, cur); got != 50 {
		t.Fatalf("cpuUsagePct() = %v, want 50", got)
	}
}
