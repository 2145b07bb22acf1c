package metrics

import (
	"os/exec"
	"strings"
	"time"

	"github.com/go-ping/ping"
)

var wanPingTargets = []string{"1.1.1.1", "8.8.8.8"}

// hasDefaultRoute checks for a default route the way the reference
// implementation does, by inspecting "ip route show default".
func hasDefaultRoute() bool {
	out, err := exec.Command("ip", "route", "show", "default").Output()
	if err != nil {
		return false
	}
	return strings.Contains(string(out), "default via")
}

// pingRTT pings host once with the given timeout and returns the RTT,
// or ok=false on any failure.
func pingRTT(host string, timeout time.Duration) (time.Duration, bool) {
	pinger, err := ping.NewPinger(host)
	if err != nil {
		return 0, false
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(true)
	if err := pinger.Run(); err != nil {
		return 0, false
	}
	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return 0, false
	}
	return stats.AvgRtt, true
}

// classifyWAN runs one raw observation: no route or all targets
// failing to reply is DOWN; a reply over the RTT threshold is
// DEGRADED; otherwise OK.
func classifyWAN(rttThreshold time.Duration, pingTimeout time.Duration) WanStatus {
	if !hasDefaultRoute() {
		return WanDown
	}
	for _, target := range wanPingTargets {
		if rtt, ok := pingRTT(target, pingTimeout); ok {
			if rtt > rttThreshold {
				return WanDegraded
			}
			return WanOK
		}
	}
	return WanDown
}

// WanHistory is a small ring of raw WAN observations that
// Stabilized reduces per the DOWN-dominates-else-plurality rule.
type WanHistory struct {
	capacity int
	obs      []WanStatus
}

// NewWanHistory returns a history ring of the reference capacity (3).
func NewWanHistory() *WanHistory {
	return &WanHistory{capacity: 3}
}

// Push appends a raw observation, dropping the oldest if at capacity.
func (h *WanHistory) Push(s WanStatus) {
	if len(h.obs) < h.capacity {
		h.obs = append(h.obs, s)
		return
	}
	copy(h.obs, h.obs[1:])
	h.obs[len(h.obs)-1] = s
}

// Stabilized reduces the ring: if any observation is DOWN, DOWN wins
// outright regardless of plurality; otherwise the most frequent
// observation wins; a ring of size 1 returns it directly.
func (h *WanHistory) Stabilized() WanStatus {
	if len(h.obs) == 0 {
		return WanChecking
	}
	if len(h.obs) == 1 {
		return h.obs[0]
	}
	counts := map[WanStatus]int{}
	for _, o := range h.obs {
		if o == WanDown {
			return WanDown
		}
		counts[o]++
	}
	best := h.obs[0]
	bestCount := 0
	for s, c := range counts {
		if c > bestCount {
			best, bestCount = s, c
		}
	}
	return best
}
