// Package metrics implements the background pollers that sample host
// telemetry, WAN reachability, and an optional game-server player
// count, publishing atomic snapshots for the render loop to consume.
package metrics

// Snapshot is the value type published by the main poller. Every field
// is produced together under one lock so a reader never observes a mix
// of fields from two different poller iterations.
type Snapshot struct {
	CPUPct        float64
	MemPct        float64
	MemUsedMB     int
	TempC         float64
	Net1Mbps      float64
	Net2Mbps      float64
	UptimeSec     int
	DockerRunning int // -1 = unknown
	DiskPct       int // -1 = unknown, else 0..100
	WGPeers       int // -1 = unknown
	MCOnline      int // -1 = unknown
	MCMax         int // -1 = unknown
}

// WanStatus is the stabilized WAN reachability classification.
type WanStatus int

const (
	WanChecking WanStatus = iota
	WanOK
	WanDegraded
	WanDown
)

func (s WanStatus) String() string {
	switch s {
	case WanOK:
		return "OK"
	case WanDegraded:
		return "DEGRADED"
	case WanDown:
		return "DOWN"
	default:
		return "CHECKING"
	}
}
