package metrics

import (
	"os"
	"strconv"
	"strings"
	"time"

	psnet "github.com/shirou/gopsutil/v3/net"
)

type netSample struct {
	bytes uint64
	at    time.Time
}

// NetSampler computes the Mbps throughput for each configured
// interface since the previous sample. gopsutil's per-NIC IO counters
// are tried first; sysfs is the fallback path when that fails.
type NetSampler struct {
	prev map[string]netSample
}

func NewNetSampler() *NetSampler {
	return &NetSampler{prev: make(map[string]netSample)}
}

// Sample returns the Mbps rate for iface since the last call, or 0 on
// the first call for that interface.
func (s *NetSampler) Sample(iface string) float64 {
	bytes, ok := s.readBytesGopsutil(iface)
	if !ok {
		bytes, ok = s.readBytesSysfs(iface)
		if !ok {
			return 0
		}
	}
	now := time.Now()
	prev, had := s.prev[iface]
	s.prev[iface] = netSample{bytes: bytes, at: now}
	if !had {
		return 0
	}
	dt := now.Sub(prev.at).Seconds()
	if dt <= 0 || bytes < prev.bytes {
		return 0
	}
	deltaBytes := bytes - prev.bytes
	return float64(deltaBytes) * 8 / (dt * 1e6)
}

func (s *NetSampler) readBytesGopsutil(iface string) (uint64, bool) {
	counters, err := psnet.IOCounters(true)
	if err != nil {
		return 0, false
	}
	for _, c := range counters {
		if c.Name == iface {
			return c.BytesRecv + c.BytesSent, true
		}
	}
	return 0, false
}

func (s *NetSampler) readBytesSysfs(iface string) (uint64, bool) {
	rx, okRx := readSysfsUint("/sys/class/net/" + iface + "/statistics/rx_bytes")
	tx, okTx := readSysfsUint("/sys/class/net/" + iface + "/statistics/tx_bytes")
	if !okRx || !okTx {
		return 0, false
	}
	return rx + tx, true
}

func readSysfsUint(path string) (uint64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
