package metrics

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// cpuSample is one reading of /proc/stat's aggregate "cpu" line.
type cpuSample struct {
	total, idle uint64
}

func readCPUSample() (cpuSample, error) {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return cpuSample{}, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}
		fields := strings.Fields(line)[1:]
		var total uint64
		var idle uint64
		for i, s := range fields {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				continue
			}
			total += v
			if i == 3 { // idle field
				idle = v
			}
		}
		return cpuSample{total: total, idle: idle}, nil
	}
	return cpuSample{}, os.ErrNotExist
}

// cpuUsagePct computes the busy-fraction percentage over the delta
// between two samples.
func cpuUsagePct(prev, cur cpuSample) float64 {
	totalDelta := cur.total - prev.total
	idleDelta := cur.idle - prev.idle
	if totalDelta == 0 {
		return 0
	}
	busy := float64(totalDelta-idleDelta) / float64(totalDelta)
	return busy * 100
}
