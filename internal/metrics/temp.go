package metrics

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// cpuTemp probes thermal_zone0..4 until a value in the plausible
// (20, 120) degree range is found.
func cpuTemp() (float64, bool) {
	for i := 0; i < 5; i++ {
		path := fmt.Sprintf("/sys/class/thermal/thermal_zone%d/temp", i)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		raw, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
		if err != nil {
			continue
		}
		c := raw / 1000.0
		if c > 20 && c < 120 {
			return c, true
		}
	}
	return 0, false
}
