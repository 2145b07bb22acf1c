package metrics

import (
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// uptimeSeconds reads /proc/uptime.
func uptimeSeconds() (int, error) {
	data, err := os.ReadFile("/proc/uptime")
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, os.ErrInvalid
	}
	f, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// diskPercent returns used/total*100 floored to an integer for the
// root filesystem, via gopsutil's statvfs wrapper. There is no other
// path: when gopsutil fails it returns -1, false.
func diskPercent() (int, bool) {
	usage, err := disk.Usage("/")
	if err != nil {
		return -1, false
	}
	return int(usage.UsedPercent), true
}
