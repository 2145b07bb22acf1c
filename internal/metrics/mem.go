package metrics

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// memInfo returns the used percent and used MB, parsed from
// /proc/meminfo's MemTotal/MemAvailable.
func memInfo() (percent float64, usedMB int, err error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	var totalKB, availKB int64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			totalKB = parseMeminfoValue(line)
		case strings.HasPrefix(line, "MemAvailable:"):
			availKB = parseMeminfoValue(line)
		}
	}
	if totalKB == 0 {
		return 0, 0, os.ErrNotExist
	}
	usedKB := totalKB - availKB
	percent = float64(usedKB) / float64(totalKB) * 100
	usedMB = int(usedKB / 1024)
	return percent, usedMB, nil
}

func parseMeminfoValue(line string) int64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	v, _ := strconv.ParseInt(fields[1], 10, 64)
	return v
}
