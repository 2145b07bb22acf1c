package render

import "fmt"

// FormatNet renders a Mbps value the way the header/graph labels do:
// three significant figures under 1, two decimal places above.
func FormatNet(mbps float64) string {
	if mbps < 1 {
		return fmt.Sprintf("%.3gMb", mbps)
	}
	return fmt.Sprintf("%.2fMb", mbps)
}

// FormatUptime renders a duration in seconds as "Xd HH:MM" or "HH:MM".
func FormatUptime(seconds int) string {
	days := seconds / 86400
	seconds %= 86400
	hours := seconds / 3600
	seconds %= 3600
	minutes := seconds / 60
	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d", days, hours, minutes)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FormatDurationShort renders a duration in seconds as "MM:SS" or
// "H:MM:SS" once it reaches an hour, used for printer ETA/elapsed.
func FormatDurationShort(seconds int) string {
	if seconds < 0 {
		return "--:--"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
