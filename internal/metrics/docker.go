package metrics

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// dockerRunningCount runs "docker ps -q" under a hard timeout and
// counts the non-empty lines of output. On timeout or error it returns
// -1 (unknown).
func dockerRunningCount(ctx context.Context, timeout time.Duration) int {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, "docker", "ps", "-q")
	out, err := cmd.Output()
	if err != nil {
		return -1
	}
	count := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
