package metrics

import (
	"context"
	"database/sql"
	"os/exec"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// wireGuardPeerCount consults the wg-easy database of enabled public
// keys, intersects it with "wg show <iface> latest-handshakes", and
// counts peers whose last handshake falls within activeWindow. Any
// failure at any step yields -1 (unknown).
//
// Queries wg-easy.db directly with a pure-Go sqlite driver instead of
// shelling out to the sqlite3 CLI.
func wireGuardPeerCount(ctx context.Context, dbPath, iface string, activeWindow time.Duration) int {
	enabled, err := enabledPublicKeys(ctx, dbPath)
	if err != nil || len(enabled) == 0 {
		return -1
	}

	handshakes, err := latestHandshakes(ctx, iface)
	if err != nil {
		return -1
	}

	now := time.Now()
	count := 0
	for pubkey, ts := range handshakes {
		if !enabled[pubkey] {
			continue
		}
		if now.Sub(ts) <= activeWindow {
			count++
		}
	}
	return count
}

func enabledPublicKeys(ctx context.Context, dbPath string) (map[string]bool, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT publicKey FROM clients WHERE enabled = 1")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			continue
		}
		result[key] = true
	}
	return result, rows.Err()
}

func latestHandshakes(ctx context.Context, iface string) (map[string]time.Time, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(cctx, "wg", "show", iface, "latest-handshakes").Output()
	if err != nil {
		return nil, err
	}
	result := make(map[string]time.Time)
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		unix, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || unix == 0 {
			continue
		}
		result[fields[0]] = time.Unix(unix, 0)
	}
	return result, nil
}
