package metrics

import (
	"context"
	"time"

	"github.com/photonicat/lcddash/internal/bus"
	"github.com/photonicat/lcddash/internal/config"
	"github.com/photonicat/lcddash/internal/logging"
)

// Poller owns the main-metrics goroutine and the WAN goroutine, and
// publishes into the two mailboxes the render loop reads from.
type Poller struct {
	cfg config.Config

	Snapshots *bus.Mailbox[Snapshot]
	WanBox    *bus.Snapshot[WanStatus]

	netSampler *NetSampler
	gameServer *gameServerClient
	wanHistory *WanHistory
}

// NewPoller wires up a Poller ready to Run.
func NewPoller(cfg config.Config) *Poller {
	return &Poller{
		cfg:        cfg,
		Snapshots:  &bus.Mailbox[Snapshot]{},
		WanBox:     &bus.Snapshot[WanStatus]{},
		netSampler: NewNetSampler(),
		gameServer: newGameServerClient(cfg.MCRconHost, cfg.MCRconPass, cfg.MCRconPort, cfg.MCRconTimeout(), cfg.MCRconInterval()),
		wanHistory: NewWanHistory(),
	}
}

// Run starts both poller loops and blocks until ctx is cancelled, at
// which point both loops observe the cancellation and return promptly
//.
func (p *Poller) Run(ctx context.Context) error {
	done := make(chan struct{}, 2)
	go func() { p.runMainLoop(ctx); done <- struct{}{} }()
	go func() { p.runWanLoop(ctx); done <- struct{}{} }()
	<-ctx.Done()
	<-done
	<-done
	return nil
}

func (p *Poller) runMainLoop(ctx context.Context) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var prevCPU cpuSample
	haveCPU := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		snap := Snapshot{DockerRunning: -1, DiskPct: -1, WGPeers: -1, MCOnline: -1, MCMax: -1}

		if cur, err := readCPUSample(); err == nil {
			if haveCPU {
				snap.CPUPct = cpuUsagePct(prevCPU, cur)
			}
			prevCPU = cur
			haveCPU = true
		}

		if pct, used, err := memInfo(); err == nil {
			snap.MemPct = pct
			snap.MemUsedMB = used
		}

		if temp, ok := cpuTemp(); ok {
			snap.TempC = temp
		}

		snap.Net1Mbps = p.netSampler.Sample(p.cfg.NetIf1)
		snap.Net2Mbps = p.netSampler.Sample(p.cfg.NetIf2)

		if up, err := uptimeSeconds(); err == nil {
			snap.UptimeSec = up
		}

		snap.DockerRunning = dockerRunningCount(ctx, 5*time.Second)

		if pct, ok := diskPercent(); ok {
			snap.DiskPct = pct
		}

		snap.WGPeers = wireGuardPeerCount(ctx, wireGuardDBPath, wireGuardIface, time.Duration(p.cfg.WGActiveSec)*time.Second)

		snap.MCOnline, snap.MCMax = p.gameServer.PlayerCount()

		p.Snapshots.Publish(snap)
	}
}

func (p *Poller) runWanLoop(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		raw := classifyWAN(200*time.Millisecond, 2*time.Second)
		p.wanHistory.Push(raw)
		stable := p.wanHistory.Stabilized()
		p.WanBox.Set(stable)
		if stable == WanDown {
			logging.Wan.Println("wan down")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

const (
	wireGuardDBPath = "/etc/wireguard/wg-easy.db"
	wireGuardIface  = "wg0"
)
