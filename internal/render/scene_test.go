package render

import (
	"testing"

	"github.com/photonicat/lcddash/internal/anim"
	"github.com/photonicat/lcddash/internal/config"
	"github.com/photonicat/lcddash/internal/history"
	"github.com/photonicat/lcddash/internal/idle"
	"github.com/photonicat/lcddash/internal/iconset"
	"github.com/photonicat/lcddash/internal/metrics"
	"github.com/photonicat/lcddash/internal/printerclient"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	icons, err := iconset.Build(iconset.DefaultDefs(16), 16)
	if err != nil {
		t.Fatalf("iconset.Build: %v", err)
	}
	cfg := config.Load()
	theme, _ := ThemeOrDefault(cfg.Theme)
	return NewScene(cfg, theme, nil, NewLUTs(), icons)
}

func newTestHistories() Histories {
	cpu, temp, net1, net2 := history.NewRing(30), history.NewRing(30), history.NewRing(30), history.NewRing(30)
	for i := 0; i < 30; i++ {
		cpu.Push(float64(i))
		temp.Push(40 + float64(i)*0.5)
		net1.Push(float64(i) * 2)
		net2.Push(float64(i))
	}
	return Histories{CPU: cpu, Temp: temp, Net1: net1, Net2: net2}
}

func TestComposeMainViewDoesNotPanic(t *testing.T) {
	scene := newTestScene(t)
	fb := NewFramebuffer(ScreenWidth, ScreenHeight)
	snap := metrics.Snapshot{CPUPct: 42, MemPct: 55, TempC: 55, Net1Mbps: 10, Net2Mbps: 2, DockerRunning: 2, DiskPct: 40, WGPeers: 1, MCOnline: 3, MCMax: 20}

	scene.Compose(fb, ViewMain, snap, metrics.WanOK, printerclient.Metrics{}, idle.New(), anim.New(), newTestHistories(), 1.0, 0.2)
}

func TestComposePrintViewDoesNotPanic(t *testing.T) {
	scene := newTestScene(t)
	fb := NewFramebuffer(ScreenWidth, ScreenHeight)
	printer := printerclient.Metrics{State: "printing", Filename: "benchy.gcode", Progress01: 0.4, ElapsedSec: 120, ETASec: 300, Active: true}

	scene.Compose(fb, ViewPrint, metrics.Snapshot{}, metrics.WanDown, printer, idle.New(), anim.New(), newTestHistories(), 2.0, 0.2)
}

func TestComposeWithIdleControllerDoesNotPanic(t *testing.T) {
	scene := newTestScene(t)
	fb := NewFramebuffer(ScreenWidth, ScreenHeight)
	ctl := idle.New()
	for i := 0; i < 500; i++ {
		ctl.Update(idle.Metrics{}, 0.1)
	}
	if !ctl.IsIdle() {
		t.Fatal("controller should be idle after a long stretch of low activity")
	}
	scene.Compose(fb, ViewMain, metrics.Snapshot{}, metrics.WanOK, printerclient.Metrics{}, ctl, anim.New(), newTestHistories(), 50.0, 0.1)
}
