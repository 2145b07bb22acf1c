// Command lcddash drives the panel: it polls host telemetry and printer
// state, composites frames, and streams only the changed rectangles (or
// a full frame) to the display over SPI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/photonicat/lcddash/internal/anim"
	"github.com/photonicat/lcddash/internal/config"
	"github.com/photonicat/lcddash/internal/debugsrv"
	"github.com/photonicat/lcddash/internal/differ"
	"github.com/photonicat/lcddash/internal/history"
	"github.com/photonicat/lcddash/internal/idle"
	"github.com/photonicat/lcddash/internal/iconset"
	"github.com/photonicat/lcddash/internal/logging"
	"github.com/photonicat/lcddash/internal/metrics"
	"github.com/photonicat/lcddash/internal/panel"
	"github.com/photonicat/lcddash/internal/printerclient"
	"github.com/photonicat/lcddash/internal/render"
)

func main() {
	if err := run(); err != nil {
		logging.Main.Println("fatal:", err)
		os.Exit(exitCodeFor(err))
	}
}

// configError marks failures that occur before any hardware or
// network resource has been touched, distinguished from a run failure
// so the process can exit with a different code (exit code 2 is
// additive).
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	if _, ok := err.(*configError); ok {
		return 2
	}
	return 1
}

func run() error {
	cfg := config.Load()
	theme, themeName := render.ThemeOrDefault(cfg.Theme)
	logging.Main.Printf("starting: theme=%s target_fps=%d idle_fps=%d", themeName, cfg.TargetFPS, cfg.IdleFPS)

	fonts, err := render.LoadFontSet(cfg.Font)
	if err != nil {
		return &configError{fmt.Errorf("load font %s: %w", cfg.Font, err)}
	}
	icons, err := iconset.Build(iconset.DefaultDefs(16), 16)
	if err != nil {
		return &configError{fmt.Errorf("build icon atlas: %w", err)}
	}

	scene := render.NewScene(cfg, theme, fonts, render.NewLUTs(), icons)

	poller := metrics.NewPoller(cfg)
	printer := printerclient.New(cfg.PrinterBaseURL, cfg.PrinterPollInterval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return poller.Run(gctx) })
	g.Go(func() error { return printer.Run(gctx) })

	loop := newRenderLoop(cfg, scene, poller, printer)
	debugServer := debugsrv.New(cfg.DebugHTTPAddr, loop)
	g.Go(func() error {
		if err := debugServer.ListenAndServe(); err != nil {
			logging.Debug.Println("debug http server stopped:", err)
		}
		return nil
	})

	panelCfg := panel.Config{
		SPIName:    "SPI1.0",
		SpeedHz:    cfg.SPISpeedHz,
		ChunkBytes: cfg.SPIChunk,
		ThrottleUS: cfg.SPIThrottleUS,
		DCPin:      "GPIO121",
		RSTPin:     "GPIO122",
		BLPin:      "GPIO117",
		OffsetX:    cfg.PanelOffsetX,
		OffsetY:    cfg.PanelOffsetY,
	}
	lcd, err := panel.Open(panelCfg)
	if err != nil {
		logging.Panel.Println("panel unavailable, running headless:", err)
	} else if err := lcd.Init(); err != nil {
		logging.Panel.Println("panel init failed, running headless:", err)
		if shutdownErr := lcd.Shutdown(); shutdownErr != nil {
			logging.Panel.Println("panel shutdown:", shutdownErr)
		}
		lcd = nil
	}
	if lcd != nil {
		defer func() {
			if err := lcd.Shutdown(); err != nil {
				logging.Panel.Println("panel shutdown:", err)
			}
		}()
	}

	g.Go(func() error { return loop.run(gctx, lcd) })

	return g.Wait()
}

// renderLoop owns the two framebuffers, the animation/idle/history
// state, and the view scheduler.
type renderLoop struct {
	cfg       config.Config
	differCfg differ.Config
	scene     *render.Scene
	poller    *metrics.Poller
	printer   *printerclient.Client

	animEngine *anim.Engine
	idleCtl    *idle.Controller
	scheduler  *render.ViewScheduler
	hist       render.Histories
	net1EMA    *history.EMA
	net2EMA    *history.EMA

	current, previous *render.Framebuffer

	frameMu     sync.RWMutex
	burstFrames int
}

func newRenderLoop(cfg config.Config, scene *render.Scene, poller *metrics.Poller, printer *printerclient.Client) *renderLoop {
	width := render.ScreenWidth
	r := &renderLoop{
		cfg: cfg,
		differCfg: differ.Config{
			TileSize:           cfg.DirtyTile,
			MaxRects:           cfg.DirtyMaxRects,
			FullFrameThreshold: cfg.FullFrameThreshold,
		},
		scene:      scene,
		poller:     poller,
		printer:    printer,
		animEngine: anim.New(),
		idleCtl:    idle.New(),
		scheduler:  render.NewViewScheduler(),
		hist: render.Histories{
			CPU:  history.NewRing(history.CapacityForWidth(width)),
			Temp: history.NewRing(history.CapacityForWidth(width)),
			Net1: history.NewRing(history.CapacityForWidth(width)),
			Net2: history.NewRing(history.CapacityForWidth(width)),
		},
		current:  render.NewFramebuffer(width, render.ScreenHeight),
		previous: render.NewFramebuffer(width, render.ScreenHeight),
	}
	if cfg.SparklineSmooth {
		r.net1EMA = history.NewEMA(cfg.SparklineSmoothAlpha)
		r.net2EMA = history.NewEMA(cfg.SparklineSmoothAlpha)
	}
	return r
}

// CurrentFrame implements debugsrv.FrameSource. After each frame the
// buffers are swapped, so the last composited frame is r.previous.
func (r *renderLoop) CurrentFrame() *render.Framebuffer {
	r.frameMu.RLock()
	defer r.frameMu.RUnlock()
	return r.previous
}

func (r *renderLoop) run(ctx context.Context, lcd *panel.Panel) error {
	var wan metrics.WanStatus
	var snap metrics.Snapshot
	var lastFrameStart time.Time
	firstFrame := true

	var framesLogged, rectsLogged int
	var bytesLogged int
	logTicker := time.NewTicker(5 * time.Second)
	defer logTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		now := time.Now()
		dt := 0.0
		if !lastFrameStart.IsZero() {
			dt = now.Sub(lastFrameStart).Seconds()
		}
		lastFrameStart = now

		if latest, ok := r.poller.Snapshots.TryTake(); ok {
			snap = latest
			r.hist.CPU.Push(snap.CPUPct)
			r.hist.Temp.Push(snap.TempC)
			net1, net2 := snap.Net1Mbps, snap.Net2Mbps
			if r.net1EMA != nil {
				net1 = r.net1EMA.Update(net1)
			}
			if r.net2EMA != nil {
				net2 = r.net2EMA.Update(net2)
			}
			r.hist.Net1.Push(net1)
			r.hist.Net2.Push(net2)
			r.burstFrames = r.cfg.AnimBurstFrames
		}
		wan = r.poller.WanBox.Get()

		r.animEngine.SetTarget("cpu", snap.CPUPct)
		r.animEngine.SetTarget("temp", snap.TempC)
		r.animEngine.SetTarget("net1", snap.Net1Mbps)
		r.animEngine.SetTarget("net2", snap.Net2Mbps)
		r.animEngine.Step(dt)
		r.idleCtl.Update(idle.Metrics{CPUPct: snap.CPUPct, TempC: snap.TempC, Net1: snap.Net1Mbps, Net2: snap.Net2Mbps}, dt)

		printerSnap := r.printer.GetSnapshot()
		eligible := render.PrintEligible(printerSnap.Active, time.Since(printerSnap.LastActiveAt).Seconds())
		mode := r.scheduler.Update(eligible, dt)

		timeSec := now.Sub(time.Time{}).Seconds()
		r.scene.SetTicker(tickerText(snap, wan))

		r.frameMu.Lock()
		r.scene.Compose(r.current, mode, snap, wan, printerSnap, r.idleCtl, r.animEngine, r.hist, timeSec, dt)
		r.frameMu.Unlock()

		if lcd != nil {
			if firstFrame {
				if err := lcd.Display(r.current.Pix); err != nil {
					logging.Panel.Println("full frame send failed:", err)
				}
				bytesLogged += render.ScreenWidth * render.ScreenHeight * 3
				firstFrame = false
			} else {
				result := differ.Diff(r.previous.Pix, r.current.Pix, r.current.Width, r.current.Height, r.differCfg)
				if result.FullFrame {
					if err := lcd.Display(r.current.Pix); err != nil {
						logging.Panel.Println("full frame send failed:", err)
					}
					bytesLogged += render.ScreenWidth * render.ScreenHeight * 3
				} else {
					for _, rect := range result.Rects {
						if err := lcd.UpdateRect(rect.X, rect.Y, rect.W, rect.H, r.current.Pix, r.current.Width); err != nil {
							logging.Panel.Println("rect send failed:", err)
						}
						bytesLogged += rect.W * rect.H * 3
					}
					rectsLogged += len(result.Rects)
				}
			}
		}
		r.frameMu.Lock()
		r.current, r.previous = r.previous, r.current
		r.frameMu.Unlock()
		framesLogged++

		if r.burstFrames > 0 {
			r.burstFrames--
		}

		targetFPS := r.cfg.TargetFPS
		if r.idleCtl.IsIdle() && r.burstFrames == 0 {
			targetFPS = r.cfg.IdleFPS
		}
		if targetFPS <= 0 {
			targetFPS = 1
		}
		budget := time.Second / time.Duration(targetFPS)
		elapsed := time.Since(now)
		if elapsed < budget {
			time.Sleep(budget - elapsed)
		}

		select {
		case <-logTicker.C:
			logging.Main.Printf("fps=%d rects=%d bytes=%d", framesLogged/5, rectsLogged, bytesLogged)
			framesLogged, rectsLogged, bytesLogged = 0, 0, 0
		default:
		}
	}
}

func tickerText(snap metrics.Snapshot, wan metrics.WanStatus) string {
	return fmt.Sprintf("WAN %s  CPU %.0f%%  MEM %.0f%%  TEMP %.0fC", wan, snap.CPUPct, snap.MemPct, snap.TempC)
}
