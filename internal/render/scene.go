package render

import (
	"fmt"

	"golang.org/x/image/font"

	"github.com/photonicat/lcddash/internal/anim"
	"github.com/photonicat/lcddash/internal/config"
	"github.com/photonicat/lcddash/internal/history"
	"github.com/photonicat/lcddash/internal/idle"
	"github.com/photonicat/lcddash/internal/iconset"
	"github.com/photonicat/lcddash/internal/metrics"
	"github.com/photonicat/lcddash/internal/printerclient"
)

// Histories bundles the history rings the compositor reads each
// frame; owned by the caller (the main loop), not the Scene itself.
type Histories struct {
	CPU, Temp, Net1, Net2 *history.Ring
}

// Scene holds everything the compositor needs to draw one frame:
// static resources (fonts, LUTs, icons, theme) plus small per-frame
// state (the ticker offset) that outlives any one Compose call.
type Scene struct {
	Theme  Theme
	Fonts  *FontSet
	LUTs   *LUTs
	Icons  *iconset.Set
	Cfg    config.Config

	NetScale1 *NetAutoscale
	NetScale2 *NetAutoscale

	tickerOffsetPx float64
	tickerText     string
}

// NewScene wires up a Scene ready to Compose, given the resolved
// theme/config and pre-built static resources.
func NewScene(cfg config.Config, theme Theme, fonts *FontSet, luts *LUTs, icons *iconset.Set) *Scene {
	return &Scene{
		Theme: theme, Fonts: fonts, LUTs: luts, Icons: icons, Cfg: cfg,
		NetScale1: &NetAutoscale{Percentile: cfg.NetAutoscalePctl, Min: cfg.NetAutoscaleMin, Max: cfg.NetAutoscaleMax, EMAAlpha: cfg.NetAutoscaleEMA},
		NetScale2: &NetAutoscale{Percentile: cfg.NetAutoscalePctl, Min: cfg.NetAutoscaleMin, Max: cfg.NetAutoscaleMax, EMAAlpha: cfg.NetAutoscaleEMA},
	}
}

// SetTicker replaces the scrolling header status string. Reference
// behavior: the offset resets whenever the text itself changes.
func (s *Scene) SetTicker(text string) {
	if text != s.tickerText {
		s.tickerText = text
		s.tickerOffsetPx = 0
	}
}

func (s *Scene) face(size float64) font.Face {
	if s.Fonts == nil {
		return nil
	}
	f, err := s.Fonts.Face(size)
	if err != nil {
		return nil
	}
	return f
}

// Compose draws one full frame into fb for the given view mode and
// current snapshot/printer/idle/animation state.
func (s *Scene) Compose(fb *Framebuffer, mode ViewMode, snap metrics.Snapshot, wan metrics.WanStatus, printer printerclient.Metrics, idleCtl *idle.Controller, animEngine *anim.Engine, hist Histories, timeSec, dt float64) {
	s.tickerOffsetPx += dt * 24
	bgTop, bgBottom := s.Theme.BGTopActive, s.Theme.BGBottomActive
	if idleCtl.IsIdle() {
		bgTop = InterpolateColor(s.Theme.BGTopActive, s.Theme.BGTopIdle, idleCtl.TransitionProgress())
		bgBottom = InterpolateColor(s.Theme.BGBottomActive, s.Theme.BGBottomIdle, idleCtl.TransitionProgress())
	}
	fb.VGradient(0, 0, fb.Width, fb.Height, bgTop, bgBottom)

	if s.Cfg.Grid {
		fb.Grid(0, HeaderHeight, fb.Width, fb.Height-HeaderHeight-FooterHeight, 24, 0, 0, s.Theme.GridColor)
	}

	s.drawHeader(fb, snap, wan, timeSec)
	if s.Cfg.Band {
		fb.Rect(0, HeaderHeight+1, fb.Width, 2, s.Theme.BandColor)
	}

	switch mode {
	case ViewPrint:
		s.drawPrintView(fb, printer, animEngine)
	default:
		s.drawMainView(fb, snap, animEngine, hist)
	}

	s.drawFooter(fb, snap, wan)
}

// drawHeader renders the top status bar: WAN/docker/disk/vpn icons on
// the left, the scrolling ticker in the middle, and the clock-style
// uptime readout on the right.
func (s *Scene) drawHeader(fb *Framebuffer, snap metrics.Snapshot, wan metrics.WanStatus, timeSec float64) {
	fb.Rect(0, 0, fb.Width, HeaderHeight, s.Theme.BarBG)
	fb.Line(0, HeaderHeight, fb.Width, HeaderHeight, s.Theme.BarBorder)

	iconY := HeaderHeight/2 - 8
	x := Margin
	x = s.drawStatusIcon(fb, x, iconY, iconset.IconWAN, wan != metrics.WanDown)
	x = s.drawStatusIcon(fb, x, iconY, iconset.IconDocker, snap.DockerRunning > 0)
	x = s.drawStatusIcon(fb, x, iconY, iconset.IconDisk, snap.DiskPct >= 0 && snap.DiskPct < 90)
	x = s.drawStatusIcon(fb, x, iconY, iconset.IconVPN, snap.WGPeers > 0)

	if face := s.face(13); face != nil && s.tickerText != "" {
		clipX := x + Gap
		clipW := fb.Width - clipX - 110
		if clipW > 0 {
			offset := int(s.tickerOffsetPx) % maxInt(MeasureTextWidth(face, s.tickerText)+40, 1)
			fb.DrawTextClipped(face, s.tickerText, clipX-offset, HeaderHeight/2+5, s.Theme.TextStatus, clipX, 0, clipW, HeaderHeight)
		}
	}

	if face := s.face(14); face != nil {
		uptime := FormatUptime(snap.UptimeSec)
		fb.DrawText(face, uptime, fb.Width-Margin-MeasureTextWidth(face, uptime), HeaderHeight/2+5, s.Theme.AccentTime, false)
	}
}

func (s *Scene) drawStatusIcon(fb *Framebuffer, x, y int, name string, active bool) int {
	sprite := s.Icons.Get(name)
	if sprite == nil {
		return x
	}
	w, h := sprite.Bounds().Dx(), sprite.Bounds().Dy()
	pix := sprite.Pix
	if !active {
		pix = dimPix(pix)
	}
	fb.AlphaBlit(x, y, w, h, pix)
	return x + w + 6
}

// dimPix returns a copy of an RGBA pixel buffer with color channels
// scaled to 55% brightness, alpha untouched — the inactive-icon state.
func dimPix(pix []byte) []byte {
	out := make([]byte, len(pix))
	for i := 0; i+3 < len(pix); i += 4 {
		out[i] = byte(float64(pix[i]) * 0.55)
		out[i+1] = byte(float64(pix[i+1]) * 0.55)
		out[i+2] = byte(float64(pix[i+2]) * 0.55)
		out[i+3] = pix[i+3]
	}
	return out
}

// drawFooter renders the services strip (game server players, WG peer
// count, running containers, WAN state) across the bottom bar.
func (s *Scene) drawFooter(fb *Framebuffer, snap metrics.Snapshot, wan metrics.WanStatus) {
	if FooterHeight <= 0 {
		return
	}
	y := fb.Height - FooterHeight
	fb.Rect(0, y, fb.Width, FooterHeight, s.Theme.BarBG)
	fb.Line(0, y, fb.Width, y, s.Theme.BarBorder)

	face := s.face(11)
	if face == nil {
		return
	}

	parts := make([]string, 0, 4)
	if snap.MCMax >= 0 {
		parts = append(parts, fmt.Sprintf("MC %d/%d", snap.MCOnline, snap.MCMax))
	}
	if snap.WGPeers >= 0 {
		parts = append(parts, fmt.Sprintf("WG %d", snap.WGPeers))
	}
	if snap.DockerRunning >= 0 {
		parts = append(parts, fmt.Sprintf("Docker %d", snap.DockerRunning))
	}
	parts = append(parts, "WAN "+wan.String())

	x := Margin
	for _, p := range parts {
		fb.DrawText(face, p, x, y+FooterHeight/2+4, s.Theme.TextStatus, false)
		x += MeasureTextWidth(face, p) + 16
	}
}
