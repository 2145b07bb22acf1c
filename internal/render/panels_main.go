package render

import (
	"fmt"

	"github.com/photonicat/lcddash/internal/anim"
	"github.com/photonicat/lcddash/internal/metrics"
)

// drawMainView renders the two stacked graph panels and the vitals
// column.
func (s *Scene) drawMainView(fb *Framebuffer, snap metrics.Snapshot, animEngine *anim.Engine, hist Histories) {
	network, cpuTemp, vitals := mainPanels()

	s.drawNetworkPanel(fb, network, snap, animEngine, hist)
	s.drawCPUTempPanel(fb, cpuTemp, snap, animEngine, hist)
	s.drawVitalsPanel(fb, vitals, snap)
}

func (s *Scene) panelFrame(fb *Framebuffer, r Rect, title string) {
	fb.RoundedRect(r.X, r.Y, r.W, r.H, 8, s.Theme.BarBG, s.Theme.BarBorder)
	if face := s.face(11); face != nil && title != "" {
		fb.DrawText(face, title, r.X+10, r.Y+16, s.Theme.TextStatus, false)
	}
}

func (s *Scene) drawNetworkPanel(fb *Framebuffer, r Rect, snap metrics.Snapshot, animEngine *anim.Engine, hist Histories) {
	s.panelFrame(fb, r, "NETWORK")
	plot := Rect{X: r.X + 8, Y: r.Y + 22, W: r.W - 16, H: r.H - 30}
	if plot.H <= 0 || plot.W <= 0 {
		return
	}

	ceil1 := s.NetScale1.Update(hist.Net1.Values())
	ceil2 := s.NetScale2.Update(hist.Net2.Values())
	ceiling := maxFloat(ceil1, ceil2)
	if !s.Cfg.NetAutoscale || ceiling <= 0 {
		ceiling = s.Cfg.NetAutoscaleMax
	}

	layers := s.sparklineLayers()
	fb.Sparkline(s.LUTs, animEngine, 0, plot.X, plot.Y, plot.W, plot.H, hist.Net1.Values(), 0, ceiling, s.Theme.AccentInfo, s.Theme.SparkBG, 2, MetricNet1, layers)
	fb.SeriesLine(s.LUTs, plot.X, plot.Y, plot.W, plot.H, hist.Net2.Values(), 0, ceiling, s.Theme.StateLow, DimColor(s.Theme.StateLow), 1)

	if face := s.face(11); face != nil {
		fb.DrawText(face, fmt.Sprintf("D %s", FormatNet(snap.Net1Mbps)), r.X+10, r.Y+r.H-6, s.Theme.TextValue, false)
		fb.DrawText(face, fmt.Sprintf("U %s", FormatNet(snap.Net2Mbps)), r.X+r.W-10, r.Y+r.H-6, s.Theme.TextValue, false)
	}
}

func (s *Scene) drawCPUTempPanel(fb *Framebuffer, r Rect, snap metrics.Snapshot, animEngine *anim.Engine, hist Histories) {
	s.panelFrame(fb, r, "CPU & TEMP")
	plot := Rect{X: r.X + 8, Y: r.Y + 22, W: r.W - 16, H: r.H - 30}
	if plot.H <= 0 || plot.W <= 0 {
		return
	}

	layers := s.sparklineLayers()
	cpuColor := s.Theme.PickStateColor(snap.CPUPct, "cpu")
	tempColor := s.Theme.PickStateColor(snap.TempC, "temp")

	fb.Sparkline(s.LUTs, animEngine, 0, plot.X, plot.Y, plot.W, plot.H, hist.CPU.Values(), 0, 100, cpuColor, s.Theme.SparkBG, 2, MetricCPU, layers)
	fb.SeriesLine(s.LUTs, plot.X, plot.Y, plot.W, plot.H, hist.Temp.Values(), 20, 90, tempColor, DimColor(tempColor), 1)

	if face := s.face(11); face != nil {
		fb.DrawText(face, fmt.Sprintf("%.0f%%", snap.CPUPct), r.X+10, r.Y+r.H-6, cpuColor, false)
		fb.DrawText(face, fmt.Sprintf("%.0fC", snap.TempC), r.X+r.W-10, r.Y+r.H-6, tempColor, false)
	}
}

func (s *Scene) drawVitalsPanel(fb *Framebuffer, r Rect, snap metrics.Snapshot) {
	s.panelFrame(fb, r, "VITALS")

	cx := r.X + r.W/2
	radius := minInt(r.W/2-6, 34)
	gap := r.H / 3

	s.drawVitalGauge(fb, cx, r.Y+30, radius, snap.CPUPct/100, "CPU", s.Theme.PickStateColor(snap.CPUPct, "cpu"))
	s.drawVitalGauge(fb, cx, r.Y+30+gap, radius, clampFloat(snap.MemPct/100, 0, 1), "MEM", s.Theme.PickStateColor(snap.MemPct, "ram"))
	s.drawVitalGauge(fb, cx, r.Y+30+2*gap, radius, clampFloat((snap.TempC-20)/70, 0, 1), "TEMP", s.Theme.PickStateColor(snap.TempC, "temp"))
}

func (s *Scene) drawVitalGauge(fb *Framebuffer, cx, cy, r int, frac float64, label string, active Color) {
	fb.SemiGauge(s.LUTs, cx, cy, r, 6, frac, active, s.Theme.BarBG, false)
	if face := s.face(10); face != nil {
		fb.DrawText(face, label, cx, cy+14, s.Theme.TextStatus, true)
	}
}

func (s *Scene) sparklineLayers() SparklineLayers {
	return SparklineLayers{
		Shadow:            s.Cfg.SparklineShadow,
		EnhancedFill:      s.Cfg.SparklineEnhancedFill,
		ColorZones:        s.Cfg.SparklineColorZones,
		GradientLine:      s.Cfg.SparklineGradientLine,
		DynamicWidth:      s.Cfg.SparklineDynamicWidth,
		PeakHighlight:     s.Cfg.SparklinePeakHighlight,
		BaselineShimmer:   s.Cfg.SparklineBaselineShimmer,
		Pulse:             s.Cfg.SparklinePulse,
		Particles:         s.Cfg.SparklineParticles,
		SmoothTransitions: s.Cfg.SparklineSmoothTransitions,
	}
}
