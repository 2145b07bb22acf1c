package render

import (
	"fmt"
	"image"

	"github.com/photonicat/lcddash/internal/anim"
	"github.com/photonicat/lcddash/internal/printerclient"
)

// drawPrintView renders the thumbnail-preview panel and the print
// status panel (percentage, semicircular gauge, ETA/elapsed).
func (s *Scene) drawPrintView(fb *Framebuffer, printer printerclient.Metrics, animEngine *anim.Engine) {
	preview, status := printPanels()

	s.panelFrame(fb, preview, "")
	s.drawThumbnail(fb, preview, printer.Thumb)

	s.panelFrame(fb, status, "")
	s.drawPrintStatus(fb, status, printer, animEngine)
}

func (s *Scene) drawThumbnail(fb *Framebuffer, r Rect, thumb image.Image) {
	inner := Rect{X: r.X + 6, Y: r.Y + 6, W: r.W - 12, H: r.H - 12}
	if thumb == nil {
		fb.Rect(inner.X, inner.Y, inner.W, inner.H, s.Theme.SparkBG)
		if face := s.face(11); face != nil {
			fb.DrawText(face, "no preview", inner.X+inner.W/2, inner.Y+inner.H/2, s.Theme.TextStatus, true)
		}
		return
	}

	bounds := thumb.Bounds()
	sw, sh := bounds.Dx(), bounds.Dy()
	if sw == 0 || sh == 0 {
		return
	}
	scale := minFloat(float64(inner.W)/float64(sw), float64(inner.H)/float64(sh))
	dw, dh := int(float64(sw)*scale), int(float64(sh)*scale)
	ox, oy := inner.X+(inner.W-dw)/2, inner.Y+(inner.H-dh)/2

	for dy := 0; dy < dh; dy++ {
		sy := bounds.Min.Y + dy*sh/dh
		for dx := 0; dx < dw; dx++ {
			sx := bounds.Min.X + dx*sw/dw
			r8, g8, b8, a8 := thumb.At(sx, sy).RGBA()
			if a8 == 0 {
				continue
			}
			fb.Set(ox+dx, oy+dy, RGB888ToRGB565(uint8(r8>>8), uint8(g8>>8), uint8(b8>>8)))
		}
	}
}

func (s *Scene) drawPrintStatus(fb *Framebuffer, r Rect, printer printerclient.Metrics, animEngine *anim.Engine) {
	cx := r.X + r.W/2
	cy := r.Y + r.H/2

	target := printer.Progress01
	animEngine.SetTarget("print_progress", target)
	frac := animEngine.Get("print_progress", target)

	color := s.printStateColor(printer.State)
	fb.SemiGauge(s.LUTs, cx, cy, minInt(r.W, r.H)/2-14, 8, frac, color, s.Theme.BarBG, false)

	if face := s.face(20); face != nil {
		fb.DrawText(face, fmt.Sprintf("%.0f%%", frac*100), cx, cy, s.Theme.TextValue, true)
	}
	if face := s.face(11); face != nil {
		fb.DrawText(face, stateLabel(printer.State), cx, cy+28, s.Theme.TextStatus, true)

		elapsed := FormatDurationShort(printer.ElapsedSec)
		eta := FormatDurationShort(printer.ETASec)
		fb.DrawText(face, "elapsed "+elapsed, cx, r.Y+r.H-26, s.Theme.TextStatus, true)
		fb.DrawText(face, "eta "+eta, cx, r.Y+r.H-10, s.Theme.TextStatus, true)

		if printer.Filename != "" {
			name := EllipsizeText(face, printer.Filename, r.W-16)
			fb.DrawText(face, name, r.X+8, r.Y+16, s.Theme.TextValue, false)
		}
	}
}

// printStateColor implements the state->color rule ported from the
// reference print-screen status branch: paused warns, error and
// cancelled are high,
// complete/standby are ok, everything else (printing) is ok-family.
func (s *Scene) printStateColor(state string) Color {
	switch state {
	case "paused":
		return s.Theme.StateMedium
	case "error", "cancelled":
		return s.Theme.StateHigh
	default:
		return s.Theme.StateLow
	}
}

func stateLabel(state string) string {
	if state == "" {
		return "idle"
	}
	return state
}
