package render

import "math"

// RingGauge draws a full-circle progress arc: nested arcs from r down
// to r-thickness+1, with rounded caps at the start and current-angle
// endpoints.
func (f *Framebuffer) RingGauge(luts *LUTs, cx, cy, r, thickness int, frac float64, active, inactive Color) {
	frac = clampFloat(frac, 0, 1)
	span := 2 * math.Pi
	steps := clampInt(int(span*float64(r)*1.2), 24, 180)

	f.thickArc(luts, cx, cy, r, thickness, 0, span, steps, inactive)
	if frac > 0 {
		f.thickArc(luts, cx, cy, r, thickness, 0, span*frac, maxInt(int(float64(steps)*frac), 1), active)
		f.roundedCap(cx, cy, r, thickness, 0, active)
		f.roundedCap(cx, cy, r, thickness, span*frac, active)
	}
}

// SemiGauge draws a half-circle arc (start=π, end=0) used for the vitals
// and print-progress gauges. Screen y grows downward, so with invertY
// false the arc is the lower half, hanging below cy; with invertY true
// it is the upper half, above cy.
func (f *Framebuffer) SemiGauge(luts *LUTs, cx, cy, r, thickness int, frac float64, active, inactive Color, invertY bool) {
	frac = clampFloat(frac, 0, 1)
	start, end := math.Pi, 0.0
	steps := clampInt(int((start-end)*float64(r)*1.2), 24, 180)

	f.arcPolyline(luts, cx, cy, r, thickness, start, end, steps, inactive, invertY)
	if frac > 0 {
		activeEnd := start - (start-end)*frac
		f.arcPolyline(luts, cx, cy, r, thickness, start, activeEnd, maxInt(int(float64(steps)*frac), 1), active, invertY)
		f.roundedCapY(cx, cy, r, thickness, start, active, invertY)
		f.roundedCapY(cx, cy, r, thickness, activeEnd, active, invertY)
	}
}

func (f *Framebuffer) thickArc(luts *LUTs, cx, cy, r, thickness int, from, to float64, steps int, c Color) {
	for rad := r; rad > r-thickness && rad >= 1; rad-- {
		f.arcPolyline(luts, cx, cy, rad, 1, from, to, steps, c, false)
	}
}

func (f *Framebuffer) arcPolyline(luts *LUTs, cx, cy, r, thickness int, from, to float64, steps int, c Color, invertY bool) {
	if steps < 1 {
		steps = 1
	}
	prevX, prevY := 0, 0
	for i := 0; i <= steps; i++ {
		a := from + (to-from)*float64(i)/float64(steps)
		x := cx + int(float64(r)*luts.FastCos(a))
		y := cy + int(float64(r)*luts.FastSin(a))
		if invertY {
			y = cy - int(float64(r)*luts.FastSin(a))
		}
		if i > 0 {
			f.Line(prevX, prevY, x, y, c)
		}
		prevX, prevY = x, y
	}
}

func (f *Framebuffer) roundedCap(cx, cy, r, thickness int, angle float64, c Color) {
	x := cx + int(float64(r)*math.Cos(angle))
	y := cy + int(float64(r)*math.Sin(angle))
	f.FilledCircle(x, y, thickness/2, c)
}

func (f *Framebuffer) roundedCapY(cx, cy, r, thickness int, angle float64, c Color, invertY bool) {
	x := cx + int(float64(r)*math.Cos(angle))
	y := cy + int(float64(r)*math.Sin(angle))
	if invertY {
		y = cy - int(float64(r)*math.Sin(angle))
	}
	f.FilledCircle(x, y, thickness/2, c)
}
