package render

import "math"

// MetricKind identifies which per-metric zoom/gamma table a sparkline
// or series line should use.
type MetricKind int

const (
	MetricCPU MetricKind = iota
	MetricTemp
	MetricNet1
	MetricNet2
)

// zoomParams is the (zoom_start, zoom_end, min_range) tuple per metric
// kind, ported from the reference SparklineZoom namespace.
type zoomParams struct {
	zoomStart, zoomEnd, minRange float64
	animKey                      string
}

var zoomTable = map[MetricKind]zoomParams{
	MetricCPU:  {zoomStart: 5, zoomEnd: 60, minRange: 0.5, animKey: "spark_gamma_cpu"},
	MetricTemp: {zoomStart: 30, zoomEnd: 70, minRange: 0.2, animKey: "spark_gamma_temp"},
	MetricNet1: {zoomStart: 20, zoomEnd: 800, minRange: 1.0, animKey: "spark_gamma_net1"},
	MetricNet2: {zoomStart: 20, zoomEnd: 800, minRange: 1.0, animKey: "spark_gamma_net2"},
}

const (
	gammaMin = 0.55
	gammaMax = 1.0

	fillIntensitySeries = 0.55
	fillDecaySeries     = 1.4
	fillAlphaSpark      = 0.70
	fillDecaySpark      = 1.5
)

// SparklineLayers toggles the independently-switchable visual effects.
type SparklineLayers struct {
	Shadow            bool
	EnhancedFill      bool
	ColorZones        bool
	GradientLine      bool
	DynamicWidth      bool
	PeakHighlight     bool
	Particles         bool
	BaselineShimmer   bool
	Pulse             bool
	SmoothTransitions bool
}

// Animator is the minimal interface sparklines need from the animation
// engine, so this package doesn't import anim directly.
type Animator interface {
	SetTarget(key string, value float64)
	Get(key string, def float64) float64
}

// Sparkline draws one metric's history as a small inline chart inside
// (x,y,w,h), using the LUTs for fill decay and the animation engine to
// smooth the visual gamma transition between zoom levels.
func (f *Framebuffer) Sparkline(luts *LUTs, anim Animator, timeSec float64, x, y, w, h int, data []float64, minVal, maxVal float64, lineColor, bgColor Color, lineWidth int, kind MetricKind, layers SparklineLayers) {
	f.Rect(x, y, w, h, bgColor)
	if len(data) == 0 || w <= 0 || h <= 0 {
		return
	}

	zp := zoomTable[kind]
	last := data[len(data)-1]

	dataMin, dataMax := data[0], data[0]
	for _, v := range data {
		dataMin = minFloat(dataMin, v)
		dataMax = maxFloat(dataMax, v)
	}
	dataRange := dataMax - dataMin
	flatThreshold := maxFloat(0.03*(maxVal-minVal), zp.minRange*0.2)
	flat := dataRange < flatThreshold

	ref := 0.7*maxVal + 0.3*last
	t := clampFloat((ref-zp.zoomStart)/(zp.zoomEnd-zp.zoomStart), 0, 1)
	gammaTarget := gammaMin + t*(gammaMax-gammaMin)
	gamma := gammaTarget
	if layers.SmoothTransitions {
		anim.SetTarget(zp.animKey, gammaTarget)
		gamma = anim.Get(zp.animKey, gammaTarget)
	}

	n := len(data)
	points := make([][2]float64, n)
	for i, v := range data {
		var norm float64
		if flat {
			norm = clampFloat((last-minVal)/(maxVal-minVal), 0, 1)
		} else {
			norm = clampFloat((v-minVal)/(maxVal-minVal), 0, 1)
		}
		norm = math.Pow(norm, gamma)
		px := float64(x)
		if n > 1 {
			px += float64(i) / float64(n-1) * float64(w)
		}
		py := float64(y+h) - norm*float64(h)
		points[i] = [2]float64{px, py}
	}

	if layers.Shadow {
		for i := 0; i < len(points)-1; i++ {
			f.Line(int(points[i][0])+1, int(points[i][1])+2, int(points[i+1][0])+1, int(points[i+1][1])+2, ScaleColor(bgColor, 0.4))
		}
	}

	if layers.EnhancedFill {
		f.sparklineFill(luts, x, y, h, points, lineColor, fillAlphaSpark, fillDecaySpark)
	}

	width := lineWidth
	for i := 0; i < len(points)-1; i++ {
		c := lineColor
		if layers.ColorZones {
			zoneT := clampFloat((points[i][1]-float64(y))/float64(h), 0, 1)
			c = zoneColor(lineColor, 1-zoneT)
		}
		if layers.GradientLine {
			normVal := clampFloat((float64(y+h)-points[i][1])/float64(h), 0, 1)
			switch {
			case normVal < 0.33:
				c = InterpolateColor(c, RGB(80, 160, 255), 0.3)
			case normVal > 0.66:
				c = InterpolateColor(c, RGB(255, 140, 80), 0.3)
			}
		}
		lw := width
		if layers.DynamicWidth {
			normVal := clampFloat((float64(y+h)-points[i][1])/float64(h), 0, 1)
			if normVal > 0.5 {
				lw++
			}
		}
		drawThickLine(f, points[i], points[i+1], c, lw)
	}

	if layers.PeakHighlight {
		f.highlightPeaks(points, lineColor, y, h)
	}

	if layers.Particles {
		f.sparklineParticles(luts, timeSec, points, lineColor)
	}

	if layers.BaselineShimmer {
		f.baselineShimmer(luts, timeSec, x, y+h-1, w, DimColor(lineColor))
	}

	if layers.Pulse && n > 0 {
		last := points[n-1]
		radius := 2.0 + 1.5*(0.5+0.5*luts.FastSin(timeSec*3))
		f.FilledCircle(int(last[0]), int(last[1]), int(radius), lineColor)
	}
}

// sparklineParticles trails a few fading dots behind steep segments,
// drifting along the segment's slope and pulsing with timeSec so rapid
// changes in the data read as motion rather than a static kink.
func (f *Framebuffer) sparklineParticles(luts *LUTs, timeSec float64, points [][2]float64, c Color) {
	const steepness = 2.0
	const trailLen = 3
	for i := 1; i < len(points); i++ {
		dx := points[i][0] - points[i-1][0]
		dy := points[i][1] - points[i-1][1]
		if math.Abs(dy) < steepness {
			continue
		}
		phase := 0.5 + 0.5*luts.FastSin(timeSec*4+float64(i))
		for t := 1; t <= trailLen; t++ {
			frac := float64(t) / float64(trailLen+1)
			px := int(points[i][0] - dx*frac)
			py := int(points[i][1] - dy*frac)
			alpha := (1 - frac) * 0.6 * phase
			if alpha <= 0.02 {
				continue
			}
			f.Set(px, py, InterpolateColor(f.At(px, py), c, alpha))
		}
	}
}

func (f *Framebuffer) sparklineFill(luts *LUTs, x, y, h int, points [][2]float64, c Color, alpha, decay float64) {
	baseline := float64(y + h)
	for i := 0; i < len(points); i++ {
		px, py := points[i][0], points[i][1]
		for yy := int(py); yy < y+h; yy++ {
			depth := (float64(yy) - py) / maxFloat(baseline-py, 1)
			a := alpha * luts.FastExp(depth*decay)
			if a <= 0.02 {
				break
			}
			blended := InterpolateColor(f.At(int(px), yy), c, a)
			f.Set(int(px), yy, blended)
		}
	}
}

func zoneColor(base Color, warmth float64) Color {
	cool := RGB(80, 160, 255)
	warm := RGB(255, 120, 80)
	if warmth < 0.5 {
		return InterpolateColor(base, cool, (0.5-warmth)*0.6)
	}
	return InterpolateColor(base, warm, (warmth-0.5)*0.6)
}

func drawThickLine(f *Framebuffer, a, b [2]float64, c Color, width int) {
	f.Line(int(a[0]), int(a[1]), int(b[0]), int(b[1]), c)
	for w := 1; w < width; w++ {
		f.Line(int(a[0]), int(a[1])-w, int(b[0]), int(b[1])-w, c)
	}
}

// highlightPeaks glows local maxima (window of 5) that normalize above
// 0.6, drawing a soft 3-ring bloom.
func (f *Framebuffer) highlightPeaks(points [][2]float64, c Color, y, h int) {
	n := len(points)
	for i := 2; i < n-2; i++ {
		isPeak := points[i][1] < points[i-1][1] && points[i][1] < points[i-2][1] &&
			points[i][1] < points[i+1][1] && points[i][1] < points[i+2][1]
		if !isPeak {
			continue
		}
		if (float64(y+h)-points[i][1])/float64(h) <= 0.6 {
			continue
		}
		cx, cy := int(points[i][0]), int(points[i][1])
		for r := 3; r >= 1; r-- {
			f.Circle(cx, cy, r, ScaleColor(c, 1.0+float64(r)*0.1))
		}
	}
}

func (f *Framebuffer) baselineShimmer(luts *LUTs, timeSec float64, x, y, w int, c Color) {
	for i := 0; i < w; i += 4 {
		brightness := 0.5 + 0.5*luts.FastSin(timeSec*2+float64(i)*0.3)
		f.Set(x+i, y, ScaleColor(c, brightness))
	}
}

// SeriesLine draws a plain, unlayered trend line with a soft alpha-blended
// fill under it — used to overlay a secondary metric on top of a large
// panel's primary Sparkline without competing for its layer effects.
func (f *Framebuffer) SeriesLine(luts *LUTs, x, y, w, h int, data []float64, minVal, maxVal float64, lineColor, shadowColor Color, width int) {
	if len(data) < 2 {
		return
	}
	n := len(data)
	points := make([][2]float64, n)
	for i, v := range data {
		norm := clampFloat((v-minVal)/(maxVal-minVal), 0, 1)
		px := float64(x) + float64(i)/float64(n-1)*float64(w)
		py := float64(y+h) - norm*float64(h)
		points[i] = [2]float64{px, py}
	}
	for i := 0; i < len(points)-1; i++ {
		f.Line(int(points[i][0]), int(points[i][1])+1, int(points[i+1][0]), int(points[i+1][1])+1, shadowColor)
	}
	for i := 0; i < len(points)-1; i++ {
		drawThickLine(f, points[i], points[i+1], lineColor, width)
	}
	f.sparklineFill(luts, x, y, h, points, lineColor, fillIntensitySeries, fillDecaySeries)
}
