package render

// Theme is an immutable palette of 18 named RGB565 colors, selected
// once at startup. Field order and values are ported
// directly from the reference Theme.h.
type Theme struct {
	BGTopActive    Color
	BGBottomActive Color
	BGTopIdle      Color
	BGBottomIdle   Color
	IconNormal     Color
	IconDim        Color
	TextValue      Color
	TextStatus     Color
	StateLow       Color
	StateMedium    Color
	StateHigh      Color
	AccentInfo     Color
	AccentTime     Color
	BarBG          Color
	BarBorder      Color
	SparkBG        Color
	GridColor      Color
	BandColor      Color
}

// Thresholds gives the three-band (low/medium/high) cutoffs used by
// PickStateColor for one metric kind.
type Thresholds struct {
	Low, Medium, High float64
}

// Palettes holds every named theme.
var Palettes = map[string]Theme{
	"neutral": {
		BGTopActive: RGB(8, 8, 16), BGBottomActive: RGB(2, 2, 6),
		BGTopIdle: RGB(4, 4, 8), BGBottomIdle: RGB(1, 1, 4),
		IconNormal: RGB(200, 200, 200), IconDim: RGB(80, 80, 80),
		TextValue: RGB(220, 220, 220), TextStatus: RGB(140, 140, 140),
		StateLow: RGB(60, 180, 120), StateMedium: RGB(220, 180, 60), StateHigh: RGB(220, 80, 60),
		AccentInfo: RGB(80, 160, 200), AccentTime: RGB(180, 140, 100),
		BarBG: RGB(10, 10, 18), BarBorder: RGB(30, 30, 40), SparkBG: RGB(10, 10, 15),
		GridColor: RGB(30, 30, 40), BandColor: RGB(0, 0, 0),
	},
	"neon": {
		BGTopActive: RGB(10, 6, 20), BGBottomActive: RGB(3, 2, 8),
		BGTopIdle: RGB(6, 4, 12), BGBottomIdle: RGB(2, 1, 5),
		IconNormal: RGB(210, 240, 255), IconDim: RGB(70, 90, 110),
		TextValue: RGB(220, 240, 255), TextStatus: RGB(150, 170, 200),
		StateLow: RGB(0, 220, 200), StateMedium: RGB(255, 120, 180), StateHigh: RGB(255, 110, 60),
		AccentInfo: RGB(120, 190, 255), AccentTime: RGB(255, 160, 90),
		BarBG: RGB(14, 10, 24), BarBorder: RGB(40, 35, 60), SparkBG: RGB(14, 12, 24),
		GridColor: RGB(40, 35, 60), BandColor: RGB(0, 0, 0),
	},
	"orange": {
		BGTopActive: RGB(16, 10, 18), BGBottomActive: RGB(7, 4, 9),
		BGTopIdle: RGB(10, 7, 12), BGBottomIdle: RGB(4, 3, 6),
		IconNormal: RGB(235, 220, 200), IconDim: RGB(110, 90, 80),
		TextValue: RGB(240, 225, 210), TextStatus: RGB(170, 145, 120),
		StateLow: RGB(80, 200, 140), StateMedium: RGB(245, 150, 60), StateHigh: RGB(255, 100, 50),
		AccentInfo: RGB(245, 130, 60), AccentTime: RGB(255, 150, 70),
		BarBG: RGB(18, 12, 16), BarBorder: RGB(40, 30, 25), SparkBG: RGB(14, 10, 12),
		GridColor: RGB(245, 130, 60), BandColor: RGB(0, 0, 0),
	},
}

// MetricThresholds gives each polled metric's low/medium/high state
// bands, ported from the reference THRESHOLDS table.
var MetricThresholds = map[string]Thresholds{
	"cpu":  {Low: 40, Medium: 70, High: 90},
	"ram":  {Low: 60, Medium: 80, High: 95},
	"temp": {Low: 50, Medium: 65, High: 80},
	"net":  {Low: 800, Medium: 1800, High: 2500},
}

// ThemeOrDefault resolves a theme name, falling back to "neutral" for
// anything unrecognized.
func ThemeOrDefault(name string) (Theme, string) {
	if t, ok := Palettes[name]; ok {
		return t, name
	}
	return Palettes["neutral"], "neutral"
}

// PickStateColor classifies value against key's threshold band and
// returns the matching theme state color.
func (t Theme) PickStateColor(value float64, key string) Color {
	th, ok := MetricThresholds[key]
	if !ok {
		return t.StateLow
	}
	switch {
	case value >= th.High:
		return t.StateHigh
	case value >= th.Medium:
		return t.StateMedium
	default:
		return t.StateLow
	}
}
