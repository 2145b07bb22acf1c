package render

// Layout constants for the 480x320 panel, ported from the reference
// Layout namespace.
const (
	ScreenWidth  = 480
	ScreenHeight = 320

	HeaderHeight = 42
	FooterHeight = 20
	Margin       = 12
	Gap          = 10
	LeftPanelW   = 310
	VitalsH      = 160
)

// Rect is an axis-aligned pixel rectangle used to describe panel
// geometry ahead of drawing into it.
type Rect struct {
	X, Y, W, H int
}

// contentArea is the region between the header and footer bars, inset
// by Margin on every remaining side.
func contentArea() Rect {
	top := HeaderHeight + Margin
	bottom := ScreenHeight - FooterHeight - Margin
	return Rect{X: Margin, Y: top, W: ScreenWidth - 2*Margin, H: bottom - top}
}

// mainPanels lays out the two stacked left graph panels and the right
// vitals panel for the main view.
func mainPanels() (network, cpuTemp, vitals Rect) {
	area := contentArea()
	rightW := area.W - LeftPanelW - Gap

	graphH := (area.H - Gap) / 2
	network = Rect{X: area.X, Y: area.Y, W: LeftPanelW, H: graphH}
	cpuTemp = Rect{X: area.X, Y: area.Y + graphH + Gap, W: LeftPanelW, H: area.H - graphH - Gap}

	vitalsY := area.Y + (area.H-VitalsH)/2
	if vitalsY < area.Y {
		vitalsY = area.Y
	}
	vitals = Rect{X: area.X + LeftPanelW + Gap, W: rightW, Y: vitalsY, H: minInt(VitalsH, area.H)}
	return
}

// printPanels lays out the thumbnail-preview and status panels for
// the print view.
func printPanels() (preview, status Rect) {
	area := contentArea()
	previewW := area.W * 2 / 5
	preview = Rect{X: area.X, Y: area.Y, W: previewW, H: area.H}
	status = Rect{X: area.X + previewW + Gap, Y: area.Y, W: area.W - previewW - Gap, H: area.H}
	return
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
