package render

import "testing"

func TestMainPanelsFitWithinContentArea(t *testing.T) {
	area := contentArea()
	network, cpuTemp, vitals := mainPanels()

	if network.X < area.X || network.X+network.W > area.X+area.W {
		t.Fatalf("network panel %+v escapes content area %+v", network, area)
	}
	if vitals.X+vitals.W > area.X+area.W {
		t.Fatalf("vitals panel %+v escapes content area %+v", vitals, area)
	}
	if network.Y+network.H > cpuTemp.Y {
		t.Fatalf("network panel %+v overlaps cpu/temp panel %+v", network, cpuTemp)
	}
	if network.W != cpuTemp.W {
		t.Fatalf("left column panels have mismatched widths: %d vs %d", network.W, cpuTemp.W)
	}
}

func TestPrintPanelsSplitContentAreaWithoutOverlap(t *testing.T) {
	area := contentArea()
	preview, status := printPanels()

	if preview.X+preview.W > status.X {
		t.Fatalf("preview panel %+v overlaps status panel %+v", preview, status)
	}
	if status.X+status.W > area.X+area.W {
		t.Fatalf("status panel %+v escapes content area %+v", status, area)
	}
}
