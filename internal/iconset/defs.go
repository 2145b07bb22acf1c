package iconset

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
)

// DefaultDefs returns the SVG source for the atlas's fixed icon set.
// Simple glyphs are generated procedurally with svgo rather than
// hand-authored, so their geometry stays in lockstep with px sizing.
func DefaultDefs(px int) map[string]string {
	return map[string]string{
		IconWAN:     ringGlyph(px, "#39d353"),
		IconDocker:  boxGlyph(px, "#2496ed"),
		IconDisk:    diskGlyph(px, "#c0c0c0"),
		IconVPN:     shieldGlyph(px, "#8a5cf6"),
		IconGame:    boxGlyph(px, "#f0883e"),
		IconPrinter: boxGlyph(px, "#58a6ff"),
		IconCPU:     ringGlyph(px, "#ff7b72"),
		IconMem:     ringGlyph(px, "#79c0ff"),
		IconTemp:    ringGlyph(px, "#ffa657"),
		IconNet:     ringGlyph(px, "#56d364"),
	}
}

func ringGlyph(px int, stroke string) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(px, px)
	r := px/2 - px/8
	canvas.Circle(px/2, px/2, r, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", stroke, px/8))
	canvas.End()
	return buf.String()
}

func boxGlyph(px int, fill string) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(px, px)
	margin := px / 6
	canvas.Roundrect(margin, margin, px-2*margin, px-2*margin, px/8, px/8, fmt.Sprintf("fill:%s", fill))
	canvas.End()
	return buf.String()
}

func diskGlyph(px int, fill string) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(px, px)
	canvas.Circle(px/2, px/2, px/2-2, fmt.Sprintf("fill:%s", fill))
	canvas.Circle(px/2, px/2, px/6, "fill:#1a1a1a")
	canvas.End()
	return buf.String()
}

func shieldGlyph(px int, fill string) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(px, px)
	xs := []int{px / 2, px - px/6, px - px/6, px / 2, px / 6, px / 6}
	ys := []int{px / 12, px / 4, px / 2, px - px/12, px / 2, px / 4}
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s", fill))
	canvas.End()
	return buf.String()
}
