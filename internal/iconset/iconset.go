// Package iconset builds a small atlas of pre-rasterized status icons
// once at startup, so the render hot path only ever alpha-blits
// pre-rendered RGBA sprites instead of touching a vector rasterizer
// per frame.
package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Icon names, one per glyph the dashboard draws in the header/footer
// and services panel.
const (
	IconWAN     = "wan"
	IconDocker  = "docker"
	IconDisk    = "disk"
	IconVPN     = "vpn"
	IconGame    = "game"
	IconPrinter = "printer"
	IconCPU     = "cpu"
	IconMem     = "mem"
	IconTemp    = "temp"
	IconNet     = "net"
)

// Set is an atlas of pre-rendered RGBA sprites, keyed by icon name.
type Set struct {
	sprites map[string]*image.RGBA
}

// Get returns the sprite for name, or nil if it was never built.
func (s *Set) Get(name string) *image.RGBA {
	return s.sprites[name]
}

// Build rasterizes every entry in defs at size px, producing a Set
// ready for AlphaBlit at render time.
func Build(defs map[string]string, px int) (*Set, error) {
	s := &Set{sprites: make(map[string]*image.RGBA, len(defs))}
	for name, svg := range defs {
		img, err := rasterizeSVG([]byte(svg), px, px)
		if err != nil {
			return nil, fmt.Errorf("iconset: rasterize %q: %w", name, err)
		}
		s.sprites[name] = img
	}
	return s, nil
}

// rasterizeSVG decodes an SVG document and rasterizes it into an
// RGBA canvas of the requested size using oksvg's rasterx backend.
func rasterizeSVG(svgData []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0}), image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return rgba, nil
}

// RoundedIconBackdrop draws an anti-aliased rounded-rect card for an
// icon. Build does not call it, so the atlas holds no backdrops, and
// nothing in the per-frame render loop calls it either.
func RoundedIconBackdrop(w, h int, radius float64, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(fill)
	drawRoundedRectPath(gc, 1, 1, float64(w-2), float64(h-2), radius)
	gc.Fill()
	return img
}

func drawRoundedRectPath(gc *draw2dimg.GraphicContext, x, y, w, h, r float64) {
	gc.MoveTo(x+r, y)
	gc.LineTo(x+w-r, y)
	gc.ArcTo(x+w-r, y+r, r, r, -90, 90)
	gc.LineTo(x+w, y+h-r)
	gc.ArcTo(x+w-r, y+h-r, r, r, 0, 90)
	gc.LineTo(x+r, y+h)
	gc.ArcTo(x+r, y+h-r, r, r, 90, 90)
	gc.LineTo(x, y+r)
	gc.ArcTo(x+r, y+r, r, r, 180, 90)
	gc.Close()
}
