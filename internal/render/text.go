package render

import (
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontSet loads a single TrueType/OpenType face at a handful of pixel
// sizes, the same approach as the reference dashboard's getFontFace
// (opentype.Parse + opentype.NewFace, DPI 72, full hinting).
type FontSet struct {
	parsed *opentype.Font
	faces  map[float64]font.Face
}

// LoadFontSet parses path once; faces at specific sizes are created
// lazily via Face.
func LoadFontSet(path string) (*FontSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &FontSet{parsed: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns (creating and caching if necessary) a font.Face at the
// given pixel size.
func (fs *FontSet) Face(size float64) (font.Face, error) {
	if f, ok := fs.faces[size]; ok {
		return f, nil
	}
	face, err := opentype.NewFace(fs.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	fs.faces[size] = face
	return face, nil
}

// rgbaAdapter lets a Framebuffer stand in as a draw.Image target for
// font.Drawer, translating RGBA writes into RGB565 blits and skipping
// fully transparent pixels ("alpha>0 pixels only").
type rgbaAdapter struct {
	fb    *Framebuffer
	color color.Color
}

func (a *rgbaAdapter) ColorModel() color.Model { return color.RGBAModel }
func (a *rgbaAdapter) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.fb.Width, a.fb.Height)
}
func (a *rgbaAdapter) At(x, y int) color.Color { return color.RGBA{} }
func (a *rgbaAdapter) Set(x, y int, c color.Color) {
	_, _, _, alpha := c.RGBA()
	if alpha == 0 {
		return
	}
	r, g, b, _ := a.color.RGBA()
	a.fb.Set(x, y, RGB888ToRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}

// DrawText draws text with its baseline dot at (x,y). When center is
// true, x is treated as the horizontal center instead of the left edge.
func (f *Framebuffer) DrawText(face font.Face, text string, x, y int, c Color, center bool) {
	r8, g8, b8 := RGB565ToRGB888(c)
	col := color.RGBA{r8, g8, b8, 255}
	dot := fixed.P(x, y)
	if center {
		w := font.MeasureString(face, text)
		dot.X -= w / 2
	}
	d := &font.Drawer{
		Dst:  &rgbaAdapter{fb: f, color: col},
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(text)
}

// MeasureTextWidth returns the advance width of text in pixels.
func MeasureTextWidth(face font.Face, text string) int {
	return font.MeasureString(face, text).Round()
}

// EllipsizeText truncates text with a trailing "..." so it fits within
// maxWidth pixels at face, returning text unchanged if it already fits.
func EllipsizeText(face font.Face, text string, maxWidth int) string {
	if MeasureTextWidth(face, text) <= maxWidth {
		return text
	}
	const ellipsis = "..."
	runes := []rune(text)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + ellipsis
		if MeasureTextWidth(face, candidate) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

// DrawTextClipped draws text but only pixels whose x falls within
// [clipX, clipX+clipW) and y within [clipY, clipY+clipH) are written —
// used to keep long filenames/ticker text from bleeding out of a panel.
func (f *Framebuffer) DrawTextClipped(face font.Face, text string, x, y int, c Color, clipX, clipY, clipW, clipH int) {
	clip := &clippedFramebuffer{fb: f, x0: clipX, y0: clipY, x1: clipX + clipW, y1: clipY + clipH}
	clip.DrawText(face, text, x, y, c)
}

// clippedFramebuffer restricts Set to a sub-rectangle of the underlying
// Framebuffer.
type clippedFramebuffer struct {
	fb             *Framebuffer
	x0, y0, x1, y1 int
}

func (c *clippedFramebuffer) DrawText(face font.Face, text string, x, y int, col Color) {
	r8, g8, b8 := RGB565ToRGB888(col)
	rc := color.RGBA{r8, g8, b8, 255}
	d := &font.Drawer{
		Dst:  &clippedAdapter{c: c, color: rc},
		Src:  image.NewUniform(rc),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

type clippedAdapter struct {
	c     *clippedFramebuffer
	color color.Color
}

func (a *clippedAdapter) ColorModel() color.Model { return color.RGBAModel }
func (a *clippedAdapter) Bounds() image.Rectangle {
	return image.Rect(a.c.x0, a.c.y0, a.c.x1, a.c.y1)
}
func (a *clippedAdapter) At(x, y int) color.Color { return color.RGBA{} }
func (a *clippedAdapter) Set(x, y int, col color.Color) {
	if x < a.c.x0 || x >= a.c.x1 || y < a.c.y0 || y >= a.c.y1 {
		return
	}
	_, _, _, alpha := col.RGBA()
	if alpha == 0 {
		return
	}
	r, g, b, _ := a.color.RGBA()
	a.c.fb.Set(x, y, RGB888ToRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}
