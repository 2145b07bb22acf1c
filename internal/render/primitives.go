package render

// Rect fills an axis-aligned rectangle. Out-of-range pixels are
// silently dropped by Framebuffer.Set.
func (f *Framebuffer) Rect(x, y, w, h int, c Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			f.Set(xx, yy, c)
		}
	}
}

// Line draws a Bresenham line from (x0,y0) to (x1,y1).
func (f *Framebuffer) Line(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		f.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws an unfilled circle outline via the midpoint algorithm.
func (f *Framebuffer) Circle(cx, cy, r int, c Color) {
	x, y := r, 0
	err := 0
	for x >= y {
		f.plot8(cx, cy, x, y, c)
		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func (f *Framebuffer) plot8(cx, cy, x, y int, c Color) {
	f.Set(cx+x, cy+y, c)
	f.Set(cx+y, cy+x, c)
	f.Set(cx-y, cy+x, c)
	f.Set(cx-x, cy+y, c)
	f.Set(cx-x, cy-y, c)
	f.Set(cx-y, cy-x, c)
	f.Set(cx+y, cy-x, c)
	f.Set(cx+x, cy-y, c)
}

// FilledCircle fills a disc of radius r via integer per-row scans,
// avoiding sqrt for small radii ("integer scan-lines
// for small filled circles").
func (f *Framebuffer) FilledCircle(cx, cy, r int, c Color) {
	if r <= 10 {
		for dy := -r; dy <= r; dy++ {
			// integer search for the row half-width instead of sqrt
			dx := 0
			for dx*dx+dy*dy <= r*r {
				dx++
			}
			dx--
			f.Rect(cx-dx, cy+dy, 2*dx+1, 1, c)
		}
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		dx := isqrt(rr - dy*dy)
		f.Rect(cx-dx, cy+dy, 2*dx+1, 1, c)
	}
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// RoundedRect draws a filled rounded rectangle: an outer border fill
// followed by an inner fill inset by 1px.
func (f *Framebuffer) RoundedRect(x, y, w, h, r int, fill, border Color) {
	f.roundedRectFill(x, y, w, h, r, border)
	if w > 2 && h > 2 {
		f.roundedRectFill(x+1, y+1, w-2, h-2, maxInt(r-1, 0), fill)
	}
}

func (f *Framebuffer) roundedRectFill(x, y, w, h, r int, c Color) {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	for yy := 0; yy < h; yy++ {
		var inset int
		if yy < r {
			dy := r - yy
			inset = r - isqrt(r*r-dy*dy)
		} else if yy >= h-r {
			dy := yy - (h - r) + 1
			inset = r - isqrt(r*r-dy*dy)
		}
		f.Rect(x+inset, y+yy, w-2*inset, 1, c)
	}
}

// VGradient fills a rectangle with a vertical gradient interpolating
// c1 (top) to c2 (bottom).
func (f *Framebuffer) VGradient(x, y, w, h int, c1, c2 Color) {
	if h <= 1 {
		f.Rect(x, y, w, h, c1)
		return
	}
	for row := 0; row < h; row++ {
		t := float64(row) / float64(h-1)
		f.Rect(x, y+row, w, 1, InterpolateColor(c1, c2, t))
	}
}

// Grid draws a dot grid over the region, spaced cell pixels apart with
// the given offset (the background texture drawn when the grid option
// is enabled).
func (f *Framebuffer) Grid(x, y, w, h, cell, offsetX, offsetY int, c Color) {
	if cell <= 0 {
		return
	}
	for gy := y + offsetY%cell; gy < y+h; gy += cell {
		for gx := x + offsetX%cell; gx < x+w; gx += cell {
			f.Set(gx, gy, c)
		}
	}
}

// AlphaBlit composites a straight-alpha RGBA source image onto the
// framebuffer at (x,y), used for icon/thumbnail compositing.
func (f *Framebuffer) AlphaBlit(x, y, srcW, srcH int, rgba []uint8) {
	for sy := 0; sy < srcH; sy++ {
		for sx := 0; sx < srcW; sx++ {
			i := (sy*srcW + sx) * 4
			a := rgba[i+3]
			if a == 0 {
				continue
			}
			dx, dy := x+sx, y+sy
			if a == 255 {
				f.Set(dx, dy, RGB888ToRGB565(rgba[i], rgba[i+1], rgba[i+2]))
				continue
			}
			bg := f.At(dx, dy)
			br, bg2, bb := RGB565ToRGB888(bg)
			af := float64(a) / 255.0
			r := uint8(float64(rgba[i])*af + float64(br)*(1-af))
			g := uint8(float64(rgba[i+1])*af + float64(bg2)*(1-af))
			b := uint8(float64(rgba[i+2])*af + float64(bb)*(1-af))
			f.Set(dx, dy, RGB888ToRGB565(r, g, b))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
