// Package differ computes the minimal set of dirty rectangles between
// two RGB565 framebuffers, escalating to a full-frame repaint when the
// dirty area or rectangle count exceeds a budget.
package differ

// Rect is an axis-aligned pixel rectangle: x,y is the top-left and w,h
// are the width and height, so it covers [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Config bounds the differ's behavior.
type Config struct {
	TileSize           int
	MaxRects           int
	FullFrameThreshold float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{TileSize: 16, MaxRects: 8, FullFrameThreshold: 0.6}
}

// Result is the outcome of one Diff call.
type Result struct {
	FullFrame bool
	Rects     []Rect
}

// Diff compares prev and cur (both row-major RGB565 buffers of the
// given width/height) and returns the rectangles that must be
// retransmitted, or FullFrame=true if the escalation threshold was
// crossed.
//
// Tile-based byte comparison followed by a 4-connected flood fill over
// dirty tiles to build minimal bounding rectangles.
func Diff(prev, cur []uint16, width, height int, cfg Config) Result {
	tile := cfg.TileSize
	if tile < 1 {
		tile = 1
	}
	tilesX := (width + tile - 1) / tile
	tilesY := (height + tile - 1) / tile

	dirty := make([]bool, tilesX*tilesY)
	dirtyTileCount := 0

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tile
			y0 := ty * tile
			x1 := min(x0+tile, width)
			y1 := min(y0+tile, height)
			if tileDiffers(prev, cur, width, x0, y0, x1, y1) {
				dirty[ty*tilesX+tx] = true
				dirtyTileCount++
			}
		}
	}

	if dirtyTileCount == 0 {
		return Result{}
	}

	dirtyArea := dirtyTileCount * tile * tile
	frameArea := width * height
	rects := floodFillRects(dirty, tilesX, tilesY, tile, width, height)

	if float64(dirtyArea)/float64(frameArea) > cfg.FullFrameThreshold || len(rects) > cfg.MaxRects {
		return Result{FullFrame: true}
	}
	return Result{Rects: rects}
}

func tileDiffers(prev, cur []uint16, stride, x0, y0, x1, y1 int) bool {
	for y := y0; y < y1; y++ {
		rowStart := y*stride + x0
		rowEnd := y*stride + x1
		for i := rowStart; i < rowEnd; i++ {
			if prev[i] != cur[i] {
				return true
			}
		}
	}
	return false
}

func floodFillRects(dirty []bool, tilesX, tilesY, tile, width, height int) []Rect {
	visited := make([]bool, len(dirty))
	var rects []Rect

	type point struct{ x, y int }

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			idx := ty*tilesX + tx
			if !dirty[idx] || visited[idx] {
				continue
			}

			minTX, minTY := tx, ty
			maxTX, maxTY := tx, ty
			stack := []point{{tx, ty}}
			visited[idx] = true

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				if p.x < minTX {
					minTX = p.x
				}
				if p.x > maxTX {
					maxTX = p.x
				}
				if p.y < minTY {
					minTY = p.y
				}
				if p.y > maxTY {
					maxTY = p.y
				}

				neighbors := [4]point{
					{p.x - 1, p.y}, {p.x + 1, p.y},
					{p.x, p.y - 1}, {p.x, p.y + 1},
				}
				for _, n := range neighbors {
					if n.x < 0 || n.x >= tilesX || n.y < 0 || n.y >= tilesY {
						continue
					}
					nidx := n.y*tilesX + n.x
					if dirty[nidx] && !visited[nidx] {
						visited[nidx] = true
						stack = append(stack, n)
					}
				}
			}

			rx0 := minTX * tile
			ry0 := minTY * tile
			rx1 := min((maxTX+1)*tile, width)
			ry1 := min((maxTY+1)*tile, height)
			rects = append(rects, Rect{X: rx0, Y: ry0, W: rx1 - rx0, H: ry1 - ry0})
		}
	}
	return rects
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
