package minesweeper

import "math"

// tileFill is the fraction of a cell's pitch covered by its drawn square.
const tileFill = 0.85

// AspectRatioProvider supplies the current window geometry.
type AspectRatioProvider interface {
	// AspectRatio is width / height.
	AspectRatio() float64
	// Normalize converts window pixel coordinates (y down) to board space.
	Normalize(px, py float64) Point
}

// Viewport is the window area the board is drawn into, in pixels. The board
// is the largest centred square that fits, so normalized space is corrected
// for aspect ratio: one normalized unit is the same pixel length on both axes.
type Viewport struct {
	Width  float64
	Height float64
}

// AspectRatio returns Width/Height, or 1 for a degenerate viewport.
func (v Viewport) AspectRatio() float64 {
	if v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// Side is the pixel length of the board square.
func (v Viewport) Side() float64 {
	return math.Min(v.Width, v.Height)
}

// Normalize maps a pixel position to normalized board space.
func (v Viewport) Normalize(px, py float64) Point {
	half := v.Side() / 2
	if half <= 0 {
		return Point{X: math.Inf(1), Y: math.Inf(1)}
	}
	return Point{
		X: (px - v.Width/2) / half,
		Y: (v.Height/2 - py) / half,
	}
}

// Denormalize maps a normalized point back to window pixels.
func (v Viewport) Denormalize(p Point) (px, py float64) {
	half := v.Side() / 2
	return v.Width/2 + p.X*half, v.Height/2 - p.Y*half
}

// Place returns the pixel centre and drawn side length of the tile for c on
// a width x height board.
func (v Viewport) Place(c Cell, width, height int) (cx, cy, size float64) {
	cx, cy = v.Denormalize(CellCenter(c, width, height))
	size = tileFill * v.Side() / float64(width)
	return cx, cy, size
}
