package minesweeper

import "math"

// Point is a position in normalized board space: the board spans [-1,1] on
// both axes and y grows upward.
type Point struct {
	X float64
	Y float64
}

// MapToCell converts a normalized point to the board cell under it.
//
//	col = floor((x+1)/2*width)   row = floor((y+1)/2*height)
//
// ok is false when the point falls outside [0,width) x [0,height), including
// x == 1 or y == 1 exactly, and for NaN or infinite coordinates.
func MapToCell(p Point, width, height int) (c Cell, ok bool) {
	if width <= 0 || height <= 0 {
		return Cell{}, false
	}
	fc := math.Floor((p.X + 1) / 2 * float64(width))
	fr := math.Floor((p.Y + 1) / 2 * float64(height))
	// Compare as floats before converting; NaN fails both checks.
	if !(fc >= 0 && fc < float64(width)) || !(fr >= 0 && fr < float64(height)) {
		return Cell{}, false
	}
	return Cell{Col: int(fc), Row: int(fr)}, true
}

// CellCenter is the inverse placement of MapToCell: the normalized centre of c.
func CellCenter(c Cell, width, height int) Point {
	return Point{
		X: 2*((float64(c.Col)+0.5)/float64(width)) - 1,
		Y: 2*((float64(c.Row)+0.5)/float64(height)) - 1,
	}
}
