package minesweeper

import (
	"fmt"
	"image/color"
)

// TileState is how a cell should currently be drawn.
type TileState uint8

const (
	StateCovered TileState = iota
	StateEmpty
	StateFlag
	StateBomb
	tileStateCount // sentinel
)

func (s TileState) String() string {
	switch s {
	case StateCovered:
		return "covered"
	case StateEmpty:
		return "empty"
	case StateFlag:
		return "flag"
	case StateBomb:
		return "bomb"
	default:
		return fmt.Sprintf("TileState(%d)", uint8(s))
	}
}

// Glyph is the single-byte form used by Board.String.
func (s TileState) Glyph() byte {
	switch s {
	case StateEmpty:
		return ' '
	case StateFlag:
		return 'F'
	case StateBomb:
		return '*'
	default:
		return '.'
	}
}

// StateOf resolves the visual state of c. First match wins:
// bomb (mined, revealed), flag (flagged, covered), empty (revealed), covered.
func StateOf(b *Board, c Cell) TileState {
	mined := b.IsMined(c.Col, c.Row)
	revealed := b.IsRevealed(c.Col, c.Row)
	switch {
	case mined && revealed:
		return StateBomb
	case b.IsFlagged(c.Col, c.Row) && !revealed:
		return StateFlag
	case revealed && !mined:
		return StateEmpty
	default:
		return StateCovered
	}
}

// TileStateTable maps every TileState to one appearance handle. Handles are
// stored once and handed out by value, so every tile in a state shares one.
type TileStateTable[H any] struct {
	handles [tileStateCount]H
}

// NewTileStateTable builds a fully populated table.
func NewTileStateTable[H any](covered, empty, flag, bomb H) TileStateTable[H] {
	var t TileStateTable[H]
	t.handles[StateCovered] = covered
	t.handles[StateEmpty] = empty
	t.handles[StateFlag] = flag
	t.handles[StateBomb] = bomb
	return t
}

// Lookup returns the handle for s.
func (t TileStateTable[H]) Lookup(s TileState) H {
	if s >= tileStateCount {
		panic(fmt.Sprintf("minesweeper: lookup of unknown %v", s))
	}
	return t.handles[s]
}

// DefaultPalette is the stock colour for each state.
var DefaultPalette = NewTileStateTable(
	srgb(0.7, 0.7, 0.7), // covered
	srgb(0.2, 0.2, 0.2), // empty
	srgb(0.4, 0.8, 0.3), // flag
	srgb(0.8, 0.2, 0.1), // bomb
)

func srgb(r, g, b float64) color.RGBA {
	return color.RGBA{R: uint8(r*255 + 0.5), G: uint8(g*255 + 0.5), B: uint8(b*255 + 0.5), A: 255}
}
