package minesweeper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
	"github.com/gnolang/overflow"
)

// ErrInvalidDimensions is returned by NewBoard for zero, negative or overflowing sizes.
var ErrInvalidDimensions = errors.New("invalid board dimensions")

// Cell is one (col, row) position on the board. Row 0 is the bottom edge.
type Cell struct {
	Col int
	Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Board holds the per-cell state as three independent bitsets of width*height
// bits each, indexed row*width + col.
//
// Every accessor taking (col, row) requires 0 <= col < width and
// 0 <= row < height. A violation is a programming error and panics; use
// Contains when the coordinate has not been through MapToCell.
type Board struct {
	width    int
	height   int
	mined    *bitset.BitSet
	flagged  *bitset.BitSet
	revealed *bitset.BitSet
}

// NewBoard allocates a width x height board with every bit clear.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	size, ok := overflow.Mul(width, height)
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	n := uint(size)
	return &Board{
		width:    width,
		height:   height,
		mined:    bitset.New(n),
		flagged:  bitset.New(n),
		revealed: bitset.New(n),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Len returns the number of cells.
func (b *Board) Len() int { return b.width * b.height }

// Contains reports whether (col, row) lies on the board.
func (b *Board) Contains(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

func (b *Board) index(col, row int) uint {
	if !b.Contains(col, row) {
		panic(fmt.Sprintf("minesweeper: cell (%d,%d) outside %dx%d board", col, row, b.width, b.height))
	}
	return uint(row*b.width + col)
}

func (b *Board) IsMined(col, row int) bool { return b.mined.Test(b.index(col, row)) }
func (b *Board) IsFlagged(col, row int) bool { return b.flagged.Test(b.index(col, row)) }
func (b *Board) IsRevealed(col, row int) bool { return b.revealed.Test(b.index(col, row)) }

// SetFlagged writes the flagged bit of (col, row).
func (b *Board) SetFlagged(col, row int, v bool) {
	b.flagged.SetTo(b.index(col, row), v)
}

// SetRevealed writes the revealed bit of (col, row).
func (b *Board) SetRevealed(col, row int, v bool) {
	b.revealed.SetTo(b.index(col, row), v)
}

// ToggleFlagged flips the flagged bit of (col, row) and returns its new value.
func (b *Board) ToggleFlagged(col, row int) bool {
	i := b.index(col, row)
	b.flagged.Flip(i)
	return b.flagged.Test(i)
}

// SetMined writes the mined bit of (col, row). Normal play never places mines;
// this exists for scenario setup.
func (b *Board) SetMined(col, row int, v bool) {
	b.mined.SetTo(b.index(col, row), v)
}

// Reset clears every bit of every set.
func (b *Board) Reset() {
	b.mined.ClearAll()
	b.flagged.ClearAll()
	b.revealed.ClearAll()
}

// Counts returns the population count of each set.
func (b *Board) Counts() (mined, flagged, revealed int) {
	return int(b.mined.Count()), int(b.flagged.Count()), int(b.revealed.Count())
}

// Fingerprint hashes all three sets with the bits of exclude masked out, so two
// fingerprints taken around a mutation of exclude match iff nothing else changed.
// Pass a cell outside the board to hash everything.
func (b *Board) Fingerprint(exclude Cell) uint64 {
	h := xxhash.New()
	skip := -1
	if b.Contains(exclude.Col, exclude.Row) {
		skip = exclude.Row*b.width + exclude.Col
	}
	var buf [1]byte
	for _, set := range []*bitset.BitSet{b.mined, b.flagged, b.revealed} {
		for i := 0; i < b.Len(); i++ {
			buf[0] = '0'
			if i != skip && set.Test(uint(i)) {
				buf[0] = '1'
			}
			_, _ = h.Write(buf[:])
		}
		_, _ = h.Write([]byte{'|'})
	}
	return h.Sum64()
}

// String renders the board top row first, one rune per cell:
//
//	.  covered   F  flag   ' '  empty   *  bomb
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for row := b.height - 1; row >= 0; row-- {
		for col := 0; col < b.width; col++ {
			sb.WriteByte(StateOf(b, Cell{col, row}).Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
