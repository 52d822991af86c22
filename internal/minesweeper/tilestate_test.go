package minesweeper

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateOf_DecisionOrder(t *testing.T) {
	b, err := NewBoard(8, 1)
	require.NoError(t, err)
	// col: mined flagged revealed
	set := [][3]bool{
		{false, false, false}, // 0 covered
		{false, true, false},  // 1 flag
		{false, false, true},  // 2 empty
		{true, false, true},   // 3 bomb
		{true, true, true},    // 4 bomb beats flag
		{false, true, true},   // 5 revealed flag shows empty
		{true, false, false},  // 6 hidden mine stays covered
		{true, true, false},   // 7 flag over hidden mine
	}
	want := []TileState{StateCovered, StateFlag, StateEmpty, StateBomb, StateBomb, StateEmpty, StateCovered, StateFlag}
	for col, s := range set {
		b.SetMined(col, 0, s[0])
		b.SetFlagged(col, 0, s[1])
		b.SetRevealed(col, 0, s[2])
	}
	for col, w := range want {
		if got := StateOf(b, Cell{col, 0}); got != w {
			t.Fatalf("col %d: state=%s, want %s", col, got, w)
		}
	}
}

func TestTileStateTable_Lookup(t *testing.T) {
	table := NewTileStateTable("c", "e", "f", "b")
	assert.Equal(t, "c", table.Lookup(StateCovered))
	assert.Equal(t, "e", table.Lookup(StateEmpty))
	assert.Equal(t, "f", table.Lookup(StateFlag))
	assert.Equal(t, "b", table.Lookup(StateBomb))
	assert.Panics(t, func() { table.Lookup(TileState(42)) })
}

func TestTileStateTable_SharesHandles(t *testing.T) {
	type material struct{ name string }
	covered := &material{"covered"}
	table := NewTileStateTable(covered, &material{"empty"}, &material{"flag"}, &material{"bomb"})
	tt := NewTileTable(3, 3, Viewport{Width: 90, Height: 90}, table.Lookup(StateCovered))
	for _, tile := range tt.Tiles() {
		if tile.Appearance != covered {
			t.Fatalf("tile %v does not share the covered handle", tile.Cell)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 179, G: 179, B: 179, A: 255}, DefaultPalette.Lookup(StateCovered))
	assert.Equal(t, color.RGBA{R: 51, G: 51, B: 51, A: 255}, DefaultPalette.Lookup(StateEmpty))
	assert.Equal(t, color.RGBA{R: 102, G: 204, B: 77, A: 255}, DefaultPalette.Lookup(StateFlag))
	assert.Equal(t, color.RGBA{R: 204, G: 51, B: 26, A: 255}, DefaultPalette.Lookup(StateBomb))
}

func TestTileState_StringAndGlyph(t *testing.T) {
	assert.Equal(t, "covered", StateCovered.String())
	assert.Equal(t, "bomb", StateBomb.String())
	assert.Equal(t, "TileState(9)", TileState(9).String())
	assert.Equal(t, byte('F'), StateFlag.Glyph())
	assert.Equal(t, byte('.'), StateCovered.Glyph())
}

func TestTileTable_AtAndSink(t *testing.T) {
	tt := NewTileTable(4, 2, Viewport{Width: 400, Height: 400}, StateCovered)
	assert.Len(t, tt.Tiles(), 8)
	assert.Nil(t, tt.At(Cell{4, 0}))
	assert.Nil(t, tt.At(Cell{0, -1}))

	var sink TileSink[TileState] = tt
	sink.SetAppearance(Cell{3, 1}, StateFlag)
	assert.Equal(t, StateFlag, tt.At(Cell{3, 1}).Appearance)
	assert.Equal(t, Cell{3, 1}, tt.At(Cell{3, 1}).Cell)
	sink.SetAppearance(Cell{9, 9}, StateBomb) // off-board: ignored

	tt.Fill(StateEmpty)
	for _, tile := range tt.Tiles() {
		assert.Equal(t, StateEmpty, tile.Appearance)
	}
}
