package minesweeper

// TileSink receives appearance changes for individual tiles.
type TileSink[H any] interface {
	SetAppearance(c Cell, h H)
}

// Tile is the drawable for one board cell.
type Tile[H any] struct {
	Cell       Cell
	X, Y       float64 // pixel centre
	Size       float64 // drawn side length in pixels
	Appearance H
}

// TileTable owns one Tile per cell, indexed row*width + col like the Board.
type TileTable[H any] struct {
	width  int
	height int
	tiles  []Tile[H]
}

// NewTileTable creates width*height tiles placed in vp, all showing initial.
func NewTileTable[H any](width, height int, vp Viewport, initial H) *TileTable[H] {
	tt := &TileTable[H]{
		width:  width,
		height: height,
		tiles:  make([]Tile[H], width*height),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			tt.tiles[row*width+col] = Tile[H]{Cell: Cell{col, row}, Appearance: initial}
		}
	}
	tt.Layout(vp)
	return tt
}

// Layout recomputes every tile's placement for a new viewport.
func (tt *TileTable[H]) Layout(vp Viewport) {
	for i := range tt.tiles {
		t := &tt.tiles[i]
		t.X, t.Y, t.Size = vp.Place(t.Cell, tt.width, tt.height)
	}
}

// At returns the tile for c, or nil when c is off the board.
func (tt *TileTable[H]) At(c Cell) *Tile[H] {
	if c.Col < 0 || c.Col >= tt.width || c.Row < 0 || c.Row >= tt.height {
		return nil
	}
	return &tt.tiles[c.Row*tt.width+c.Col]
}

// SetAppearance implements TileSink.
func (tt *TileTable[H]) SetAppearance(c Cell, h H) {
	if t := tt.At(c); t != nil {
		t.Appearance = h
	}
}

// Fill sets every tile to h.
func (tt *TileTable[H]) Fill(h H) {
	for i := range tt.tiles {
		tt.tiles[i].Appearance = h
	}
}

// Tiles exposes the backing slice for drawing. Callers must not grow it.
func (tt *TileTable[H]) Tiles() []Tile[H] {
	return tt.tiles
}
