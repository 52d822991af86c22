package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/Garsondee/Mine-Sense/internal/config"
	"github.com/Garsondee/Mine-Sense/internal/minesweeper"
)

// borderWidth is the pixel gap between the window edge and the board area.
const borderWidth = 24

var (
	windowBackground = color.RGBA{R: 12, G: 14, B: 12, A: 255}
	boardBackground  = color.RGBA{R: 28, G: 30, B: 28, A: 255}
)

// Game adapts a minesweeper.Session to ebiten. Update drains this frame's
// clicks into Session.Step; Draw paints the tile table.
type Game struct {
	width  int // window width in pixels
	height int // window height in pixels

	session *minesweeper.Session[*ebiten.Image]
	log     *zap.Logger

	// pending collects the frame's pointer events until Step drains them.
	pending []minesweeper.PointerEvent

	showHUD  bool
	hudFace  hudFace
	copyText func(string) error
	status   string // last one-off message shown in the HUD
}

// New builds the board session and registers the four tile appearances.
func New(cfg config.Config, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		width:    cfg.WindowWidth,
		height:   cfg.WindowHeight,
		log:      log,
		showHUD:  true,
		hudFace:  newHUDFace(),
		copyText: writeClipboard,
	}
	s, err := minesweeper.NewSession(minesweeper.SessionConfig{
		Width:    cfg.BoardWidth,
		Height:   cfg.BoardHeight,
		Viewport: boardViewport(g.width, g.height),
	}, newAppearances(minesweeper.DefaultPalette), minesweeper.WithSessionLogger(log))
	if err != nil {
		return nil, err
	}
	g.session = s
	return g, nil
}

// newAppearances creates one shared 1x1 image per tile state; tiles are
// drawn by scaling it, so every tile in a state reuses the same image.
func newAppearances(palette minesweeper.TileStateTable[color.RGBA]) minesweeper.TileStateTable[*ebiten.Image] {
	img := func(s minesweeper.TileState) *ebiten.Image {
		i := ebiten.NewImage(1, 1)
		i.Fill(palette.Lookup(s))
		return i
	}
	return minesweeper.NewTileStateTable(
		img(minesweeper.StateCovered),
		img(minesweeper.StateEmpty),
		img(minesweeper.StateFlag),
		img(minesweeper.StateBomb),
	)
}

// boardViewport is the window area left for the board: the window minus the
// border and the action panel.
func boardViewport(windowW, windowH int) minesweeper.Viewport {
	w := windowW - 2*borderWidth - actionPanelWidth
	h := windowH - 2*borderWidth
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return minesweeper.Viewport{Width: float64(w), Height: float64(h)}
}

// Session exposes the underlying board session.
func (g *Game) Session() *minesweeper.Session[*ebiten.Image] {
	return g.session
}

func (g *Game) Update() error {
	g.handleKeys()
	g.pending = appendPointerEvents(g.pending[:0])
	g.session.Step(g.pending)
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		g.status = "board reset"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.copyBoard(); err != nil {
			g.log.Warn("copy to clipboard failed", zap.Error(err))
			g.status = "copy failed"
		} else {
			g.status = "board copied"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
}

// copyBoard puts the board's text dump on the clipboard.
func (g *Game) copyBoard() error {
	return g.copyText(g.session.Board().String())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowBackground)

	vp := g.session.Viewport()
	ox, oy := float32(borderWidth), float32(borderWidth)
	side := float32(vp.Side())
	bx := ox + (float32(vp.Width)-side)/2
	by := oy + (float32(vp.Height)-side)/2
	vector.FillRect(screen, bx, by, side, side, boardBackground, false)
	vector.StrokeRect(screen, bx-1, by-1, side+2, side+2, 2.0, colornames.Darkolivegreen, false)

	for _, t := range g.session.Tiles().Tiles() {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(t.Size, t.Size)
		op.GeoM.Translate(float64(borderWidth)+t.X-t.Size/2, float64(borderWidth)+t.Y-t.Size/2)
		screen.DrawImage(t.Appearance, &op)
	}

	panelX := g.width - actionPanelWidth
	drawActionPanel(screen, g.session.ActionLog(), g.hudFace, panelX, g.height)

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	_, flagged, revealed := g.session.Board().Counts()
	lines := []string{
		fmt.Sprintf("%dx%d  revealed %d  flagged %d  frame %d",
			g.session.Board().Width(), g.session.Board().Height(), revealed, flagged, g.session.Frame()),
		"L-click uncover  R-click flag  [R] reset  [C] copy  [H] hud",
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}
	g.hudFace.drawBox(screen, lines, borderWidth+4, g.height-borderWidth-4)
}

// Layout follows the outside size so the board rescales with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.SetViewport(boardViewport(g.width, g.height))
	}
	return g.width, g.height
}
