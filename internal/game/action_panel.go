package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Mine-Sense/internal/minesweeper"
)

const (
	actionPanelWidth = 240
	panelLineHeight  = 14
	panelTitleHeight = 18
	recentHighlight  = 3 // how many latest entries to highlight
)

// hudFace wraps the fixed 7x13 bitmap face used for every on-screen label.
type hudFace struct {
	face text.Face
}

func newHUDFace() hudFace {
	return hudFace{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h hudFace) draw(dst *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, h.face, op)
}

// drawBox draws lines in a framed box whose bottom-left corner is (x, bottom).
func (h hudFace) drawBox(dst *ebiten.Image, lines []string, x, bottom int) {
	const padX, padY = 6, 4
	maxW := 0.0
	for _, l := range lines {
		if w, _ := text.Measure(l, h.face, panelLineHeight); w > maxW {
			maxW = w
		}
	}
	boxW := float32(maxW) + padX*2
	boxH := float32(len(lines)*panelLineHeight + padY*2)
	bx, by := float32(x), float32(bottom)-boxH
	vector.FillRect(dst, bx, by, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(dst, bx, by, boxW, boxH, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	for i, l := range lines {
		h.draw(dst, l, x+padX, int(by)+padY+i*panelLineHeight, color.White)
	}
}

// stateColor is the dot colour for an entry in the action panel.
func stateColor(s minesweeper.TileState) color.RGBA {
	return minesweeper.DefaultPalette.Lookup(s)
}

// drawActionPanel renders the action log on the right side of the screen,
// newest entry at the bottom.
func drawActionPanel(screen *ebiten.Image, al *minesweeper.ActionLog, face hudFace, panelX, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, actionPanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, px, 0, actionPanelWidth, panelTitleHeight, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	face.draw(screen, "ACTIONS", panelX+8, 3, color.White)
	vector.StrokeLine(screen, px, panelTitleHeight, px+actionPanelWidth, panelTitleHeight, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := al.Recent()
	maxVisible := (panelH - panelTitleHeight - 6) / panelLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := panelTitleHeight + 4
	for i, e := range entries {
		textCol := color.RGBA{R: 150, G: 160, B: 150, A: 255}
		if i >= len(entries)-recentHighlight {
			vector.FillRect(screen, px+2, float32(y), actionPanelWidth-4, panelLineHeight, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
			textCol = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		vector.FillRect(screen, px+5, float32(y+4), 4, 6, stateColor(e.Change.State), false)
		line := fmt.Sprintf("%4d %s", e.Frame, e.Change)
		face.draw(screen, line, panelX+14, y, textCol)
		y += panelLineHeight
	}
}
