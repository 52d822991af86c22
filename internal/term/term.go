// Package term runs the board in a terminal with tcell. Character cells are
// treated as half as wide as they are tall, so a board drawn with square
// tiles stays square on screen.
package term

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Mine-Sense/internal/config"
	"github.com/Garsondee/Mine-Sense/internal/minesweeper"
)

// Look is how one tile state is painted: a style for every character the tile
// covers and a glyph at its centre.
type Look struct {
	Style tcell.Style
	Glyph rune
}

// NewLooks converts a colour palette to terminal looks.
func NewLooks(palette minesweeper.TileStateTable[color.RGBA]) minesweeper.TileStateTable[Look] {
	look := func(s minesweeper.TileState) Look {
		c := palette.Lookup(s)
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		return Look{
			Style: tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack),
			Glyph: rune(s.Glyph()),
		}
	}
	return minesweeper.NewTileStateTable(
		look(minesweeper.StateCovered),
		look(minesweeper.StateEmpty),
		look(minesweeper.StateFlag),
		look(minesweeper.StateBomb),
	)
}

// statusRows is the number of rows kept free under the board.
const statusRows = 1

// App drives a session from tcell events.
type App struct {
	screen  tcell.Screen
	session *minesweeper.Session[Look]
	log     *zap.Logger

	prevButtons tcell.ButtonMask
	pending     []minesweeper.PointerEvent
	copyText    func(string) error
	status      string
}

// New builds an App for an initialised screen.
func New(screen tcell.Screen, cfg config.Config, log *zap.Logger, copyText func(string) error) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, h := screen.Size()
	s, err := minesweeper.NewSession(minesweeper.SessionConfig{
		Width:    cfg.BoardWidth,
		Height:   cfg.BoardHeight,
		Viewport: screenViewport(w, h),
	}, NewLooks(minesweeper.DefaultPalette), minesweeper.WithSessionLogger(log))
	if err != nil {
		return nil, err
	}
	return &App{screen: screen, session: s, log: log, copyText: copyText}, nil
}

// screenViewport measures a cols x rows terminal in half-column units.
func screenViewport(cols, rows int) minesweeper.Viewport {
	rows -= statusRows
	if rows < 0 {
		rows = 0
	}
	return minesweeper.Viewport{Width: float64(cols) / 2, Height: float64(rows)}
}

// pointerAt is the viewport position of the centre of character (x, y).
func pointerAt(x, y int, b minesweeper.PointerButton) minesweeper.PointerEvent {
	return minesweeper.PointerEvent{X: (float64(x) + 0.5) / 2, Y: float64(y) + 0.5, Button: b}
}

// Session exposes the underlying board session.
func (a *App) Session() *minesweeper.Session[Look] {
	return a.session
}

// HandleEvent queues clicks and runs key commands. It returns false once the
// user asks to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.session.SetViewport(screenViewport(w, h))
		a.screen.Sync()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

// handleMouse queues a pointer event for every button that went down since
// the previous mouse event.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ a.prevButtons
	a.prevButtons = buttons
	x, y := ev.Position()
	for _, mb := range []struct {
		mask   tcell.ButtonMask
		button minesweeper.PointerButton
	}{
		{tcell.ButtonPrimary, minesweeper.ButtonPrimary},
		{tcell.ButtonSecondary, minesweeper.ButtonSecondary},
		{tcell.ButtonMiddle, minesweeper.ButtonMiddle},
	} {
		if pressed&mb.mask != 0 {
			a.pending = append(a.pending, pointerAt(x, y, mb.button))
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'r':
		a.session.Reset()
		a.status = "board reset"
	case 'c':
		if a.copyText == nil {
			a.status = "copy unavailable"
			break
		}
		if err := a.copyText(a.session.Board().String()); err != nil {
			a.log.Warn("copy to clipboard failed", zap.Error(err))
			a.status = "copy failed"
		} else {
			a.status = "board copied"
		}
	}
	return true
}

// Flush runs one frame over the queued clicks.
func (a *App) Flush() minesweeper.StepResult {
	res := a.session.Step(a.pending)
	a.pending = a.pending[:0]
	return res
}

// Draw paints every tile and the status line.
func (a *App) Draw() {
	a.screen.Clear()
	for _, t := range a.session.Tiles().Tiles() {
		drawTile(a.screen, t)
	}

	_, rows := a.screen.Size()
	_, flagged, revealed := a.session.Board().Counts()
	line := fmt.Sprintf("revealed %d  flagged %d  [r] reset [c] copy [q] quit  %s", revealed, flagged, a.status)
	drawText(a.screen, 0, rows-1, tcell.StyleDefault, line)
	a.screen.Show()
}

// drawTile fills the characters covered by t and puts its glyph in the middle.
func drawTile(s tcell.Screen, t minesweeper.Tile[Look]) {
	x0 := int(math.Round((t.X - t.Size/2) * 2))
	x1 := int(math.Round((t.X + t.Size/2) * 2))
	y0 := int(math.Round(t.Y - t.Size/2))
	y1 := int(math.Round(t.Y + t.Size/2))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, ' ', nil, t.Appearance.Style)
		}
	}
	s.SetContent(int(t.X*2), int(t.Y), t.Appearance.Glyph, nil, t.Appearance.Style)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run draws the board and processes events until the user quits, the screen
// is finalised or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
			// Drain whatever else already arrived into the same frame.
			for drained := false; !drained; {
				select {
				case ev, ok := <-events:
					if !ok {
						return nil
					}
					if !a.HandleEvent(ev) {
						return nil
					}
				default:
					drained = true
				}
			}
			a.Flush()
			a.Draw()
		}
	}
}
