package term

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Garsondee/Mine-Sense/internal/config"
	"github.com/Garsondee/Mine-Sense/internal/minesweeper"
)

func newTestApp(t *testing.T, copyText func(string) error) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(80, 25)

	cfg := config.Default()
	cfg.BoardWidth, cfg.BoardHeight = 6, 4
	a, err := New(s, cfg, zaptest.NewLogger(t), copyText)
	require.NoError(t, err)
	return a, s
}

// charAt returns the screen character under the centre of cell c.
func charAt(a *App, c minesweeper.Cell) (int, int) {
	t := a.Session().Tiles().At(c)
	return int(t.X * 2), int(t.Y)
}

func click(a *App, x, y int, b tcell.ButtonMask) {
	a.HandleEvent(tcell.NewEventMouse(x, y, b, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestScreenViewport_HalvesColumnsAndKeepsStatusRow(t *testing.T) {
	vp := screenViewport(80, 25)
	assert.Equal(t, 40.0, vp.Width)
	assert.Equal(t, 24.0, vp.Height)
	assert.Zero(t, screenViewport(10, 0).Height)
}

func TestPrimaryClick_UncoversCell(t *testing.T) {
	a, s := newTestApp(t, nil)
	cell := minesweeper.Cell{Col: 2, Row: 1}
	x, y := charAt(a, cell)

	click(a, x, y, tcell.ButtonPrimary)
	res := a.Flush()
	require.Len(t, res.Actions, 1)
	assert.Equal(t, minesweeper.Action{Kind: minesweeper.ActionUncover, Cell: cell}, res.Actions[0])

	a.Draw()
	_, _, style, _ := s.GetContent(x, y)
	assert.Equal(t, a.Session().Table().Lookup(minesweeper.StateEmpty).Style, style)
}

func TestSecondaryClick_FlagsCell(t *testing.T) {
	a, s := newTestApp(t, nil)
	cell := minesweeper.Cell{Col: 0, Row: 0}
	x, y := charAt(a, cell)

	click(a, x, y, tcell.ButtonSecondary)
	a.Flush()
	assert.True(t, a.Session().Board().IsFlagged(0, 0))

	a.Draw()
	r, _, _, _ := s.GetContent(x, y)
	assert.Equal(t, 'F', r)
}

func TestHeldButton_CountsOnce(t *testing.T) {
	a, _ := newTestApp(t, nil)
	x, y := charAt(a, minesweeper.Cell{Col: 1, Row: 1})

	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonSecondary, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(x+1, y, tcell.ButtonSecondary, tcell.ModNone)) // drag
	res := a.Flush()
	assert.Len(t, res.Actions, 1)
	assert.True(t, a.Session().Board().IsFlagged(1, 1))
}

func TestClickOutsideBoard_Discarded(t *testing.T) {
	a, _ := newTestApp(t, nil)
	before := a.Session().Board().Fingerprint(minesweeper.Cell{Col: -1, Row: -1})

	click(a, 0, 0, tcell.ButtonPrimary) // top-left corner is left of the centred board
	res := a.Flush()
	assert.Equal(t, 1, res.Discarded)
	assert.Equal(t, before, a.Session().Board().Fingerprint(minesweeper.Cell{Col: -1, Row: -1}))
}

func TestKeys(t *testing.T) {
	var copied string
	a, _ := newTestApp(t, func(s string) error {
		copied = s
		return nil
	})
	x, y := charAt(a, minesweeper.Cell{Col: 0, Row: 3})
	click(a, x, y, tcell.ButtonSecondary)
	a.Flush()

	assert.True(t, a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)))
	assert.Equal(t, a.Session().Board().String(), copied)
	assert.Equal(t, "board copied", a.status)

	assert.True(t, a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.False(t, a.Session().Board().IsFlagged(0, 3))

	assert.False(t, a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, a.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestCopyFailure_SetsStatus(t *testing.T) {
	a, _ := newTestApp(t, func(string) error { return errors.New("no clipboard") })
	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	assert.Equal(t, "copy failed", a.status)
}

func TestResize_RelaysTiles(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.HandleEvent(tcell.NewEventResize(120, 41))
	assert.Equal(t, minesweeper.Viewport{Width: 60, Height: 40}, a.Session().Viewport())
}

func TestRun_StopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.Run(ctx), context.Canceled)
}
