package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcher_ButtonsMapToActions(t *testing.T) {
	vp := Viewport{Width: 600, Height: 600}
	d := NewDispatcher(nil)

	// Pixel (15,585) is inside the bottom-left cell.
	a, ok := d.Resolve(PointerEvent{X: 15, Y: 585, Button: ButtonPrimary}, vp, 10, 10)
	require.True(t, ok)
	assert.Equal(t, Action{Kind: ActionUncover, Cell: Cell{0, 0}}, a)

	a, ok = d.Resolve(PointerEvent{X: 585, Y: 15, Button: ButtonSecondary}, vp, 10, 10)
	require.True(t, ok)
	assert.Equal(t, Action{Kind: ActionPlaceFlag, Cell: Cell{9, 9}}, a)

	_, ok = d.Resolve(PointerEvent{X: 300, Y: 300, Button: ButtonMiddle}, vp, 10, 10)
	assert.False(t, ok, "middle button has no action")
}

func TestDispatcher_OutsideDiscarded(t *testing.T) {
	vp := Viewport{Width: 600, Height: 600}
	d := NewDispatcher(nil)
	events := []PointerEvent{
		{X: -5, Y: 300},
		{X: 600, Y: 300}, // x == 1.0 exactly
		{X: 300, Y: 0},   // y == 1.0 exactly
		{X: 10, Y: 590},
	}
	got := d.Dispatch(nil, events, vp, 10, 10)
	require.Len(t, got, 1)
	assert.Equal(t, Cell{0, 0}, got[0].Cell)
}

func TestDispatcher_PreservesOrder(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	d := NewDispatcher(nil)
	var events []PointerEvent
	for col := 0; col < 10; col++ {
		events = append(events, PointerEvent{X: float64(col*10 + 5), Y: 95})
	}
	got := d.Dispatch(nil, events, vp, 10, 10)
	require.Len(t, got, 10)
	for i, a := range got {
		assert.Equal(t, Cell{i, 0}, a.Cell)
	}
}

func TestDispatcher_LogsClicks(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDispatcher(zap.New(core))
	vp := Viewport{Width: 600, Height: 600}

	d.Dispatch(nil, []PointerEvent{{X: 15, Y: 585}, {X: 900, Y: 900}}, vp, 10, 10)

	clicked := logs.FilterMessage("clicked").All()
	require.Len(t, clicked, 1)
	assert.Equal(t, "(0,0)", clicked[0].ContextMap()["cell"])
	assert.Equal(t, "uncover", clicked[0].ContextMap()["action"])
	assert.Equal(t, 1, logs.FilterMessage("click outside board").Len())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "uncover(3,4)", Action{ActionUncover, Cell{3, 4}}.String())
	assert.Equal(t, "place_flag(0,0)", Action{ActionPlaceFlag, Cell{}}.String())
	assert.Equal(t, "secondary", ButtonSecondary.String())
}
