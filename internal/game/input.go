package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Mine-Sense/internal/minesweeper"
)

// mouseButtons binds ebiten buttons to pointer buttons.
var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	button minesweeper.PointerButton
}{
	{ebiten.MouseButtonLeft, minesweeper.ButtonPrimary},
	{ebiten.MouseButtonRight, minesweeper.ButtonSecondary},
	{ebiten.MouseButtonMiddle, minesweeper.ButtonMiddle},
}

// appendPointerEvents appends every click that started this frame. Touches
// count as primary clicks.
func appendPointerEvents(dst []minesweeper.PointerEvent) []minesweeper.PointerEvent {
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.ebiten) {
			x, y := ebiten.CursorPosition()
			dst = append(dst, toBoardSpace(x, y, mb.button))
		}
	}
	var touches []ebiten.TouchID
	touches = inpututil.AppendJustPressedTouchIDs(touches)
	for _, id := range touches {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, toBoardSpace(x, y, minesweeper.ButtonPrimary))
	}
	return dst
}

// toBoardSpace shifts window pixels into the board viewport's pixel space.
func toBoardSpace(x, y int, b minesweeper.PointerButton) minesweeper.PointerEvent {
	return minesweeper.PointerEvent{
		X:      float64(x - borderWidth),
		Y:      float64(y - borderWidth),
		Button: b,
	}
}
