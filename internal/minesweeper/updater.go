package minesweeper

import (
	"fmt"

	"go.uber.org/zap"
)

// Change records the outcome of one applied action.
type Change struct {
	Action Action
	State  TileState // visual state of the cell after the action
}

func (c Change) String() string {
	return fmt.Sprintf("%s -> %s", c.Action, c.State)
}

// Updater is the only writer of board state and tile visuals during play.
type Updater[H any] struct {
	board *Board
	table TileStateTable[H]
	sink  TileSink[H]
	log   *zap.Logger
}

// NewUpdater wires an updater to its board, appearance table and sink.
func NewUpdater[H any](b *Board, table TileStateTable[H], sink TileSink[H], log *zap.Logger) *Updater[H] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Updater[H]{board: b, table: table, sink: sink, log: log}
}

// Apply processes actions in order. Each action mutates the board once and
// then pushes the cell's new appearance to the sink.
func (u *Updater[H]) Apply(dst []Change, actions []Action) []Change {
	for _, a := range actions {
		c := a.Cell
		switch a.Kind {
		case ActionUncover:
			u.board.SetRevealed(c.Col, c.Row, true)
		case ActionPlaceFlag:
			u.board.ToggleFlagged(c.Col, c.Row)
		default:
			panic(fmt.Sprintf("minesweeper: unknown %v", a.Kind))
		}
		state := u.Refresh(c)
		u.log.Debug("applied",
			zap.Stringer("action", a.Kind),
			zap.Stringer("cell", c),
			zap.Stringer("state", state))
		dst = append(dst, Change{Action: a, State: state})
	}
	return dst
}

// Refresh pushes the current appearance of c to the sink and returns its state.
func (u *Updater[H]) Refresh(c Cell) TileState {
	state := StateOf(u.board, c)
	u.sink.SetAppearance(c, u.table.Lookup(state))
	return state
}

// RefreshAll repaints every cell.
func (u *Updater[H]) RefreshAll() {
	for row := 0; row < u.board.Height(); row++ {
		for col := 0; col < u.board.Width(); col++ {
			u.Refresh(Cell{col, row})
		}
	}
}
