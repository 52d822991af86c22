package minesweeper

import (
	"fmt"

	"go.uber.org/zap"
)

// PointerButton identifies which button produced a click.
type PointerButton uint8

const (
	ButtonPrimary   PointerButton = iota // left
	ButtonSecondary                      // right
	ButtonMiddle
)

func (b PointerButton) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("PointerButton(%d)", uint8(b))
	}
}

// PointerEvent is one raw click in window pixel coordinates (y down).
type PointerEvent struct {
	X      float64
	Y      float64
	Button PointerButton
}

// ActionKind is the board action a click resolves to.
type ActionKind uint8

const (
	ActionUncover ActionKind = iota
	ActionPlaceFlag
)

func (k ActionKind) String() string {
	switch k {
	case ActionUncover:
		return "uncover"
	case ActionPlaceFlag:
		return "place_flag"
	default:
		return fmt.Sprintf("ActionKind(%d)", uint8(k))
	}
}

// Action targets one in-range cell. It lives for a single Session.Step.
type Action struct {
	Kind ActionKind
	Cell Cell
}

func (a Action) String() string {
	return a.Kind.String() + a.Cell.String()
}

// Dispatcher turns raw clicks into board actions. It keeps no state between
// events and never touches tile visuals.
type Dispatcher struct {
	log *zap.Logger
}

// NewDispatcher returns a Dispatcher logging to log (nil means no logging).
func NewDispatcher(log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{log: log}
}

// Resolve maps one click. ok is false when the click misses the board or uses
// a button with no action bound.
func (d *Dispatcher) Resolve(ev PointerEvent, vp AspectRatioProvider, width, height int) (Action, bool) {
	var kind ActionKind
	switch ev.Button {
	case ButtonPrimary:
		kind = ActionUncover
	case ButtonSecondary:
		kind = ActionPlaceFlag
	default:
		d.log.Debug("click ignored", zap.Stringer("button", ev.Button))
		return Action{}, false
	}
	p := vp.Normalize(ev.X, ev.Y)
	c, ok := MapToCell(p, width, height)
	if !ok {
		d.log.Debug("click outside board",
			zap.Float64("x", p.X), zap.Float64("y", p.Y))
		return Action{}, false
	}
	d.log.Info("clicked", zap.Stringer("cell", c), zap.Stringer("action", kind))
	return Action{Kind: kind, Cell: c}, true
}

// Dispatch resolves events in order and appends one action per hit to dst.
func (d *Dispatcher) Dispatch(dst []Action, events []PointerEvent, vp AspectRatioProvider, width, height int) []Action {
	for _, ev := range events {
		if a, ok := d.Resolve(ev, vp, width, height); ok {
			dst = append(dst, a)
		}
	}
	return dst
}
