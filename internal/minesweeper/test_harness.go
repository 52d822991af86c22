package minesweeper

import (
	"image/color"

	"go.uber.org/zap"
)

// TestSession is a headless session harness for tests and the headless
// report. It has no windowing dependency: clicks are given in normalized
// board space and converted to pixels through the configured viewport.
type TestSession struct {
	*Session[color.RGBA]

	pending []PointerEvent
}

// harnessOptionKind controls the pass in which an option is applied.
type harnessOptionKind int

const (
	harnessOptInfra harnessOptionKind = iota // board size, viewport and logging; applied first
	harnessOptBoard                          // board contents; applied after the board exists
)

// HarnessOption is a builder function applied to a TestSession during construction.
type HarnessOption struct {
	kind harnessOptionKind
	fn   func(*harnessConfig)
}

type harnessConfig struct {
	session SessionConfig
	verbose bool
	log     *zap.Logger
	mines   []Cell
	flags   []Cell
}

// WithBoardSize sets the board dimensions.
func WithBoardSize(w, h int) HarnessOption {
	return HarnessOption{harnessOptInfra, func(hc *harnessConfig) {
		hc.session.Width = w
		hc.session.Height = h
	}}
}

// WithViewport sets the window size in pixels.
func WithViewport(w, h float64) HarnessOption {
	return HarnessOption{harnessOptInfra, func(hc *harnessConfig) {
		hc.session.Viewport = Viewport{Width: w, Height: h}
	}}
}

// WithVerbose also records every raw click in the event log.
func WithVerbose(v bool) HarnessOption {
	return HarnessOption{harnessOptInfra, func(hc *harnessConfig) {
		hc.verbose = v
	}}
}

// WithLogger routes structured logs to log.
func WithLogger(log *zap.Logger) HarnessOption {
	return HarnessOption{harnessOptInfra, func(hc *harnessConfig) {
		hc.log = log
	}}
}

// WithMine marks (col, row) as mined before play starts.
func WithMine(col, row int) HarnessOption {
	return HarnessOption{harnessOptBoard, func(hc *harnessConfig) {
		hc.mines = append(hc.mines, Cell{col, row})
	}}
}

// WithFlag flags (col, row) before play starts.
func WithFlag(col, row int) HarnessOption {
	return HarnessOption{harnessOptBoard, func(hc *harnessConfig) {
		hc.flags = append(hc.flags, Cell{col, row})
	}}
}

// NewTestSession builds a 10x10 board in a 600x600 viewport unless overridden.
// Infrastructure options are applied first, then board contents.
func NewTestSession(opts ...HarnessOption) (*TestSession, error) {
	hc := harnessConfig{
		session: SessionConfig{Width: 10, Height: 10, Viewport: Viewport{Width: 600, Height: 600}},
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		if o.kind == harnessOptInfra {
			o.fn(&hc)
		}
	}
	el := NewEventLog(hc.verbose)
	s, err := NewSession(hc.session, DefaultPalette, WithSessionLogger(hc.log), WithEventLog(el))
	if err != nil {
		return nil, err
	}
	for _, o := range opts {
		if o.kind == harnessOptBoard {
			o.fn(&hc)
		}
	}
	for _, c := range hc.mines {
		s.Board().SetMined(c.Col, c.Row, true)
	}
	for _, c := range hc.flags {
		s.Board().SetFlagged(c.Col, c.Row, true)
	}
	s.Updater().RefreshAll()
	return &TestSession{Session: s}, nil
}

// Queue buffers a click at normalized (x, y) for the next Flush.
func (ts *TestSession) Queue(x, y float64, button PointerButton) {
	px, py := ts.Viewport().Denormalize(Point{X: x, Y: y})
	ts.pending = append(ts.pending, PointerEvent{X: px, Y: py, Button: button})
}

// Flush runs one frame over every queued click.
func (ts *TestSession) Flush() StepResult {
	events := ts.pending
	ts.pending = nil
	return ts.Step(events)
}

// ClickAt runs one frame containing a single primary click at normalized (x, y).
func (ts *TestSession) ClickAt(x, y float64) StepResult {
	ts.Queue(x, y, ButtonPrimary)
	return ts.Flush()
}

// FlagAt runs one frame containing a single secondary click at normalized (x, y).
func (ts *TestSession) FlagAt(x, y float64) StepResult {
	ts.Queue(x, y, ButtonSecondary)
	return ts.Flush()
}

// StateAt returns the visual state of (col, row).
func (ts *TestSession) StateAt(col, row int) TileState {
	return StateOf(ts.Board(), Cell{col, row})
}

// AppearanceAt returns the colour the tile at (col, row) currently shows.
func (ts *TestSession) AppearanceAt(col, row int) color.RGBA {
	return ts.Tiles().At(Cell{col, row}).Appearance
}
