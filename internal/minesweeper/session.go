package minesweeper

import (
	"fmt"

	"go.uber.org/zap"
)

// SessionConfig sizes a session.
type SessionConfig struct {
	Width    int
	Height   int
	Viewport Viewport
}

// StepResult summarises one frame.
type StepResult struct {
	Frame     int
	Actions   []Action
	Changes   []Change
	Discarded int // clicks that produced no action
}

// Session is the per-frame pipeline: drain input, map, dispatch, update.
// A Session is not safe for concurrent use; drive it from one goroutine.
type Session[H any] struct {
	board      *Board
	viewport   Viewport
	table      TileStateTable[H]
	tiles      *TileTable[H]
	dispatcher *Dispatcher
	updater    *Updater[H]
	actions    *ActionLog
	events     *EventLog
	log        *zap.Logger
	frame      int
}

// SessionOption configures optional Session collaborators.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	log    *zap.Logger
	events *EventLog
}

// WithSessionLogger routes the session's structured logs to log.
func WithSessionLogger(log *zap.Logger) SessionOption {
	return func(o *sessionOptions) { o.log = log }
}

// WithEventLog records session events into el.
func WithEventLog(el *EventLog) SessionOption {
	return func(o *sessionOptions) { o.events = el }
}

// NewSession creates the board and one tile per cell, all Covered.
func NewSession[H any](cfg SessionConfig, table TileStateTable[H], opts ...SessionOption) (*Session[H], error) {
	o := sessionOptions{log: zap.NewNop(), events: NewEventLog(false)}
	for _, opt := range opts {
		opt(&o)
	}
	b, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	tiles := NewTileTable(cfg.Width, cfg.Height, cfg.Viewport, table.Lookup(StateCovered))
	s := &Session[H]{
		board:      b,
		viewport:   cfg.Viewport,
		table:      table,
		tiles:      tiles,
		dispatcher: NewDispatcher(o.log.Named("dispatch")),
		updater:    NewUpdater[H](b, table, tiles, o.log.Named("update")),
		actions:    NewActionLog(),
		events:     o.events,
		log:        o.log,
	}
	s.log.Info("board created", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	return s, nil
}

// Step runs one frame over every event collected since the previous frame.
// All events are resolved before any action is applied, and every action is
// applied before Step returns.
func (s *Session[H]) Step(events []PointerEvent) StepResult {
	s.frame++
	res := StepResult{Frame: s.frame}
	for _, ev := range events {
		s.events.AddVerbose(s.frame, "--", "input", "click",
			fmt.Sprintf("%s %.1f,%.1f", ev.Button, ev.X, ev.Y), 0)
	}
	res.Actions = s.dispatcher.Dispatch(nil, events, s.viewport, s.board.Width(), s.board.Height())
	res.Discarded = len(events) - len(res.Actions)
	if res.Discarded > 0 {
		s.events.Add(s.frame, "--", "input", "discarded",
			fmt.Sprintf("%d click(s) missed the board", res.Discarded), float64(res.Discarded))
	}
	res.Changes = s.updater.Apply(nil, res.Actions)
	for _, ch := range res.Changes {
		s.actions.Add(s.frame, ch)
		s.events.Add(s.frame, ch.Action.Cell.String(), "action", ch.Action.Kind.String(), ch.State.String(), 0)
	}
	return res
}

// Reset clears the board and repaints every tile Covered.
func (s *Session[H]) Reset() {
	s.board.Reset()
	s.tiles.Fill(s.table.Lookup(StateCovered))
	s.actions.Clear()
	s.events.Add(s.frame, "--", "board", "reset", "", 0)
	s.log.Info("board reset")
}

// SetViewport relays the tiles out for a resized window.
func (s *Session[H]) SetViewport(vp Viewport) {
	if vp == s.viewport {
		return
	}
	s.viewport = vp
	s.tiles.Layout(vp)
	s.log.Debug("viewport resized", zap.Float64("width", vp.Width), zap.Float64("height", vp.Height))
}

func (s *Session[H]) Board() *Board { return s.board }
func (s *Session[H]) Viewport() Viewport { return s.viewport }
func (s *Session[H]) Tiles() *TileTable[H] { return s.tiles }
func (s *Session[H]) ActionLog() *ActionLog { return s.actions }
func (s *Session[H]) EventLog() *EventLog { return s.events }
func (s *Session[H]) Frame() int { return s.frame }
func (s *Session[H]) Table() TileStateTable[H] { return s.table }
func (s *Session[H]) Updater() *Updater[H] { return s.updater }
