package minesweeper

import (
	"fmt"
	"strings"
)

// EventLogEntry is one recorded event of a session.
type EventLogEntry struct {
	Frame    int
	Cell     string // "(c,r)" or "--" for board-wide events
	Category string // input, action, board
	Key      string // specific event name within the category
	Value    string // human-readable detail
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[F=042] (3,4)   action   uncover         empty
func (e EventLogEntry) String() string {
	return fmt.Sprintf("[F=%03d] %-7s %-8s %-15s %s",
		e.Frame, e.Cell, e.Category, e.Key, e.Value)
}

// EventLog collects structured events. Unlike ActionLog it is unbounded and
// meant for headless runs and tests.
type EventLog struct {
	entries []EventLogEntry
	verbose bool
}

// NewEventLog creates an EventLog. Verbose logs also record every raw click.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (el *EventLog) Add(frame int, cell, category, key, value string, numVal float64) {
	el.entries = append(el.entries, EventLogEntry{
		Frame:    frame,
		Cell:     cell,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(frame int, cell, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(frame, cell, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventLogEntry {
	return el.entries
}

// Filter returns entries matching category and key; empty matches anything.
func (el *EventLog) Filter(category, key string) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// HasEntry reports whether an entry matches category, key and value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.Filter(category, key) {
		if valueSubstr == "" || strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format returns the full log, one entry per line.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reset drops all entries.
func (el *EventLog) Reset() {
	el.entries = el.entries[:0]
}
