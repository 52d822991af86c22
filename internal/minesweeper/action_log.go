package minesweeper

const actionLogCapacity = 40

// ActionLogEntry is a single line of the on-screen action log.
type ActionLogEntry struct {
	Frame  int
	Change Change
}

// ActionLog is a ring buffer of the most recent applied actions.
type ActionLog struct {
	entries []ActionLogEntry
	head    int
	count   int
}

// NewActionLog creates an action log with a fixed capacity.
func NewActionLog() *ActionLog {
	return &ActionLog{entries: make([]ActionLogEntry, actionLogCapacity)}
}

// Add appends an entry, overwriting the oldest once full.
func (al *ActionLog) Add(frame int, ch Change) {
	al.entries[al.head] = ActionLogEntry{Frame: frame, Change: ch}
	al.head = (al.head + 1) % len(al.entries)
	if al.count < len(al.entries) {
		al.count++
	}
}

// Recent returns entries oldest first.
func (al *ActionLog) Recent() []ActionLogEntry {
	n := len(al.entries)
	out := make([]ActionLogEntry, al.count)
	for i := 0; i < al.count; i++ {
		out[i] = al.entries[(al.head-al.count+i+n)%n]
	}
	return out
}

// Clear empties the log.
func (al *ActionLog) Clear() {
	al.head, al.count = 0, 0
}
