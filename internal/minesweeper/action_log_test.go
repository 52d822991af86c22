package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionLog_WrapsOldestFirst(t *testing.T) {
	al := NewActionLog()
	total := actionLogCapacity + 5
	for i := 0; i < total; i++ {
		al.Add(i, Change{Action: Action{Kind: ActionUncover, Cell: Cell{i, 0}}})
	}
	recent := al.Recent()
	require.Len(t, recent, actionLogCapacity)
	assert.Equal(t, 5, recent[0].Frame)
	assert.Equal(t, total-1, recent[len(recent)-1].Frame)
}

func TestEventLog_FilterAndVerbose(t *testing.T) {
	el := NewEventLog(false)
	el.AddVerbose(1, "--", "input", "click", "primary", 0)
	assert.Empty(t, el.Entries(), "verbose entries dropped when not verbose")

	el.Add(1, "(0,0)", "action", "uncover", "empty", 0)
	el.Add(2, "(1,0)", "action", "place_flag", "flag", 0)
	el.Add(3, "--", "board", "reset", "", 0)

	assert.Len(t, el.Filter("action", ""), 2)
	assert.Equal(t, 1, el.Count("", "reset"))
	assert.True(t, el.HasEntry("action", "place_flag", "fl"))
	assert.False(t, el.HasEntry("action", "uncover", "bomb"))
	assert.Contains(t, el.Format(), "[F=002] (1,0)")

	el.Reset()
	assert.Empty(t, el.Entries())
}
