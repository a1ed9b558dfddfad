package view

import (
	"strings"
	"testing"

	"yalv/internal/tui/model"
	"yalv/internal/virsh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(filter model.ViewFilter, records ...virsh.VMRecord) *model.Model {
	m := model.New(nil, filter, false)
	m.ApplyList(filter, virsh.ListResult{Records: records})
	return m
}

func lineContaining(t *testing.T, frame, needle string) string {
	t.Helper()
	for _, line := range strings.Split(frame, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	require.Failf(t, "line not found", "no line contains %q in:\n%s", needle, frame)
	return ""
}

func TestRenderRowsAndSelection(t *testing.T) {
	m := newTestModel(model.FilterAll,
		virsh.VMRecord{ID: "1", Name: "web", State: virsh.StateRunning},
		virsh.VMRecord{ID: "-", Name: "db", State: virsh.StateShutOff},
	)
	m.MoveSelection(1)

	frame := Render(m)
	assert.Contains(t, frame, "Filter: All")
	assert.Contains(t, frame, "running")
	assert.Contains(t, frame, "shut off")

	assert.Contains(t, lineContaining(t, frame, "db"), selectionMarker)
	assert.NotContains(t, lineContaining(t, frame, "web"), selectionMarker)
}

func TestRenderFollowsFilter(t *testing.T) {
	m := newTestModel(model.FilterRunningOnly,
		virsh.VMRecord{ID: "1", Name: "web", State: virsh.StateRunning},
		virsh.VMRecord{ID: "-", Name: "db", State: virsh.StateShutOff},
	)

	frame := Render(m)
	assert.Contains(t, frame, "Filter: Running only")
	assert.Contains(t, frame, "web")
	assert.NotContains(t, frame, "db")
}

func TestRenderEmptyState(t *testing.T) {
	frame := Render(newTestModel(model.FilterRunningOnly))
	assert.Contains(t, frame, "No running domains")

	frame = Render(newTestModel(model.FilterAll))
	assert.Contains(t, frame, "No domains defined")
}

func TestRenderDegradedAndStatus(t *testing.T) {
	m := model.New(nil, model.FilterAll, false)
	m.ApplyList(model.FilterAll, virsh.ListResult{
		Records: []virsh.VMRecord{{ID: "1", Name: "web", State: virsh.StateRunning}},
		Skipped: 2,
	})
	m.SetStatusMessage("start db failed: boom", model.StatusBarError)
	m.Activity = "Refreshing"

	frame := Render(m)
	assert.Contains(t, frame, "2 line(s) of virsh output could not be read")
	assert.Contains(t, frame, "start db failed: boom")
	assert.Contains(t, frame, "Refreshing")
	assert.NotContains(t, frame, "Filter: All", "message replaces the filter label")
}

func TestRenderPrompt(t *testing.T) {
	m := newTestModel(model.FilterRunningOnly,
		virsh.VMRecord{ID: "1", Name: "web", State: virsh.StateRunning})
	m.State = model.StatePromptingSSHUser
	m.SSHDomain = "web"

	frame := Render(m)
	assert.Contains(t, frame, "SSH into web as")
	assert.Contains(t, frame, "ssh user:")
}

func TestRenderTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 80)
	m := newTestModel(model.FilterAll, virsh.VMRecord{ID: "7", Name: long, State: virsh.StateRunning})
	m.Width = 60

	frame := Render(m)
	assert.NotContains(t, frame, long)
	assert.Contains(t, frame, "…")
}

func TestRenderKeepsCursorOnScreen(t *testing.T) {
	var records []virsh.VMRecord
	for _, name := range []string{"vm-a", "vm-b", "vm-c", "vm-d", "vm-e", "vm-f", "vm-g", "vm-h"} {
		records = append(records, virsh.VMRecord{ID: "1", Name: name, State: virsh.StateRunning})
	}
	m := newTestModel(model.FilterAll, records...)
	m.Height = chromeLines + 3
	m.MoveSelection(6)

	frame := Render(m)
	assert.Contains(t, lineContaining(t, frame, "vm-g"), selectionMarker)
	assert.NotContains(t, frame, "vm-a")
	assert.NotContains(t, frame, "vm-h")
}

func TestRenderIsPure(t *testing.T) {
	m := newTestModel(model.FilterAll,
		virsh.VMRecord{ID: "1", Name: "web", State: virsh.StateRunning})
	assert.Equal(t, Render(m), Render(m))
	assert.Equal(t, 0, m.Cursor)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                  string
		cursor, total, height int
		wantStart, wantEnd    int
	}{
		{name: "unlimited", cursor: 5, total: 10, height: 0, wantStart: 0, wantEnd: 10},
		{name: "fits", cursor: 1, total: 3, height: 5, wantStart: 0, wantEnd: 3},
		{name: "cursor at top", cursor: 0, total: 10, height: 4, wantStart: 0, wantEnd: 4},
		{name: "cursor at bottom", cursor: 9, total: 10, height: 4, wantStart: 6, wantEnd: 10},
		{name: "cursor in middle", cursor: 5, total: 10, height: 4, wantStart: 2, wantEnd: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.cursor, tt.total, tt.height)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
