package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClampCursor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		cursor, lineCnt int
		want            int
	}{
		{"empty", 3, 0, 0},
		{"within range", 2, 5, 2},
		{"past end", 10, 5, 4},
		{"negative", -1, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := clampCursor(tt.cursor, tt.lineCnt); got != tt.want {
				t.Errorf("clampCursor(%d, %d)=%d, want %d", tt.cursor, tt.lineCnt, got, tt.want)
			}
		})
	}
}

func TestHandleResize(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	result, _ := m.handleResize(tea.WindowSizeMsg{Width: 100, Height: 40})
	rm := result.(Model)
	if rm.width != 100 || rm.height != 40 || !rm.ready {
		t.Errorf("handleResize produced %+v", rm)
	}
}

func TestHandleTick_DefersRefreshDuringCommit(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.mode = modeCommit
	_, cmd := m.handleTick()
	if cmd == nil {
		t.Error("expected a tick-rescheduling cmd even while deferring refresh")
	}
}

func TestHandleOpDone_SetsStatusMsg(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	result, _ := m.handleOpDone(opDoneMsg{label: "stage", err: nil})
	rm := result.(Model)
	if rm.statusMsg != "stage ok" {
		t.Errorf("statusMsg=%q, want %q", rm.statusMsg, "stage ok")
	}
}

func TestHandleCommitDone_ReturnsToStatusOnSuccess(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.mode = modeCommit
	m.commitInput.SetValue("fix: bug")
	result, cmd := m.handleCommitDone(commitDoneMsg{})
	rm := result.(Model)
	if rm.mode != modeStatus {
		t.Errorf("mode=%v, want modeStatus", rm.mode)
	}
	if rm.commitInput.Value() != "" {
		t.Error("commit input should be reset")
	}
	if cmd == nil {
		t.Error("expected a refresh cmd")
	}
}
