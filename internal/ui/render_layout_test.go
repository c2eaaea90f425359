package ui

import (
	"strings"
	"testing"
)

func TestTruncatePath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		path string
		maxW int
		want string // empty means "just check it was truncated"
	}{
		{"short", "file.go", 20, "file.go"},
		{"exact", "file.go", 7, "file.go"},
		{"long", "very-long-filename-that-exceeds-limit.go", 10, ""},
		{"single_char", "x", 1, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := truncatePath(tt.path, tt.maxW)
			if tt.want != "" && got != tt.want {
				t.Errorf("truncatePath(%q, %d) = %q, want %q", tt.path, tt.maxW, got, tt.want)
			}
			if tt.want == "" && !strings.HasPrefix(got, "…") {
				t.Errorf("expected truncated path to start with …, got %q", got)
			}
		})
	}
}

func TestRenderBranchItem_Current(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	item := m.renderBranchItem("main", false, true)
	if !strings.Contains(item, "*") {
		t.Error("current branch should have * prefix")
	}
}

func TestRenderBranchItem_ContainsName(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	item := m.renderBranchItem("feature-branch", true, false)
	if !strings.Contains(item, "feature-branch") {
		t.Error("branch item should contain branch name")
	}
}

func TestScrollOffset_KeepsLateCursorVisible(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.cursor = 50
	if got := m.scrollOffset(20); got != 31 {
		t.Errorf("scrollOffset()=%d, want 31", got)
	}
}

func TestScrollOffset_EarlyCursorNoScroll(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.cursor = 3
	if got := m.scrollOffset(20); got != 0 {
		t.Errorf("scrollOffset()=%d, want 0", got)
	}
}

func TestRenderStatusBar_ShowsMessage(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.statusMsg = "stage ok"
	bar := m.renderStatusBar()
	if !strings.Contains(bar, "stage ok") {
		t.Errorf("status bar should show status message, got %q", bar)
	}
}

func TestRenderHelpBar_ContainsCoreKeys(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	bar := m.renderHelpBar()
	for _, key := range []string{"j/k", "s/u/x", "enter", "q"} {
		if !strings.Contains(bar, key) {
			t.Errorf("help bar should contain %q, got %q", key, bar)
		}
	}
}

func TestJoinHelp(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	pairs := []struct{ key, desc string }{{"j", "move"}, {"q", "quit"}}
	got := joinHelp(pairs, m.styles)
	if !strings.Contains(got, "move") || !strings.Contains(got, "quit") {
		t.Errorf("joinHelp missing entries, got %q", got)
	}
}
