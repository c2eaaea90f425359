package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jansmrcka/gitwright/internal/transient"
)

// View composition for the status dashboard and its overlays.

func (m Model) View() string {
	if m.width == 0 || !m.ready {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: %dx%d", m.width, m.height, minWidth, minHeight)
	}

	switch m.mode {
	case modeBranchPicker:
		body := m.renderBranchList(m.contentHeight())
		return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar(), m.renderBranchHelpBar())
	case modeVisit:
		body := lipgloss.NewStyle().Width(m.width).Height(m.contentHeight()).Render(m.visitViewport.View())
		bar := m.styles.StatusBar.Width(m.width).Render(" " + m.visitTitle)
		return lipgloss.JoinVertical(lipgloss.Left, body, bar, m.renderVisitHelpBar())
	}

	body := m.renderBody(m.contentHeight())
	statusBar := m.renderStatusBar()
	switch {
	case m.mode == modeCommit:
		return lipgloss.JoinVertical(lipgloss.Left, body, statusBar, m.renderCommitBar())
	case m.mode == modeTransient && m.awaitingArg:
		return lipgloss.JoinVertical(lipgloss.Left, body, statusBar, m.renderArgBar())
	case m.mode == modeTransient:
		return lipgloss.JoinVertical(lipgloss.Left, body, statusBar, m.renderTransientMenu())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar, m.renderHelpBar())
}

// renderBody paints the status-buffer lines within the visible window,
// applying the Span face styles and highlighting the cursor line.
func (m Model) renderBody(height int) string {
	lines := m.visibleLines()
	offset := m.scrollOffset(height)
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	var rendered []string
	for i := offset; i < end; i++ {
		line := lines[i]
		style := m.styles.StyleForFace(m.faceAt(i))
		if i == m.cursor {
			style = m.styles.Cursor
		} else if m.sel.Active {
			lo, hi := m.sel.Range()
			if i >= lo && i <= hi {
				style = style.Background(lipgloss.Color(m.theme.SelectedBg))
			}
		}
		rendered = append(rendered, style.Width(m.width).Render(line))
	}
	for len(rendered) < height {
		rendered = append(rendered, "")
	}
	return strings.Join(rendered, "\n")
}

// scrollOffset keeps the cursor within the visible window, scrolling
// by the smallest amount necessary.
func (m Model) scrollOffset(height int) int {
	offset := m.offset
	if m.cursor < offset {
		offset = m.cursor
	} else if m.cursor >= offset+height {
		offset = m.cursor - height + 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m Model) renderBranchList(height int) string {
	var b strings.Builder
	b.WriteString(m.renderBranchFilterBar())
	b.WriteByte('\n')
	list := m.activeBranches()
	itemH := height - 1
	if len(list) == 0 {
		b.WriteString(m.styles.HelpDesc.Render("  no matches"))
		return b.String()
	}
	end := m.branchOffset + itemH
	if end > len(list) {
		end = len(list)
	}
	for i := m.branchOffset; i < end; i++ {
		b.WriteString(m.renderBranchItem(list[i], i == m.branchCursor, list[i] == m.currentBranch))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) renderBranchFilterBar() string {
	list := m.activeBranches()
	countStyled := m.styles.HelpDesc.Render(fmt.Sprintf("%d/%d", len(list), len(m.branches)))
	input := m.branchFilter.View()
	gap := m.width - lipgloss.Width(input) - lipgloss.Width(countStyled) - 1
	if gap < 0 {
		gap = 0
	}
	return lipgloss.NewStyle().Width(m.width).Render(input + strings.Repeat(" ", gap) + countStyled)
}

func (m Model) renderBranchItem(name string, selected, current bool) string {
	prefix := "  "
	if current {
		prefix = m.styles.StagedIcon.Render("* ")
	}
	line := prefix + truncatePath(name, m.width-4)
	if selected {
		return m.styles.FileSelected.Width(m.width).Render(line)
	}
	return m.styles.FileItem.Width(m.width).Render(line)
}

func truncatePath(path string, maxW int) string {
	if lipgloss.Width(path) <= maxW {
		return path
	}
	for lipgloss.Width(path) > maxW-1 && len(path) > 1 {
		path = path[1:]
	}
	return "…" + path
}

func (m Model) renderStatusBar() string {
	head := ""
	if m.state.GitData != nil {
		head = m.state.GitData.Status.Branch.Head
	}
	left := fmt.Sprintf(" %s", head)
	if m.sel.Active {
		left += "  selecting"
	}
	if m.statusMsg != "" {
		left += "  " + m.statusMsg
	}
	return m.styles.StatusBar.Width(m.width).Render(left)
}

func (m Model) renderHelpBar() string {
	pairs := []struct{ key, desc string }{
		{"j/k", "move"}, {"n/p", "section"}, {"tab", "toggle"}, {"s/u/x", "stage/unstage/discard"},
		{"enter", "visit"}, {"e", "edit"}, {"v", "select"}, {"c", "commit"}, {"b", "branch"},
		{"P/F/f", "push/pull/fetch"}, {"z", "stash"}, {"g", "refresh"}, {"q", "quit"},
	}
	return lipgloss.NewStyle().Width(m.width).Render(" " + joinHelp(pairs, m.styles))
}

func (m Model) renderBranchHelpBar() string {
	pairs := []struct{ key, desc string }{
		{"type", "filter"}, {"up/down", "navigate"}, {"enter", "select"}, {"^n", "new"}, {"esc", "back"},
	}
	return lipgloss.NewStyle().Width(m.width).Render(" " + joinHelp(pairs, m.styles))
}

func (m Model) renderVisitHelpBar() string {
	pairs := []struct{ key, desc string }{{"j/k", "scroll"}, {"esc", "back"}, {"q", "quit"}}
	return lipgloss.NewStyle().Width(m.width).Render(" " + joinHelp(pairs, m.styles))
}

func joinHelp(pairs []struct{ key, desc string }, s Styles) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, s.HelpKey.Render(p.key)+" "+s.HelpDesc.Render(p.desc))
	}
	return strings.Join(parts, "  ·  ")
}

func (m Model) renderCommitBar() string {
	prompt := m.styles.HelpKey.Render(" commit: ")
	if m.generatingMsg {
		return lipgloss.NewStyle().Width(m.width).Render(prompt + m.styles.HelpDesc.Render("generating...  esc cancel"))
	}
	return lipgloss.NewStyle().Width(m.width).Render(prompt + m.commitInput.View() + "  " + m.styles.HelpDesc.Render("esc cancel · enter commit"))
}

func (m Model) renderArgBar() string {
	prompt := m.styles.HelpKey.Render(" " + m.argPrompt)
	return lipgloss.NewStyle().Width(m.width).Render(prompt + m.argInput.View() + "  " + m.styles.HelpDesc.Render("esc cancel · enter run"))
}

func (m Model) renderTransientMenu() string {
	menu := transient.Matrix[m.transient.Category]
	var b strings.Builder
	b.WriteString(m.styles.HeaderBar.Width(m.width).Render(" " + menu.Title))
	b.WriteByte('\n')
	for _, sw := range menu.Switches {
		mark := " "
		if m.transient.On[sw.Key] {
			mark = "x"
		}
		b.WriteString(fmt.Sprintf(" [%s] %s %s\n", mark, m.styles.HelpKey.Render(sw.Key), sw.Label))
	}
	for _, a := range menu.Actions {
		b.WriteString(fmt.Sprintf("  %s %s\n", m.styles.HelpKey.Render(a.Key), a.Label))
	}
	b.WriteString(m.styles.HelpDesc.Render(" esc close"))
	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}
