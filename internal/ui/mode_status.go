package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jansmrcka/gitwright/internal/section"
)

// updateStatusMode handles key input for the status dashboard, the
// buffer's default mode: cursor movement over the section tree,
// collapse/expand, and the stage/unstage/discard/visit operations.
func (m Model) updateStatusMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	lines := m.visibleLines()

	if m.pendingDel {
		switch msg.String() {
		case "y":
			m.pendingDel = false
			return m.runOp("discard", func() error { return m.engine.Discard(m.rendered.Tree, m.cursor, m.sel) })
		default:
			m.pendingDel = false
			m.statusMsg = "discard aborted"
			return m, nil
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(lines)-1 {
			m.cursor++
		}
		m.syncSelection()
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncSelection()
		return m, nil
	case "n":
		if l, ok := m.rendered.Tree.NextSectionLine(m.cursor); ok {
			m.cursor = l
		}
		return m, nil
	case "p":
		if l, ok := m.rendered.Tree.PrevSectionLine(m.cursor); ok {
			m.cursor = l
		}
		return m, nil
	case "}":
		if l, ok := m.rendered.Tree.NextSiblingLine(m.cursor); ok {
			m.cursor = l
		}
		return m, nil
	case "{":
		if l, ok := m.rendered.Tree.PrevSiblingLine(m.cursor); ok {
			m.cursor = l
		}
		return m, nil
	case "^":
		if l, ok := m.rendered.Tree.ParentSectionLine(m.cursor); ok {
			m.cursor = l
		}
		return m, nil
	case "1", "2", "3", "4":
		level := int(msg.String()[0] - '0')
		m.rendered.Tree.SetVisibilityLevel(level)
		return m, nil
	case "tab":
		return m.toggleAtPoint()
	case "v":
		if m.sel.Active {
			m.sel.Clear()
		} else {
			m.sel.Start(m.cursor)
		}
		return m, nil
	case "esc":
		m.sel.Clear()
		return m, nil
	case "s":
		return m.runOp("stage", func() error { return m.engine.Stage(m.rendered.Tree, m.cursor, m.sel) })
	case "u":
		return m.runOp("unstage", func() error { return m.engine.Unstage(m.rendered.Tree, m.cursor, m.sel) })
	case "x":
		m.pendingDel = true
		m.statusMsg = "discard at point? (y/n)"
		return m, nil
	case "enter":
		return m.visitAtPoint()
	case "e":
		return m.editAtPoint()
	case "c":
		return m.enterCommitMode()
	case "b":
		return m.enterBranchMode()
	case "g":
		return m, m.refreshCmd()
	case "P":
		return m.openTransient("push")
	case "F":
		return m.openTransient("pull")
	case "f":
		return m.openTransient("fetch")
	case "z":
		return m.openTransient("stash")
	case "m":
		return m.openTransient("merge")
	case "r":
		return m.openTransient("rebase")
	case "A":
		return m.openTransient("cherry-pick")
	case "X":
		return m.openTransient("reset")
	case "t":
		return m.openTransient("tag")
	case "l":
		return m.openTransient("log")
	case "d":
		return m.openTransient("diff")
	}
	return m, nil
}

// syncSelection extends an active line selection to track the cursor.
func (m *Model) syncSelection() {
	if m.sel.Active {
		m.sel.Extend(m.cursor)
	}
}

// toggleAtPoint flips collapse/expand for whatever section kind is
// under the cursor, using the re-render shortcut rather than a fetch.
func (m Model) toggleAtPoint() (tea.Model, tea.Cmd) {
	idx, ok := m.rendered.Tree.SectionAtLine(m.cursor)
	if !ok {
		return m, nil
	}
	n := m.rendered.Tree.Node(idx)
	switch n.Kind {
	case section.KindSectionHeader:
		shd := n.Data.(*section.SectionHeaderData)
		m.state.ToggleSectionCollapsed(string(shd.StatusKey))
		m.rerender()
	case section.KindFile:
		fd := n.Data.(*section.FileData)
		m.state.ToggleFileExpand(fd.ExpandKey)
		m.rerender()
	case section.KindCommit:
		cd := n.Data.(*section.CommitData)
		if err := m.state.ToggleCommitExpand(m.repo, cd.Hash); err != nil {
			m.statusMsg = "diff fetch failed: " + err.Error()
			return m, nil
		}
		m.rerender()
	}
	return m, nil
}

// runOp executes a mutating operation and always schedules a refresh
// afterward, per the propagation policy: failures surface as a message
// but the buffer still reconciles with the repository's true state.
func (m Model) runOp(label string, f func() error) (tea.Model, tea.Cmd) {
	err := f()
	cmd := m.refreshCmd()
	return m, tea.Batch(func() tea.Msg { return opDoneMsg{label: label, err: err} }, cmd)
}

func (m Model) visitAtPoint() (tea.Model, tea.Cmd) {
	target, err := m.engine.Visit(m.rendered.Tree, m.cursor)
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	switch target.Kind {
	case "file":
		m.SelectedFile = target.Path
		if err := m.openInEditor(target.Path); err != nil {
			m.statusMsg = "open failed: " + err.Error()
		}
		return m, nil
	case "blob", "commit":
		m.visitTitle = target.Path
		if target.Kind == "commit" {
			m.visitTitle = target.Hash
		}
		m.visitViewport = initViewport(m.width, m.contentHeight())
		m.visitViewport.SetContent(target.Content)
		m.mode = modeVisit
		return m, nil
	}
	return m, nil
}

func (m Model) editAtPoint() (tea.Model, tea.Cmd) {
	idx, ok := m.rendered.Tree.SectionAtLine(m.cursor)
	if !ok {
		return m, nil
	}
	n := m.rendered.Tree.Node(idx)
	var path string
	switch n.Kind {
	case section.KindFile:
		path = n.Data.(*section.FileData).Path
	case section.KindHunk:
		hd := n.Data.(*section.HunkData)
		path = hd.FileDiff.Path()
	default:
		return m, nil
	}
	m.SelectedFile = path
	if err := m.openInEditor(path); err != nil {
		m.statusMsg = "open failed: " + err.Error()
	}
	return m, nil
}

func (m Model) updateVisitMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.mode = modeStatus
		return m, nil
	}
	var cmd tea.Cmd
	m.visitViewport, cmd = m.visitViewport.Update(msg)
	return m, cmd
}
