package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jansmrcka/gitwright/internal/status"
)

// Update stays dispatcher-only; behavior lives in focused modules.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tickMsg:
		return m.handleTick()
	case statusLoadedMsg:
		return m.handleStatusLoaded(msg)
	case opDoneMsg:
		return m.handleOpDone(msg)
	case transientRunMsg:
		return m.handleTransientRun(msg)
	case commitDoneMsg:
		return m.handleCommitDone(msg)
	case commitMsgGeneratedMsg:
		return m.handleCommitMsgGenerated(msg)
	case branchesLoadedMsg:
		return m.handleBranchesLoaded(msg)
	case branchSwitchedMsg:
		return m.handleBranchSwitched(msg)
	case branchCreatedMsg:
		return m.handleBranchCreated(msg)
	case tea.KeyMsg:
		switch m.mode {
		case modeStatus:
			return m.updateStatusMode(msg)
		case modeCommit:
			return m.updateCommitMode(msg)
		case modeBranchPicker:
			return m.updateBranchMode(msg)
		case modeTransient:
			return m.updateTransientMode(msg)
		case modeVisit:
			return m.updateVisitMode(msg)
		}
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	return m, nil
}

// handleStatusLoaded installs a freshly fetched snapshot, discarding it
// if a newer fetch has since begun (the Guard's staleness check).
func (m Model) handleStatusLoaded(msg statusLoadedMsg) (tea.Model, tea.Cmd) {
	m.guard.End()
	if m.guard.Stale(msg.gen) {
		return m, nil
	}
	cursorLine := m.cursor
	m.state.GitData = msg.snap
	m.rendered = status.Render(msg.snap, m.state)
	m.cursor = clampCursor(cursorLine, len(m.visibleLines()))
	if m.startInCommit {
		m.startInCommit = false
		return m.enterCommitMode()
	}
	return m, nil
}

func (m Model) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusMsg = msg.label + " failed: " + msg.err.Error()
	} else {
		m.statusMsg = msg.label + " ok"
	}
	return m, nil
}

func (m Model) handleTransientRun(msg transientRunMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusMsg = msg.label + " failed: " + msg.err.Error()
		return m, nil
	}
	m.statusMsg = msg.label + " ok"
	return m, m.refreshCmd()
}

func (m Model) handleCommitDone(msg commitDoneMsg) (tea.Model, tea.Cmd) {
	m.mode = modeStatus
	if msg.err != nil {
		m.statusMsg = "commit failed: " + msg.err.Error()
		return m, nil
	}
	m.statusMsg = "committed!"
	m.commitInput.Reset()
	return m, m.refreshCmd()
}

func (m Model) handleCommitMsgGenerated(msg commitMsgGeneratedMsg) (tea.Model, tea.Cmd) {
	m.generatingMsg = false
	if msg.err != nil {
		m.statusMsg = "ai msg failed: " + msg.err.Error()
		return m, nil
	}
	m.commitInput.SetValue(msg.message)
	m.commitInput.CursorEnd()
	return m, nil
}

func (m Model) handleBranchesLoaded(msg branchesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusMsg = "branch list failed: " + msg.err.Error()
		return m, nil
	}
	if len(msg.branches) == 0 {
		m.statusMsg = "no branches"
		return m, nil
	}
	m.mode = modeBranchPicker
	m.branches = msg.branches
	m.currentBranch = msg.current
	m.branchCursor = 0
	m.branchOffset = 0
	for i, b := range m.branches {
		if b == msg.current {
			m.branchCursor = i
			break
		}
	}
	m.filteredBranches = nil
	m.branchFilter.Reset()
	m.branchFilter.Focus()
	return m, textinput.Blink
}

func (m Model) handleBranchSwitched(msg branchSwitchedMsg) (tea.Model, tea.Cmd) {
	m.mode = modeStatus
	m.filteredBranches = nil
	m.branchFilter.Reset()
	m.branchFilter.Blur()
	if msg.err != nil {
		m.statusMsg = "switch failed: " + msg.err.Error()
		return m, nil
	}
	m.statusMsg = "switched to " + m.repo.BranchName()
	m.cursor = 0
	return m, m.refreshCmd()
}

func (m Model) handleBranchCreated(msg branchCreatedMsg) (tea.Model, tea.Cmd) {
	m.branchCreating = false
	m.branchInput.Reset()
	if msg.err != nil {
		m.statusMsg = "create failed: " + msg.err.Error()
		return m, nil
	}
	m.mode = modeStatus
	m.statusMsg = "created & switched to " + msg.name
	m.cursor = 0
	return m, m.refreshCmd()
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.mode == modeCommit || m.mode == modeBranchPicker || m.generatingMsg {
		return m, tickCmd()
	}
	return m, tea.Batch(m.refreshCmd(), tickCmd())
}

func clampCursor(cursor, lineCount int) int {
	if lineCount == 0 {
		return 0
	}
	if cursor >= lineCount {
		return lineCount - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
