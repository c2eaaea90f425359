package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jansmrcka/gitwright/internal/git"
	"github.com/jansmrcka/gitwright/internal/transient"
)

// openTransient opens the named category's popup menu.
func (m Model) openTransient(cat string) (tea.Model, tea.Cmd) {
	m.transient = transient.NewState(transient.Category(cat))
	m.transientOpen = true
	m.mode = modeTransient
	return m, nil
}

// updateTransientMode handles key input for an open transient menu:
// switch keys toggle infix flags, action keys run the matching suffix
// command (prompting for a positional argument first when the action
// needs one).
func (m Model) updateTransientMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.awaitingArg {
		return m.updateTransientArg(msg)
	}
	menu := transient.Matrix[m.transient.Category]
	switch msg.String() {
	case "esc", "q":
		m.transientOpen = false
		m.mode = modeStatus
		return m, nil
	}
	for _, sw := range menu.Switches {
		if sw.Key == msg.String() {
			m.transient.Toggle(sw.Key)
			return m, nil
		}
	}
	for _, a := range menu.Actions {
		if a.Key == msg.String() {
			return m.beginAction(a)
		}
	}
	return m, nil
}

func (m Model) beginAction(a transient.Action) (tea.Model, tea.Cmd) {
	switch a.Positional {
	case transient.PositionalNone:
		return m.runTransientAction(a, nil)
	case transient.PositionalUpstream:
		ref, ok := git.UpstreamRef(m.repo.Runner(), "")
		if !ok {
			m.statusMsg = "no upstream configured"
			return m, nil
		}
		return m.runTransientAction(a, []string{ref})
	case transient.PositionalPushRemote:
		ref, ok := git.PushRemoteRef(m.repo.Runner(), "")
		if !ok {
			m.statusMsg = "no push-remote configured"
			return m, nil
		}
		return m.runTransientAction(a, []string{ref})
	case transient.PositionalRemotePicker:
		// Scope cut: no remote-listing picker is wired yet, so the
		// default remote stands in for an explicit choice.
		return m.runTransientAction(a, []string{"origin"})
	case transient.PositionalBranchPicker:
		m.transientOpen = false
		m.awaitingAction = a
		return m.enterBranchModeFor(a)
	case transient.PositionalRevPrompt:
		return m.promptForArg(a, "rev: ")
	case transient.PositionalMessagePrompt:
		return m.promptForArg(a, "message: ")
	case transient.PositionalCommitBuffer:
		m.transientOpen = false
		return m.enterCommitMode()
	}
	return m, nil
}

func (m Model) promptForArg(a transient.Action, prompt string) (tea.Model, tea.Cmd) {
	m.awaitingArg = true
	m.awaitingAction = a
	m.argPrompt = prompt
	m.argInput.Reset()
	m.argInput.Focus()
	return m, textinput.Blink
}

func (m Model) updateTransientArg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.awaitingArg = false
		m.argInput.Blur()
		return m, nil
	case "enter":
		val := strings.TrimSpace(m.argInput.Value())
		m.awaitingArg = false
		m.argInput.Blur()
		if val == "" {
			m.statusMsg = "empty argument"
			return m, nil
		}
		a := m.awaitingAction
		return m.runTransientAction(a, []string{val})
	}
	var cmd tea.Cmd
	m.argInput, cmd = m.argInput.Update(msg)
	return m, cmd
}

// runTransientAction builds the git argv from the action's subcommand,
// the menu's currently-toggled switches, and any positional argument,
// then runs it against the repo's Runner.
func (m Model) runTransientAction(a transient.Action, positional []string) (tea.Model, tea.Cmd) {
	m.transientOpen = false
	m.mode = modeStatus
	argv := append([]string{}, strings.Fields(a.Subcommand)...)
	argv = append(argv, m.transient.Flags()...)
	argv = append(argv, positional...)

	repo := m.repo
	label := a.Label
	return m, func() tea.Msg {
		err := repo.Runner().Run(argv...).Err()
		return transientRunMsg{label: label, err: err}
	}
}

func clearedAction() transient.Action { return transient.Action{} }

// enterBranchModeFor opens the branch picker to source a branch-picker
// positional for a pending transient action instead of switching
// branches, the branch-picker mode's second purpose.
func (m Model) enterBranchModeFor(a transient.Action) (tea.Model, tea.Cmd) {
	m.awaitingAction = a
	return m.enterBranchMode()
}
