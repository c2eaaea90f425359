package ui

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jansmrcka/gitwright/internal/config"
	"github.com/jansmrcka/gitwright/internal/git"
	"github.com/jansmrcka/gitwright/internal/ops"
	"github.com/jansmrcka/gitwright/internal/refresh"
	"github.com/jansmrcka/gitwright/internal/status"
	"github.com/jansmrcka/gitwright/internal/theme"
	"github.com/jansmrcka/gitwright/internal/transient"
)

// viewMode selects which key handler and which overlay View renders.
type viewMode int

const (
	modeStatus viewMode = iota
	modeCommit
	modeBranchPicker
	modeTransient
	modeVisit
)

const (
	minWidth  = 60
	minHeight = 10
)

type tickMsg time.Time

// statusLoadedMsg carries a freshly fetched snapshot, stamped with the
// refresh.Guard generation it was started under so a stale result (a
// newer fetch already began) can be dropped.
type statusLoadedMsg struct {
	snap *status.Snapshot
	gen  uint64
}

type opDoneMsg struct {
	label string
	err   error
}

type commitDoneMsg struct{ err error }

type commitMsgGeneratedMsg struct {
	message string
	err     error
}

type branchesLoadedMsg struct {
	branches []string
	current  string
	err      error
}

type branchSwitchedMsg struct{ err error }

type branchCreatedMsg struct {
	name string
	err  error
}

type transientRunMsg struct {
	label string
	err   error
}

// Model is the Bubble Tea model for the status dashboard.
type Model struct {
	repo      *git.Repo
	cfg       config.Config
	assembler *status.Assembler
	state     *status.State
	rendered  status.Rendered
	engine    *ops.Engine
	guard     *refresh.Guard
	debounce  *refresh.Debouncer

	styles Styles
	theme  theme.Theme

	mode   viewMode
	cursor int // line index (0-based) into rendered.Text
	offset int // first visible line

	width  int
	height int
	ready  bool

	statusMsg string

	SelectedFile string // set on "visit" against a file, read after Run()

	sel        ops.LineSelection
	pendingDel bool // awaiting y/n confirmation for a discard

	commitInput   textinput.Model
	generatingMsg bool

	// Branch picker state, grounded on the teacher's branch picker.
	branches         []string
	filteredBranches []string
	branchCursor     int
	branchOffset     int
	currentBranch    string
	branchFilter     textinput.Model
	branchCreating   bool
	branchInput      textinput.Model

	// Transient menu state.
	transient      transient.State
	transientOpen  bool
	awaitingArg     bool
	awaitingAction  transient.Action
	argInput        textinput.Model
	argPrompt       string

	// Visit sub-view (old-side blob / commit patch), its own scroll.
	visitViewport viewport.Model
	visitTitle    string

	startInCommit bool // enter commit compose as soon as the first status loads
}

// StartInCommitMode arranges for the model to drop straight into commit
// compose once its first status snapshot has loaded, for a CLI entry
// point that wants to skip the dashboard.
func (m Model) StartInCommitMode() Model {
	m.startInCommit = true
	return m
}

// NewModel creates the status dashboard model.
func NewModel(repo *git.Repo, cfg config.Config, styles Styles, t theme.Theme) Model {
	ci := textinput.New()
	ci.Placeholder = "commit message..."
	ci.CharLimit = 200

	bf := textinput.New()
	bf.Placeholder = "filter..."
	bf.CharLimit = 100

	bi := textinput.New()
	bi.Placeholder = "branch name..."
	bi.CharLimit = 200

	ai := textinput.New()
	ai.CharLimit = 200

	return Model{
		repo:         repo,
		cfg:          cfg,
		assembler:    status.New(repo, 20),
		state:        status.NewState(),
		engine:       ops.New(repo),
		guard:        &refresh.Guard{},
		debounce:     refresh.NewDebouncer(refresh.DefaultPollInterval),
		styles:       styles,
		theme:        t,
		commitInput:  ci,
		branchFilter: bf,
		branchInput:  bi,
		argInput:     ai,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(refresh.DefaultPollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd starts a concurrent snapshot fetch, single-flighted through
// the Guard so an in-flight fetch is never duplicated.
func (m Model) refreshCmd() tea.Cmd {
	gen, ok := m.guard.Begin()
	if !ok {
		return nil
	}
	assembler := m.assembler
	return func() tea.Msg {
		snap := assembler.Fetch()
		return statusLoadedMsg{snap: snap, gen: gen}
	}
}

// rerender rebuilds rendered from the persisted snapshot without
// re-fetching, the "re-render shortcut" for a pure view-state toggle
// (collapse, expand, visibility level).
func (m *Model) rerender() {
	if m.state.GitData == nil {
		return
	}
	m.rendered = status.Render(m.state.GitData, m.state)
	if m.cursor >= len(m.visibleLines()) {
		m.cursor = max(0, len(m.visibleLines())-1)
	}
}

func (m Model) visibleLines() []string {
	return strings.Split(strings.TrimRight(m.rendered.Text, "\n"), "\n")
}

func (m Model) contentHeight() int { return m.height - 2 }

func (m Model) faceAt(line int) string {
	for _, sp := range m.rendered.Spans {
		if line >= sp.StartLine && line <= sp.EndLine {
			return sp.Face
		}
	}
	return ""
}

func (m Model) openInEditor(path string) error {
	abs := filepath.Join(m.repo.Dir(), path)
	editor := m.cfg.EditorCmd
	if editor == "" {
		editor = "nvim"
	}
	cmd := exec.Command("tmux", "new-window", "-c", m.repo.Dir(), editor, abs)
	return cmd.Run()
}

func (m Model) branchCmdErr(prefix string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}

func initViewport(width, height int) viewport.Model {
	if height < 0 {
		height = 0
	}
	return viewport.New(width, height)
}
