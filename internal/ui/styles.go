package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jansmrcka/gitwright/internal/theme"
)

// Styles holds all lipgloss styles derived from a theme.
type Styles struct {
	// File list
	FileItem     lipgloss.Style
	FileSelected lipgloss.Style
	StagedIcon   lipgloss.Style

	// File status colors
	StatusModified  lipgloss.Style
	StatusAdded     lipgloss.Style
	StatusDeleted   lipgloss.Style
	StatusRenamed   lipgloss.Style
	StatusUntracked lipgloss.Style

	// Diff
	DiffAdded           lipgloss.Style
	DiffRemoved         lipgloss.Style
	DiffAddedBg         lipgloss.Style // bg-only, for padding highlighted lines
	DiffRemovedBg       lipgloss.Style // bg-only, for padding highlighted lines
	DiffContext         lipgloss.Style
	DiffHunkHeader      lipgloss.Style
	DiffLineNum         lipgloss.Style
	DiffLineNumAdded    lipgloss.Style
	DiffLineNumRemoved  lipgloss.Style

	// Chrome
	HeaderBar   lipgloss.Style
	StatusBar   lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	CardBg   lipgloss.Style

	// Commit input
	CommitInput lipgloss.Style

	// Accent
	Accent lipgloss.Style

	// Status dashboard
	SectionHeader lipgloss.Style
	Commit        lipgloss.Style
	CommitHash    lipgloss.Style
	Stash         lipgloss.Style
	Cursor        lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t theme.Theme) Styles {
	return Styles{
		FileItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fg)).
			PaddingLeft(1),
		FileSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Bold(true).
			PaddingLeft(1),
		StagedIcon: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.StagedFg)).
			Bold(true),

		StatusModified: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ModifiedFg)),
		StatusAdded: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.AddedFileFg)),
		StatusDeleted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.DeletedFg)),
		StatusRenamed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.RenamedFg)),
		StatusUntracked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.UntrackedFg)),

		DiffAdded: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.AddedFg)).
			Background(lipgloss.Color(t.AddedBg)),
		DiffRemoved: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.RemovedFg)).
			Background(lipgloss.Color(t.RemovedBg)),
		DiffAddedBg: lipgloss.NewStyle().
			Background(lipgloss.Color(t.AddedBg)),
		DiffRemovedBg: lipgloss.NewStyle().
			Background(lipgloss.Color(t.RemovedBg)),
		DiffContext: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fg)),
		DiffHunkHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HunkFg)),
		DiffLineNum: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.LineNumFg)),
		DiffLineNumAdded: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.LineNumAddedFg)).
			Background(lipgloss.Color(t.AddedBg)),
		DiffLineNumRemoved: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.LineNumRemovedFg)).
			Background(lipgloss.Color(t.RemovedBg)),

		HeaderBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1),
		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.StatusBarBg)).
			Foreground(lipgloss.Color(t.StatusBarFg)),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpKeyFg)).
			Bold(true).
			Underline(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpDescFg)),
		CardBg: lipgloss.NewStyle().
			Background(lipgloss.Color(t.CardBg)),

		CommitInput: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fg)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.AccentFg)),

		SectionHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SectionHeaderFg)).
			Bold(true),
		Commit: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.CommitFg)),
		CommitHash: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.CommitHashFg)),
		Stash: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.StashFg)),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectedBg)).
			Foreground(lipgloss.Color(t.SelectedFg)),
	}
}

// StyleForFace maps a status.Span face tag to the lipgloss style that
// renders it. Unknown faces fall back to a no-op style so a render
// never panics on a face the theme hasn't caught up with yet.
func (s Styles) StyleForFace(face string) lipgloss.Style {
	switch face {
	case "header":
		return s.HeaderBar
	case "sectionheader":
		return s.SectionHeader
	case "file":
		return s.FileItem
	case "hunk":
		return s.DiffHunkHeader
	case "commit":
		return s.Commit
	case "stash":
		return s.Stash
	case "diff.add":
		return s.DiffAdded
	case "diff.del":
		return s.DiffRemoved
	case "diff.context":
		return s.DiffContext
	default:
		return lipgloss.NewStyle()
	}
}
