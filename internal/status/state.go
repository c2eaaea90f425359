package status

import "github.com/jansmrcka/gitwright/internal/git"

// State is the per-repository status-buffer state that survives across
// refreshes: which files/commits are inline-expanded, the commit-diff
// cache, which section headers are collapsed, the last full snapshot
// (for the re-render shortcut), and the cursor to restore after a render.
type State struct {
	ExpandedFiles     map[string]bool
	ExpandedCommits   map[string]bool
	CommitDiffs       map[string][]git.FileDiff
	CollapsedSections map[string]bool
	GitData           *Snapshot
	SavedCursorLine   int
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		ExpandedFiles:     make(map[string]bool),
		ExpandedCommits:   make(map[string]bool),
		CommitDiffs:       make(map[string][]git.FileDiff),
		CollapsedSections: make(map[string]bool),
	}
}

// ToggleFileExpand flips whether expandKey shows its inline diff.
func (s *State) ToggleFileExpand(expandKey string) {
	s.ExpandedFiles[expandKey] = !s.ExpandedFiles[expandKey]
}

// ToggleCommitExpand flips whether hash shows its inline diff, fetching
// and caching the commit's diff on first expansion.
func (s *State) ToggleCommitExpand(repo *git.Repo, hash string) error {
	s.ExpandedCommits[hash] = !s.ExpandedCommits[hash]
	if s.ExpandedCommits[hash] {
		if _, ok := s.CommitDiffs[hash]; !ok {
			out, err := repo.ShowCommitDiff(hash)
			if err != nil {
				return err
			}
			s.CommitDiffs[hash] = git.ParseDiff(out)
		}
	}
	return nil
}

// ToggleSectionCollapsed flips whether a top-level group is collapsed.
func (s *State) ToggleSectionCollapsed(key string) {
	s.CollapsedSections[key] = !s.CollapsedSections[key]
}
