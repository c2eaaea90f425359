// Package status assembles the status dashboard: it fans out the
// concurrent snapshot commands, parses their output, builds the section
// tree, and renders it to text with line-tagged style spans.
package status

import (
	"sync"

	"github.com/jansmrcka/gitwright/internal/git"
)

// Snapshot is one fully-fetched repository state, the input to Render.
type Snapshot struct {
	Status       git.Status
	UnstagedDiff []git.FileDiff
	StagedDiff   []git.FileDiff
	Log          []git.Commit
	Stashes      []git.Stash
	Unpushed     []git.Commit
	Unpulled     []git.Commit
	Upstream     string
	HaveUpstream bool
}

// Assembler fetches and renders the status dashboard for one repository.
type Assembler struct {
	repo        *git.Repo
	LogMaxCount int
}

// New returns an Assembler bound to repo, fetching at most logMaxCount
// log entries per log-shaped snapshot slot (commits, unpushed, unpulled).
func New(repo *git.Repo, logMaxCount int) *Assembler {
	if logMaxCount <= 0 {
		logMaxCount = 10
	}
	return &Assembler{repo: repo, LogMaxCount: logMaxCount}
}

// Fetch gathers every snapshot command concurrently and parses each with
// its matching parser. A failing or missing command degrades to an empty
// result for its slot rather than failing the whole fetch — a partial
// render is preferable to none.
func (a *Assembler) Fetch() *Snapshot {
	snap := &Snapshot{}

	upstream, haveUpstream := git.UpstreamRef(a.repo.Runner(), "")
	snap.Upstream = upstream
	snap.HaveUpstream = haveUpstream

	type job func()
	var wg sync.WaitGroup
	run := func(f job) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	run(func() {
		st, err := a.repo.Status()
		if err == nil {
			snap.Status = st
		}
	})
	run(func() {
		if diff, err := a.repo.DiffText(false); err == nil {
			snap.UnstagedDiff = git.ParseDiff(diff)
		}
	})
	run(func() {
		if diff, err := a.repo.DiffText(true); err == nil {
			snap.StagedDiff = git.ParseDiff(diff)
		}
	})
	run(func() {
		if commits, err := a.repo.Log(a.LogMaxCount); err == nil {
			snap.Log = commits
		}
	})
	run(func() {
		if stashes, err := a.repo.StashList(); err == nil {
			snap.Stashes = stashes
		}
	})
	if haveUpstream {
		run(func() {
			if commits, err := a.repo.LogRange(a.LogMaxCount, upstream, "HEAD"); err == nil {
				snap.Unpushed = commits
			}
		})
		run(func() {
			if commits, err := a.repo.LogRange(a.LogMaxCount, "HEAD", upstream); err == nil {
				snap.Unpulled = commits
			}
		})
	}

	wg.Wait()
	return snap
}
