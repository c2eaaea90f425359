package ops

import "github.com/jansmrcka/gitwright/internal/git"

// Reset, Merge, MergeAbort, Rebase, and the rebase/cherry-pick
// continuation controls forward to the repository.
func (e *Engine) Reset(mode git.ResetMode, rev string) error { return e.repo.Reset(mode, rev) }

func (e *Engine) Merge(other string, ffOnly, noFF, squash, noCommit bool) error {
	return e.repo.Merge(other, ffOnly, noFF, squash, noCommit)
}
func (e *Engine) MergeAbort() error { return e.repo.MergeAbort() }

func (e *Engine) Rebase(upstream string, opts git.RebaseOpts) error {
	return e.repo.Rebase(upstream, opts)
}
func (e *Engine) RebaseContinue() error { return e.repo.RebaseContinue() }
func (e *Engine) RebaseSkip() error     { return e.repo.RebaseSkip() }
func (e *Engine) RebaseAbort() error    { return e.repo.RebaseAbort() }

func (e *Engine) CherryPick(rev string, noCommit, edit bool) error {
	return e.repo.CherryPick(rev, noCommit, edit)
}
func (e *Engine) CherryPickContinue() error { return e.repo.CherryPickContinue() }
func (e *Engine) CherryPickAbort() error    { return e.repo.CherryPickAbort() }

// DetectInProgress reports a suspended rebase/merge/cherry-pick, if any.
func (e *Engine) DetectInProgress() git.InProgressOp { return e.repo.DetectInProgress() }
