package ops

import "github.com/jansmrcka/gitwright/internal/git"

// StashPush, StashPop, StashApply, StashDrop, StashShow, and StashList
// forward to the repository; they exist on Engine so the transient
// layer has one place to dispatch stash-category actions alongside
// stage/unstage/discard/visit.
func (e *Engine) StashPush(opts git.StashPushOpts) error { return e.repo.StashPush(opts) }
func (e *Engine) StashPop(ref string) error              { return e.repo.StashPop(ref) }
func (e *Engine) StashApply(ref string) error            { return e.repo.StashApply(ref) }
func (e *Engine) StashDrop(ref string) error             { return e.repo.StashDrop(ref) }
func (e *Engine) StashShow(ref string) (string, error)   { return e.repo.StashShow(ref) }
func (e *Engine) StashList() ([]git.Stash, error)        { return e.repo.StashList() }
