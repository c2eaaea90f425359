package git

// ResetMode names a `git reset` mode.
type ResetMode string

const (
	ResetSoft  ResetMode = "--soft"
	ResetMixed ResetMode = "--mixed"
	ResetHard  ResetMode = "--hard"
)

// Reset resets HEAD (and, per mode, the index/worktree) to rev.
func (r *Repo) Reset(mode ResetMode, rev string) error {
	return r.runner.Run("reset", string(mode), rev).Err()
}

// Merge merges other into the current branch.
func (r *Repo) Merge(other string, ffOnly, noFF, squash, noCommit bool) error {
	args := []string{"merge"}
	switch {
	case ffOnly:
		args = append(args, "--ff-only")
	case noFF:
		args = append(args, "--no-ff")
	}
	if squash {
		args = append(args, "--squash")
	}
	if noCommit {
		args = append(args, "--no-commit")
	}
	args = append(args, other)
	return r.runner.WithNoEditor().Run(args...).Err()
}

// MergeAbort aborts an in-progress merge.
func (r *Repo) MergeAbort() error {
	return r.runner.Run("merge", "--abort").Err()
}

// RebaseOpts controls the flags passed to `git rebase`.
type RebaseOpts struct {
	Autostash   bool
	Interactive bool
	Autosquash  bool
}

// Rebase rebases the current branch onto upstream.
func (r *Repo) Rebase(upstream string, opts RebaseOpts) error {
	args := []string{"rebase"}
	if opts.Autostash {
		args = append(args, "--autostash")
	}
	if opts.Interactive {
		args = append(args, "--interactive")
	}
	if opts.Autosquash {
		args = append(args, "--autosquash")
	}
	args = append(args, upstream)
	return r.runner.WithNoEditor().Run(args...).Err()
}

// RebaseContinue, RebaseSkip, and RebaseAbort drive an in-progress rebase.
func (r *Repo) RebaseContinue() error { return r.runner.WithNoEditor().Run("rebase", "--continue").Err() }
func (r *Repo) RebaseSkip() error     { return r.runner.Run("rebase", "--skip").Err() }
func (r *Repo) RebaseAbort() error    { return r.runner.Run("rebase", "--abort").Err() }

// CherryPick cherry-picks rev onto the current branch.
func (r *Repo) CherryPick(rev string, noCommit, edit bool) error {
	args := []string{"cherry-pick"}
	if noCommit {
		args = append(args, "--no-commit")
	}
	if edit {
		args = append(args, "--edit")
	}
	args = append(args, rev)
	return r.runner.WithNoEditor().Run(args...).Err()
}

// CherryPickContinue and CherryPickAbort drive an in-progress cherry-pick.
func (r *Repo) CherryPickContinue() error {
	return r.runner.WithNoEditor().Run("cherry-pick", "--continue").Err()
}
func (r *Repo) CherryPickAbort() error { return r.runner.Run("cherry-pick", "--abort").Err() }

// InProgressOp reports a rebase/merge/cherry-pick in progress, detected
// from the presence of the corresponding state files under .git.
type InProgressOp string

const (
	OpNone        InProgressOp = ""
	OpRebase      InProgressOp = "rebase"
	OpMerge       InProgressOp = "merge"
	OpCherryPick  InProgressOp = "cherry-pick"
)

// DetectInProgress inspects .git for rebase-merge, rebase-apply,
// MERGE_HEAD, or CHERRY_PICK_HEAD and reports which operation, if any,
// is currently suspended awaiting continue/abort.
func (r *Repo) DetectInProgress() InProgressOp {
	gitDir := r.gitDir()
	if gitDir == "" {
		return OpNone
	}
	switch {
	case pathExists(gitDir + "/rebase-merge"), pathExists(gitDir + "/rebase-apply"):
		return OpRebase
	case pathExists(gitDir + "/MERGE_HEAD"):
		return OpMerge
	case pathExists(gitDir + "/CHERRY_PICK_HEAD"):
		return OpCherryPick
	}
	return OpNone
}
