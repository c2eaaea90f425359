package git

// StashPushOpts controls the flags passed to `git stash push`.
type StashPushOpts struct {
	Message          string
	IncludeUntracked bool
	All              bool
	KeepIndex        bool
	Staged           bool
}

// StashPush creates a new stash entry.
func (r *Repo) StashPush(opts StashPushOpts) error {
	args := []string{"stash", "push"}
	if opts.IncludeUntracked {
		args = append(args, "--include-untracked")
	}
	if opts.All {
		args = append(args, "--all")
	}
	if opts.KeepIndex {
		args = append(args, "--keep-index")
	}
	if opts.Staged {
		args = append(args, "--staged")
	}
	if opts.Message != "" {
		args = append(args, "-m", opts.Message)
	}
	return r.runner.Run(args...).Err()
}

// StashPop applies and drops a stash entry (HEAD stash when ref is empty).
func (r *Repo) StashPop(ref string) error {
	args := []string{"stash", "pop"}
	if ref != "" {
		args = append(args, ref)
	}
	return r.runner.Run(args...).Err()
}

// StashApply applies a stash entry without dropping it.
func (r *Repo) StashApply(ref string) error {
	args := []string{"stash", "apply"}
	if ref != "" {
		args = append(args, ref)
	}
	return r.runner.Run(args...).Err()
}

// StashDrop drops a stash entry.
func (r *Repo) StashDrop(ref string) error {
	args := []string{"stash", "drop"}
	if ref != "" {
		args = append(args, ref)
	}
	return r.runner.Run(args...).Err()
}

// StashShow returns a stash entry's diff.
func (r *Repo) StashShow(ref string) (string, error) {
	args := []string{"stash", "show", "-p"}
	if ref != "" {
		args = append(args, ref)
	}
	res := r.runner.Run(args...)
	if !res.OK() {
		return "", res.Err()
	}
	return res.Stdout, nil
}

// StashList returns the repository's stash entries.
func (r *Repo) StashList() ([]Stash, error) {
	res := r.runner.Run("stash", "list")
	if !res.OK() {
		return nil, res.Err()
	}
	return ParseStashList(res.Stdout), nil
}
