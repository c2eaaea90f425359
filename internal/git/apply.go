package git

// ApplyCached stages a patch built by the patch engine (`git apply --cached`).
func (r *Repo) ApplyCached(patchText string) error {
	return r.runner.RunWithInput(patchText, "apply", "--cached").Err()
}

// ApplyCachedReverse unstages a patch (`git apply --cached --reverse`).
func (r *Repo) ApplyCachedReverse(patchText string) error {
	return r.runner.RunWithInput(patchText, "apply", "--cached", "--reverse").Err()
}

// ApplyReverse discards a patch against the worktree (`git apply --reverse`).
func (r *Repo) ApplyReverse(patchText string) error {
	return r.runner.RunWithInput(patchText, "apply", "--reverse").Err()
}

// RestoreStaged unstages a whole file (`git restore --staged <path>`).
func (r *Repo) RestoreStaged(path string) error {
	return r.runner.Run("restore", "--staged", "--", path).Err()
}

// CheckoutPath discards unstaged changes to a tracked file from disk.
func (r *Repo) CheckoutPath(path string) error {
	return r.runner.Run("checkout", "--", path).Err()
}

// RemoveFile removes an untracked file from the working tree and index.
func (r *Repo) RemoveFile(path string) error {
	return r.runner.Run("rm", "-f", "--", path).Err()
}

// ShowBlob returns the content of path as it exists at ref (HEAD for the
// staged side, the empty string for the index).
func (r *Repo) ShowBlob(ref, path string) (string, error) {
	spec := ref + ":" + path
	if ref == "" {
		spec = ":" + path
	}
	res := r.runner.Run("show", spec)
	if !res.OK() {
		return "", res.Err()
	}
	return res.Stdout, nil
}

// ShowCommit returns the diff for a single commit, suitable for a
// dedicated commit-view buffer.
func (r *Repo) ShowCommit(hash string) (string, error) {
	res := r.runner.Run("show", "--format=Commit: %H%nAuthor: %an <%ae>%nDate:   %ad%n%n    %s%n", hash)
	if !res.OK() {
		return "", res.Err()
	}
	return res.Stdout, nil
}

// ShowCommitDiff returns a commit's diff body only (no headers), for
// caching under commit_diffs and parsing with ParseDiff.
func (r *Repo) ShowCommitDiff(hash string) (string, error) {
	res := r.runner.Run("show", "--format=", hash)
	if !res.OK() {
		return "", res.Err()
	}
	return res.Stdout, nil
}
