package git

import "strings"

// RepoRoot returns the repository root for dir, or ("", false) if dir
// is not inside a git repository.
func RepoRoot(dir string) (string, bool) {
	res := NewRunner(dir, nil).Run("rev-parse", "--show-toplevel")
	if !res.OK() {
		return "", false
	}
	return strings.TrimSpace(firstLine(res.Stdout)), true
}

// CurrentBranch returns the checked-out branch name, or ("", false) in
// detached-HEAD state.
func CurrentBranch(r *Runner) (string, bool) {
	res := r.Run("symbolic-ref", "--short", "HEAD")
	if !res.OK() {
		return "", false
	}
	return strings.TrimSpace(res.Stdout), true
}

// UpstreamRef returns "<remote>/<branch>" for the given branch's
// configured upstream (branch.<b>.remote + branch.<b>.merge), or
// ("", false) if either config key is missing. An empty branch uses
// the current branch.
func UpstreamRef(r *Runner, branch string) (string, bool) {
	if branch == "" {
		b, ok := CurrentBranch(r)
		if !ok {
			return "", false
		}
		branch = b
	}
	remote := configGet(r, "branch."+branch+".remote")
	merge := configGet(r, "branch."+branch+".merge")
	if remote == "" || merge == "" {
		return "", false
	}
	return remote + "/" + strings.TrimPrefix(merge, "refs/heads/"), true
}

// PushRemoteRef resolves the remote `git push` with no arguments would
// push to, via the cascade: branch.<b>.pushRemote → remote.pushDefault
// → branch.<b>.remote — the first that resolves to a non-empty value
// wins. An empty branch uses the current branch.
func PushRemoteRef(r *Runner, branch string) (string, bool) {
	if branch == "" {
		b, ok := CurrentBranch(r)
		if !ok {
			return "", false
		}
		branch = b
	}
	remote := configGet(r, "branch."+branch+".pushRemote")
	if remote == "" {
		remote = configGet(r, "remote.pushDefault")
	}
	if remote == "" {
		remote = configGet(r, "branch."+branch+".remote")
	}
	if remote == "" {
		return "", false
	}
	return remote + "/" + branch, true
}

func configGet(r *Runner, key string) string {
	res := r.Run("config", "--get", key)
	if !res.OK() {
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}
