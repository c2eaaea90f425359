package git

import "strconv"

// DiffText returns the raw unstaged (or, if staged, the cached/index)
// diff for the whole working tree.
func (r *Repo) DiffText(staged bool) (string, error) {
	args := []string{"diff", "--no-ext-diff", "--color=never"}
	if staged {
		args = append(args, "--cached")
	}
	res := r.runner.Run(args...)
	if !res.OK() {
		return "", res.Err()
	}
	return res.Stdout, nil
}

// LogRange returns up to n commits reachable from to but not from from
// (i.e. `git log from..to`).
func (r *Repo) LogRange(n int, from, to string) ([]Commit, error) {
	res := r.runner.Run("log", "-"+strconv.Itoa(n), "--format="+LogFormat, from+".."+to)
	if !res.OK() {
		return nil, res.Err()
	}
	return ParseLog(res.Stdout), nil
}
