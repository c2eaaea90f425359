package git

import "strings"

// CreateTag creates a lightweight tag, or an annotated one when message
// is non-empty.
func (r *Repo) CreateTag(name, message string) error {
	args := []string{"tag"}
	if message != "" {
		args = append(args, "-a", name, "-m", message)
	} else {
		args = append(args, name)
	}
	return r.runner.Run(args...).Err()
}

// DeleteTag deletes a tag.
func (r *Repo) DeleteTag(name string) error {
	return r.runner.Run("tag", "-d", name).Err()
}

// ListTags returns the repository's tag names, most recently created last.
func (r *Repo) ListTags() ([]string, error) {
	res := r.runner.Run("tag", "--list", "--sort=creatordate")
	if !res.OK() {
		return nil, res.Err()
	}
	out := strings.TrimSpace(res.Stdout)
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
