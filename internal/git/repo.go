package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStatus represents the type of change for a file.
type FileStatus rune

const (
	StatusModified  FileStatus = 'M'
	StatusAdded     FileStatus = 'A'
	StatusDeleted   FileStatus = 'D'
	StatusRenamed   FileStatus = 'R'
	StatusCopied    FileStatus = 'C'
	StatusUntracked FileStatus = '?'
)

// FileChange represents a changed file in the working tree or index.
type FileChange struct {
	Path         string
	OldPath      string // non-empty for renames
	Status       FileStatus
	Staged       bool
	AddedLines   int
	DeletedLines int
}

// UpstreamInfo holds ahead/behind counts relative to the upstream branch.
type UpstreamInfo struct {
	Upstream string // e.g. "origin/main", empty if none
	Ahead    int
	Behind   int
}

// Repo wraps git operations for a repository, backed by a Runner so every
// invocation lands in the process log.
type Repo struct {
	dir    string
	runner *Runner
}

// NewRepo validates the path is inside a git repo and returns a Repo.
func NewRepo(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	root, ok := RepoRoot(abs)
	if !ok {
		return nil, fmt.Errorf("not a git repository: %s", abs)
	}
	return &Repo{dir: root, runner: NewRunner(root, DefaultProcessLog())}, nil
}

// Dir returns the repository root directory.
func (r *Repo) Dir() string { return r.dir }

// Runner exposes the underlying Runner for packages that need lower-level
// access (status assembly, operations, transient commands).
func (r *Repo) Runner() *Runner { return r.runner }

// gitDir returns the repository's .git directory (a file's contents
// resolve a worktree's gitdir, but that is left to git itself here).
func (r *Repo) gitDir() string {
	res := r.runner.Run("rev-parse", "--git-dir")
	if !res.OK() {
		return ""
	}
	dir := strings.TrimSpace(res.Stdout)
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(r.dir, dir)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// HasCommits returns true if the repo has at least one commit.
func (r *Repo) HasCommits() bool {
	return r.runner.Run("rev-parse", "HEAD").OK()
}

// BranchName returns the current branch name, or short hash if detached.
func (r *Repo) BranchName() string {
	if name, ok := CurrentBranch(r.runner); ok {
		return name
	}
	res := r.runner.Run("rev-parse", "--short", "HEAD")
	if !res.OK() {
		return "HEAD"
	}
	return strings.TrimSpace(res.Stdout)
}

// ListBranches returns local branch names.
func (r *Repo) ListBranches() ([]string, error) {
	res := r.runner.Run("branch", "--format=%(refname:short)")
	if !res.OK() {
		return nil, res.Err()
	}
	out := strings.TrimSpace(res.Stdout)
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// CreateBranch creates a new branch at the current HEAD.
func (r *Repo) CreateBranch(name string) error {
	return r.runner.Run("branch", name).Err()
}

// CheckoutBranch switches to the named branch.
func (r *Repo) CheckoutBranch(name string) error {
	return r.runner.Run("switch", name).Err()
}

// UpstreamStatus returns ahead/behind counts relative to the upstream branch.
// Returns zero-value UpstreamInfo if no upstream is configured.
func (r *Repo) UpstreamStatus() UpstreamInfo {
	upstream, ok := UpstreamRef(r.runner, "")
	if !ok {
		return UpstreamInfo{}
	}
	info := UpstreamInfo{Upstream: upstream}

	res := r.runner.Run("rev-list", "--left-right", "--count", "HEAD...@{u}")
	if !res.OK() {
		return info
	}
	parts := strings.Fields(strings.TrimSpace(res.Stdout))
	if len(parts) == 2 {
		info.Ahead, _ = strconv.Atoi(parts[0])
		info.Behind, _ = strconv.Atoi(parts[1])
	}
	return info
}

// Push pushes to the upstream branch.
func (r *Repo) Push() error {
	return r.runner.Run("push").Err()
}

// PushSetUpstream pushes branch to remote, setting it as the upstream.
func (r *Repo) PushSetUpstream(remote, branch string) error {
	return r.runner.Run("push", "--set-upstream", remote, branch).Err()
}

// Fetch fetches from the named remote, or the default remote when empty.
func (r *Repo) Fetch(remote string) error {
	if remote == "" {
		return r.runner.Run("fetch").Err()
	}
	return r.runner.Run("fetch", remote).Err()
}

// Pull pulls from the upstream branch using fast-forward only.
func (r *Repo) Pull() error {
	return r.runner.Run("pull", "--ff-only").Err()
}

// ChangedFiles returns files changed in the working tree or index.
// If staged is true, only returns staged changes.
// If ref is non-empty, compares against that ref.
func (r *Repo) ChangedFiles(staged bool, ref string) ([]FileChange, error) {
	var files []FileChange

	if ref != "" {
		return r.changedFilesRef(ref)
	}

	// Staged changes
	var stagedFiles []FileChange
	var err error
	if r.HasCommits() {
		stagedFiles, err = r.diffNameStatus("--cached")
	} else {
		// No commits yet — diff staged against empty tree
		stagedFiles, err = r.diffNameStatusEmptyTree()
	}
	if err != nil {
		return nil, err
	}
	stagedStats, err := r.diffNumStat("--cached")
	if err != nil {
		return nil, err
	}
	applyStats(stagedFiles, stagedStats)
	for i := range stagedFiles {
		stagedFiles[i].Staged = true
	}
	files = append(files, stagedFiles...)

	if staged {
		return files, nil
	}

	// Unstaged changes
	unstagedFiles, err := r.diffNameStatus()
	if err != nil {
		return nil, err
	}
	unstagedStats, err := r.diffNumStat()
	if err != nil {
		return nil, err
	}
	applyStats(unstagedFiles, unstagedStats)
	files = append(files, unstagedFiles...)

	return files, nil
}

// UntrackedFiles returns paths of untracked files.
func (r *Repo) UntrackedFiles() ([]string, error) {
	out, err := r.run("ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// Status returns the porcelain v2 status of the repository.
func (r *Repo) Status() (Status, error) {
	res := r.runner.Run("status", "--porcelain=v2", "--branch", "--untracked-files=all")
	if !res.OK() {
		return Status{}, res.Err()
	}
	return ParseStatus(res.Stdout), nil
}

// DiffFile returns the raw diff for a single file.
func (r *Repo) DiffFile(path string, staged bool, ref string) (string, error) {
	args := []string{"diff", "--no-ext-diff", "--color=never"}
	if staged {
		args = append(args, "--cached")
	}
	if ref != "" {
		args = append(args, ref)
	}
	args = append(args, "--", path)
	return r.run(args...)
}

// ReadFileContent reads a file from the working tree.
func (r *Repo) ReadFileContent(path string) (string, error) {
	full := filepath.Join(r.dir, path)
	data, err := os.ReadFile(full)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// StageFile stages a file.
func (r *Repo) StageFile(path string) error {
	_, err := r.run("add", "--", path)
	return err
}

// UnstageFile unstages a file.
func (r *Repo) UnstageFile(path string) error {
	if !r.HasCommits() {
		_, err := r.run("rm", "--cached", "--", path)
		return err
	}
	_, err := r.run("reset", "HEAD", "--", path)
	return err
}

// StageAll stages all changes.
func (r *Repo) StageAll() error {
	_, err := r.run("add", "-A")
	return err
}

// StagedDiff returns the full diff of staged changes.
func (r *Repo) StagedDiff() (string, error) {
	return r.run("diff", "--cached", "--no-ext-diff", "--color=never")
}

// Commit creates a commit with the given message.
func (r *Repo) Commit(msg string) error {
	return r.runner.WithNoEditor().Run("commit", "-m", msg).Err()
}

// Log returns the n most recent commits.
func (r *Repo) Log(n int) ([]Commit, error) {
	res := r.runner.Run("log", "-"+strconv.Itoa(n), "--format="+LogFormat)
	if !res.OK() {
		return nil, res.Err()
	}
	return ParseLog(res.Stdout), nil
}

// CommitDiff returns the full diff for a commit.
// For the root commit (no parent), uses diff-tree against empty tree.
func (r *Repo) CommitDiff(hash string) (string, error) {
	res := r.runner.Run("diff", hash+"~1", hash, "--no-ext-diff", "--color=never")
	if !res.OK() {
		// Root commit — diff against empty tree
		return r.run("diff-tree", "-p", "--root", "--no-ext-diff", "--color=never", hash)
	}
	return res.Stdout, nil
}

// CommitDiffFiles returns files changed in a commit.
func (r *Repo) CommitDiffFiles(hash string) ([]FileChange, error) {
	out, err := r.run("diff", hash+"~1", hash, "--name-status")
	if err != nil {
		return nil, err
	}
	return parseNameStatus(out), nil
}

// run executes a git command and returns stdout.
func (r *Repo) run(args ...string) (string, error) {
	res := r.runner.Run(args...)
	if !res.OK() {
		return "", res.Err()
	}
	return res.Stdout, nil
}

// diffNameStatusEmptyTree lists staged files when there are no commits yet.
func (r *Repo) diffNameStatusEmptyTree() ([]FileChange, error) {
	// 4b825dc... is git's well-known empty tree hash
	out, err := r.run("diff-index", "--name-status", "--cached", "4b825dc642cb6eb9a060e54bf899d69f82c6b18f")
	if err != nil {
		return nil, err
	}
	return parseNameStatus(out), nil
}

// diffNameStatus runs git diff --name-status with optional extra args.
func (r *Repo) diffNameStatus(extraArgs ...string) ([]FileChange, error) {
	args := append([]string{"diff", "--name-status", "--no-ext-diff", "--color=never"}, extraArgs...)
	out, err := r.run(args...)
	if err != nil {
		return nil, err
	}
	return parseNameStatus(out), nil
}

func (r *Repo) diffNumStat(extraArgs ...string) (map[string]lineStats, error) {
	args := append([]string{"diff", "--numstat", "--no-ext-diff", "--color=never"}, extraArgs...)
	out, err := r.run(args...)
	if err != nil {
		return nil, err
	}
	return parseNumStat(out), nil
}

// changedFilesRef returns files changed compared to a ref.
func (r *Repo) changedFilesRef(ref string) ([]FileChange, error) {
	out, err := r.run("diff", "--name-status", "--no-ext-diff", "--color=never", ref)
	if err != nil {
		return nil, err
	}
	files := parseNameStatus(out)
	stats, err := r.diffNumStat(ref)
	if err != nil {
		return nil, err
	}
	applyStats(files, stats)
	return files, nil
}

type lineStats struct {
	added   int
	deleted int
}

func parseNumStat(out string) map[string]lineStats {
	stats := make(map[string]lineStats)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		path := parseNumStatPath(parts[len(parts)-1])
		added := parseNumStatInt(parts[0])
		deleted := parseNumStatInt(parts[1])
		stats[path] = lineStats{added: added, deleted: deleted}
	}
	return stats
}

func parseNumStatPath(path string) string {
	if !strings.Contains(path, " => ") {
		return path
	}
	if strings.Contains(path, "{") && strings.Contains(path, "}") {
		open := strings.Index(path, "{")
		close := strings.LastIndex(path, "}")
		if open >= 0 && close > open {
			inside := path[open+1 : close]
			parts := strings.SplitN(inside, " => ", 2)
			if len(parts) == 2 {
				return path[:open] + parts[1] + path[close+1:]
			}
		}
	}
	parts := strings.SplitN(path, " => ", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return path
}

func parseNumStatInt(s string) int {
	if s == "-" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func applyStats(files []FileChange, stats map[string]lineStats) {
	for i := range files {
		st, ok := stats[files[i].Path]
		if !ok {
			continue
		}
		files[i].AddedLines = st.added
		files[i].DeletedLines = st.deleted
	}
}

// parseNameStatus parses git diff --name-status output.
func parseNameStatus(out string) []FileChange {
	var files []FileChange
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 2 {
			continue
		}
		status := FileStatus(parts[0][0])
		fc := FileChange{Status: status, Path: parts[1]}
		if (status == StatusRenamed || status == StatusCopied) && len(parts) == 3 {
			fc.OldPath = parts[1]
			fc.Path = parts[2]
		}
		files = append(files, fc)
	}
	return files
}
