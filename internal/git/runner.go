package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Result is the outcome of a single git invocation.
type Result struct {
	Exit    int
	Stdout  string
	Stderr  string
	Elapsed time.Duration
}

// OK reports whether the invocation exited zero.
func (r Result) OK() bool { return r.Exit == 0 }

// Err returns nil on success, or an error carrying stderr (falling back
// to stdout, then the exit code) on failure.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	msg := strings.TrimSpace(r.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(r.Stdout)
	}
	if msg == "" {
		msg = fmt.Sprintf("git exited %d", r.Exit)
	}
	return fmt.Errorf("%s", msg)
}

var (
	gitAvailableOnce sync.Once
	gitAvailable     bool
)

// Available reports whether git is on PATH. The result is cached
// process-wide after the first call.
func Available() bool {
	gitAvailableOnce.Do(func() {
		_, err := exec.LookPath("git")
		gitAvailable = err == nil
	})
	return gitAvailable
}

// Runner invokes git as a subprocess against a fixed repository root,
// recording every invocation to a process-wide log.
type Runner struct {
	root     string
	noEditor bool
	log      *ProcessLog
}

// NewRunner returns a Runner rooted at dir, logging to the given
// process log (or the package default if log is nil).
func NewRunner(dir string, log *ProcessLog) *Runner {
	if log == nil {
		log = DefaultProcessLog()
	}
	return &Runner{root: dir, log: log}
}

// WithNoEditor returns a copy of the runner that injects GIT_EDITOR=:
// into the child environment, for commands that could otherwise try
// to open an interactive editor.
func (r *Runner) WithNoEditor() *Runner {
	cp := *r
	cp.noEditor = true
	return &cp
}

// Root returns the working directory invocations run against.
func (r *Runner) Root() string { return r.root }

// Run executes `git <args...>` and returns its captured result. It
// never returns a non-nil error for a git-side failure (non-zero exit,
// or git missing) — a non-zero Exit or Exit == -1 communicates that.
func (r *Runner) Run(args ...string) Result {
	return r.run(nil, args...)
}

// RunWithInput executes `git <args...>` piping input to stdin, then
// closing it, before waiting for the child to exit.
func (r *Runner) RunWithInput(input string, args ...string) Result {
	return r.run(&input, args...)
}

func (r *Runner) run(stdin *string, args ...string) Result {
	cmd := exec.Command("git", args...)
	if r.root != "" {
		cmd.Dir = r.root
	}
	if r.noEditor {
		cmd.Env = append(os.Environ(), "GIT_EDITOR=:", "GIT_SEQUENCE_EDITOR=:")
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = strings.NewReader(*stdin)
	}

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			res := Result{Exit: -1, Elapsed: elapsed, Stderr: fmt.Sprintf("ERROR: %v", err)}
			r.log.Append(Record{Args: args, Stdin: stdin, Result: res})
			charmlog.Debug("git spawn failed", "args", args, "err", err)
			return res
		}
	}

	res := Result{
		Exit:    cmd.ProcessState.ExitCode(),
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: elapsed,
	}
	r.log.Append(Record{Args: args, Stdin: stdin, Result: res})
	if res.OK() {
		charmlog.Debug("git ok", "args", args, "elapsed", res.Elapsed)
	} else {
		charmlog.Warn("git failed", "args", args, "exit", res.Exit, "stderr", firstLine(res.Stderr))
	}
	return res
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
