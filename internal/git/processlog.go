package git

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultProcessLogCap is the default line cap for the process log
// (spec: "bounded to a configured line cap (default 5,000)").
const DefaultProcessLogCap = 5000

// Record is one logged git invocation.
type Record struct {
	Args   []string
	Stdin  *string
	Result Result
}

// Render formats a record the way the process-log buffer displays it:
//
//	$ git <joined args>  [<elapsed>s, ok]\n<stdout>\n
//	$ git <joined args>  [<elapsed>s, exit N]\n<stderr>\n
//
// with "<<stdin" appended to the tag line when input was piped.
func (rec Record) Render() string {
	tag := fmt.Sprintf("[%.3fs, ok]", rec.Result.Elapsed.Seconds())
	if !rec.Result.OK() {
		tag = fmt.Sprintf("[%.3fs, exit %d]", rec.Result.Elapsed.Seconds(), rec.Result.Exit)
	}
	header := fmt.Sprintf("$ git %s  %s", strings.Join(rec.Args, " "), tag)
	if rec.Stdin != nil {
		header = fmt.Sprintf("$ git %s  <<stdin  %s", strings.Join(rec.Args, " "), tag)
	}
	body := rec.Result.Stdout
	if !rec.Result.OK() {
		body = rec.Result.Stderr
	}
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

// ProcessLog is a process-wide, append-only, bounded ring of recent
// command records (spec C2). Appends and reads share one mutex, since
// the status assembler (C6) runs N runner calls on concurrent
// goroutines that all append here.
type ProcessLog struct {
	mu      sync.Mutex
	cap     int
	records []Record
}

// NewProcessLog returns a ProcessLog bounded to the given line cap. A
// cap <= 0 uses DefaultProcessLogCap.
func NewProcessLog(cap int) *ProcessLog {
	if cap <= 0 {
		cap = DefaultProcessLogCap
	}
	return &ProcessLog{cap: cap}
}

var (
	defaultLogOnce sync.Once
	defaultLog     *ProcessLog
)

// DefaultProcessLog returns the process-wide log instance used when
// callers don't construct their own.
func DefaultProcessLog() *ProcessLog {
	defaultLogOnce.Do(func() { defaultLog = NewProcessLog(DefaultProcessLogCap) })
	return defaultLog
}

// Append adds a record, then truncates the oldest lines over the cap.
func (p *ProcessLog) Append(rec Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = append(p.records, rec)
	p.truncateLocked()
}

// Text renders every retained record, oldest first, as the process-log
// buffer's displayed content.
func (p *ProcessLog) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var b strings.Builder
	for _, rec := range p.records {
		b.WriteString(rec.Render())
		b.WriteByte('\n')
	}
	return b.String()
}

// Records returns a snapshot copy of the retained records.
func (p *ProcessLog) Records() []Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Record, len(p.records))
	copy(out, p.records)
	return out
}

// truncateLocked drops the oldest records until the rendered line
// count is back within cap. Called with mu held.
func (p *ProcessLog) truncateLocked() {
	for p.lineCountLocked() > p.cap && len(p.records) > 0 {
		p.records = p.records[1:]
	}
}

func (p *ProcessLog) lineCountLocked() int {
	n := 0
	for _, rec := range p.records {
		n += strings.Count(rec.Render(), "\n")
	}
	return n
}
