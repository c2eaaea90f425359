// Package refresh coordinates when the status dashboard re-fetches and
// re-renders, generalizing the polling tick the status buffer refresh
// used for a single file list into a single-flight fetch over the
// whole snapshot plus a debounce for refreshes triggered by file saves.
package refresh

import (
	"sync"
	"sync/atomic"
	"time"
)

// Default tuning.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultSaveDebounce = 300 * time.Millisecond
)

// Guard single-flights snapshot fetches and tags each with a generation
// number so a caller can discard a result that arrived after a newer
// fetch was already requested — the same staleness check the file-list
// buffer used per-cursor-index, generalized to the whole snapshot.
type Guard struct {
	mu         sync.Mutex
	inFlight   bool
	generation uint64
}

// Begin starts a fetch if none is in flight, returning the generation
// number to stamp on the eventual result and ok=true. If a fetch is
// already in flight, ok is false and the caller should skip issuing
// another one.
func (g *Guard) Begin() (gen uint64, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight {
		return 0, false
	}
	g.inFlight = true
	g.generation++
	return g.generation, true
}

// End marks the in-flight fetch as finished.
func (g *Guard) End() {
	g.mu.Lock()
	g.inFlight = false
	g.mu.Unlock()
}

// Current returns the generation number of the most recently started
// fetch, for comparing against a result's stamped generation.
func (g *Guard) Current() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation
}

// Stale reports whether gen is older than the most recently started
// fetch, meaning its result should be dropped in favor of a newer one.
func (g *Guard) Stale(gen uint64) bool {
	return gen != g.Current()
}

// Debouncer coalesces a burst of triggers (e.g. repeated file-save
// events) into a single refresh fired interval after the last one,
// via a generation counter: only the goroutine holding the latest
// generation at wake time actually fires.
type Debouncer struct {
	interval   time.Duration
	generation atomic.Uint64
}

// NewDebouncer returns a Debouncer that waits interval after the last
// Trigger before calling fire. interval <= 0 uses DefaultSaveDebounce.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultSaveDebounce
	}
	return &Debouncer{interval: interval}
}

// Trigger schedules fire to run after the debounce interval, canceling
// any trigger that hasn't fired yet.
func (d *Debouncer) Trigger(fire func()) {
	gen := d.generation.Add(1)
	time.AfterFunc(d.interval, func() {
		if d.generation.Load() == gen {
			fire()
		}
	})
}

// RevertTracker notes which paths changed on disk since the last
// refresh, so the status buffer can decide whether a file's
// content-dependent view state (an inline-expanded diff, a line
// selection) must be dropped because the underlying blob no longer
// matches what was rendered.
type RevertTracker struct {
	mu    sync.Mutex
	dirty map[string]bool
}

// NewRevertTracker returns an empty RevertTracker.
func NewRevertTracker() *RevertTracker {
	return &RevertTracker{dirty: make(map[string]bool)}
}

// MarkDirty records that path changed since the last Clear.
func (t *RevertTracker) MarkDirty(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty[path] = true
}

// Dirty reports whether path changed since the last Clear.
func (t *RevertTracker) Dirty(path string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dirty[path]
}

// Clear resets the dirty set, called once a refresh has consumed it.
func (t *RevertTracker) Clear() {
	t.mu.Lock()
	t.dirty = make(map[string]bool)
	t.mu.Unlock()
}
