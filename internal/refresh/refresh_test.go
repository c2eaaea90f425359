package refresh

import (
	"sync"
	"testing"
	"time"
)

func TestGuard_SingleFlight(t *testing.T) {
	t.Parallel()
	var g Guard

	gen1, ok := g.Begin()
	if !ok {
		t.Fatal("expected first Begin to succeed")
	}
	if _, ok := g.Begin(); ok {
		t.Fatal("expected second Begin to fail while in flight")
	}
	g.End()

	gen2, ok := g.Begin()
	if !ok {
		t.Fatal("expected Begin to succeed after End")
	}
	if gen2 <= gen1 {
		t.Errorf("generation did not advance: %d -> %d", gen1, gen2)
	}
}

func TestGuard_Stale(t *testing.T) {
	t.Parallel()
	var g Guard
	gen1, _ := g.Begin()
	g.End()
	gen2, _ := g.Begin()
	g.End()

	if !g.Stale(gen1) {
		t.Error("expected gen1 to be stale once gen2 started")
	}
	if g.Stale(gen2) {
		t.Error("expected gen2 to be current")
	}
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	t.Parallel()
	d := NewDebouncer(20 * time.Millisecond)
	var mu sync.Mutex
	fires := 0
	fire := func() {
		mu.Lock()
		fires++
		mu.Unlock()
	}

	for i := 0; i < 5; i++ {
		d.Trigger(fire)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fires != 1 {
		t.Errorf("fires = %d; want 1", fires)
	}
}

func TestRevertTracker(t *testing.T) {
	t.Parallel()
	tr := NewRevertTracker()
	if tr.Dirty("f.txt") {
		t.Error("expected clean tracker")
	}
	tr.MarkDirty("f.txt")
	if !tr.Dirty("f.txt") {
		t.Error("expected f.txt dirty")
	}
	tr.Clear()
	if tr.Dirty("f.txt") {
		t.Error("expected dirty set cleared")
	}
}
