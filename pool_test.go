package html2richtext

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alnah/go-html2richtext/richtext"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit can exceed max",
			workers: 128,
			want:    128,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs*workersPerCPU, MinWorkers), MaxWorkers),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveWorkers(tt.workers)
			if got != tt.want {
				t.Errorf("ResolveWorkers(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestWorkerPool_TryAcquire(t *testing.T) {
	t.Parallel()

	p := newWorkerPool(2)

	if !p.tryAcquire() || !p.tryAcquire() {
		t.Fatal("tryAcquire() should succeed while slots are free")
	}
	if p.tryAcquire() {
		t.Error("tryAcquire() should fail when the budget is spent")
	}

	p.release()
	if !p.tryAcquire() {
		t.Error("tryAcquire() should succeed after release")
	}
}

func TestWorkerPool_MinimumSize(t *testing.T) {
	t.Parallel()

	if got := cap(newWorkerPool(0).sem); got != MinWorkers {
		t.Errorf("newWorkerPool(0) capacity = %d, want %d", got, MinWorkers)
	}
}

func TestWorkerPool_SpawnBoundsGoroutines(t *testing.T) {
	t.Parallel()

	const budget = 2
	p := newWorkerPool(budget)

	var (
		running atomic.Int32
		peak    atomic.Int32
		mu      sync.Mutex
	)
	work := func() ([]richtext.Node, error) {
		n := running.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		time.Sleep(2 * time.Millisecond)
		running.Add(-1)
		return nil, nil
	}

	var pending []*Deferred
	for range 10 {
		pending = append(pending, p.spawn(work))
	}
	for _, d := range pending {
		<-d.Done()
	}

	// Inline fallbacks run on this goroutine, so at most budget+1 at once.
	if got := peak.Load(); got > budget+1 {
		t.Errorf("peak concurrency = %d, want at most %d", got, budget+1)
	}
}

func TestWorkerPool_SpawnInlineWhenFull(t *testing.T) {
	t.Parallel()

	p := newWorkerPool(1)
	if !p.tryAcquire() {
		t.Fatal("tryAcquire() failed on an empty pool")
	}
	defer p.release()

	errWork := errors.New("work")
	d := p.spawn(func() ([]richtext.Node, error) { return nil, errWork })
	if !d.Ready() {
		t.Error("spawn() on a full pool should run inline and settle immediately")
	}
}
