package html2richtext

import (
	"runtime"

	"github.com/alnah/go-html2richtext/internal/future"
	"github.com/alnah/go-html2richtext/richtext"
)

// Worker budget constants.
const (
	// MinWorkers ensures at least one extra goroutine is available.
	MinWorkers = 1

	// MaxWorkers caps the automatic budget. An explicit budget may exceed it.
	MaxWorkers = 64

	// workersPerCPU oversubscribes the CPUs; rules may block on I/O.
	workersPerCPU = 4
)

// ResolveWorkers determines the goroutine budget of an asynchronous conversion.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0) * workersPerCPU

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// workerPool bounds the goroutines one asynchronous conversion may start.
// Acquisition never blocks: when the budget is spent the work runs on the
// caller's goroutine, so nested fan-out cannot deadlock.
type workerPool struct {
	sem chan struct{}
}

func newWorkerPool(n int) *workerPool {
	if n < MinWorkers {
		n = MinWorkers
	}
	return &workerPool{sem: make(chan struct{}, n)}
}

func (p *workerPool) tryAcquire() bool {
	select {
	case p.sem <- struct{}{}:
		return true
	default:
		return false
	}
}

func (p *workerPool) release() {
	<-p.sem
}

// spawn runs fn on a pooled goroutine when a slot is free, inline otherwise.
func (p *workerPool) spawn(fn func() ([]richtext.Node, error)) *Deferred {
	if !p.tryAcquire() {
		return future.From(fn())
	}
	return future.Go(func() ([]richtext.Node, error) {
		defer p.release()
		return fn()
	})
}

// spawnInline runs fn immediately; it is the spawner of the synchronous engine.
func spawnInline(fn func() ([]richtext.Node, error)) *Deferred {
	return future.From(fn())
}
