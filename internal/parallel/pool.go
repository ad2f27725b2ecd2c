// Package parallel splits per-pixel work into row bands and sums them on a
// fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool is a fixed set of worker goroutines. Each worker owns one lane and
// handles at most one band of every SumBands call, so a call with n bands
// occupies n distinct workers.
//
// Thread safety: Pool is safe for concurrent use. Concurrent SumBands calls
// queue on the same lanes.
type Pool struct {
	mu     sync.RWMutex
	closed bool
	lanes  []chan bandTask
	wg     sync.WaitGroup
}

// bandTask asks a worker to sum one band into *out.
type bandTask struct {
	band Band
	fn   func(y0, y1 int) uint64
	out  *uint64
	done *sync.WaitGroup
}

// NewPool starts a pool of workers goroutines. If workers is 0 or
// negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{lanes: make([]chan bandTask, workers)}
	p.wg.Add(workers)
	for i := range p.lanes {
		p.lanes[i] = make(chan bandTask, 1)
		go p.work(p.lanes[i])
	}
	return p
}

func (p *Pool) work(lane <-chan bandTask) {
	defer p.wg.Done()
	for t := range lane {
		*t.out = t.fn(t.band.Y0, t.band.Y1)
		t.done.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return len(p.lanes)
}

// Close waits for in-flight sums and stops the workers. A closed pool
// still serves SumBands on the caller's goroutine. Close is safe to call
// multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for _, lane := range p.lanes {
		close(lane)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// dispatch hands band i to worker i, storing its sum in partial[i], and
// waits for all of them. It reports false, running nothing, when the pool
// is closed. len(bands) must not exceed Workers().
func (p *Pool) dispatch(bands []Band, fn func(y0, y1 int) uint64, partial []uint64) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	var done sync.WaitGroup
	done.Add(len(bands))
	for i, b := range bands {
		p.lanes[i] <- bandTask{band: b, fn: fn, out: &partial[i], done: &done}
	}
	done.Wait()
	return true
}
