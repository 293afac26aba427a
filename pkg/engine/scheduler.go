package engine

import (
	"sync"
)

// rowQueue hands out image rows to workers, one at a time, for a single frame
type rowQueue struct {
	mu     sync.Mutex
	next   int
	height int
}

// claim returns the next unrendered row, or false once every row is taken
func (q *rowQueue) claim() (int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.next >= q.height {
		return 0, false
	}
	y := q.next
	q.next++
	return y, true
}

// Scheduler splits a frame into rows and renders them either in order on the
// calling goroutine or across a pool of workers.
type Scheduler struct {
	workers int
}

// NewScheduler creates a scheduler using the given number of workers,
// counting the calling goroutine. Values below 1 are treated as 1.
func NewScheduler(workers int) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{workers: workers}
}

// Workers returns the number of goroutines that render rows in parallel mode
func (s *Scheduler) Workers() int {
	return s.workers
}

// Run renders rows [0, height) with render, in parallel when threaded is set
func (s *Scheduler) Run(height int, threaded bool, render func(y int)) {
	if threaded {
		s.Parallel(height, render)
	} else {
		s.Sequential(height, render)
	}
}

// Sequential renders every row in order on the calling goroutine
func (s *Scheduler) Sequential(height int, render func(y int)) {
	for y := 0; y < height; y++ {
		render(y)
	}
}

// Parallel renders rows on workers-1 goroutines plus the calling one and
// returns once every row is done. render must only write state owned by row y.
func (s *Scheduler) Parallel(height int, render func(y int)) {
	q := &rowQueue{height: height}

	work := func() {
		for {
			y, ok := q.claim()
			if !ok {
				return
			}
			render(y)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < s.workers-1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work()
		}()
	}

	work()
	wg.Wait()
}
