package galaxy

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs index ranges on a fixed number of goroutines. The size is set
// once at construction.
type Pool struct {
	workers int
}

// NewPool creates a pool of the given size; zero selects the number of
// logical CPUs.
func NewPool(workers int) (*Pool, error) {
	if workers < 0 {
		return nil, ErrInvalidWorkers
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}, nil
}

func (p *Pool) Workers() int { return p.workers }

// For splits [0, n) into at most Workers contiguous chunks, runs fn on each
// concurrently and returns once every chunk is done.
func (p *Pool) For(n int, fn func(chunk, start, end int)) {
	forChunks(n, p.workers, fn)
}

func forChunks(n, parts int, fn func(chunk, start, end int)) {
	if n <= 0 {
		return
	}
	if parts > n {
		parts = n
	}
	if parts <= 1 {
		fn(0, 0, n)
		return
	}

	chunkSize := (n + parts - 1) / parts

	var g errgroup.Group
	for c := 0; c < parts; c++ {
		start := c * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}

		chunk := c
		g.Go(func() error {
			fn(chunk, start, end)
			return nil
		})
	}
	_ = g.Wait()
}
