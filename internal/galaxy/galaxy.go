package galaxy

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// DefaultFoldChunk is the smallest population slice a parallel acceleration
// fold hands to one goroutine.
const DefaultFoldChunk = 256

// Config fixes the size and parallelism of a Galaxy.
type Config struct {
	Stars     int
	Workers   int   // 0 selects the number of logical CPUs
	Seed      int64 // 0 seeds from the clock
	FoldChunk int   // 0 selects DefaultFoldChunk
}

// Galaxy owns two equally sized star buffers. On even iterations buffer 0
// is current and buffer 1 is next; on odd iterations the roles swap. A step
// only reads current and only writes next.
type Galaxy struct {
	stars     [2][]Star
	iter      uint64
	pool      *Pool
	foldChunk int
}

// New creates a randomly initialized galaxy of count stars using every
// logical CPU for parallel steps.
func New(count int) (*Galaxy, error) {
	return NewWithConfig(Config{Stars: count})
}

// NewWithConfig creates a randomly initialized galaxy. A non-zero Seed
// reproduces the same initial population.
func NewWithConfig(cfg Config) (*Galaxy, error) {
	if cfg.Stars < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStarCount, cfg.Stars)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(uint64(seed)))

	return FromStars(Generate(cfg.Stars, rng), cfg)
}

// FromStars creates a galaxy whose two buffers both start as copies of
// stars. cfg.Stars and cfg.Seed are ignored.
func FromStars(stars []Star, cfg Config) (*Galaxy, error) {
	if cfg.FoldChunk < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFoldChunk, cfg.FoldChunk)
	}
	pool, err := NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", err, cfg.Workers)
	}
	chunk := cfg.FoldChunk
	if chunk == 0 {
		chunk = DefaultFoldChunk
	}

	a := make([]Star, len(stars))
	b := make([]Star, len(stars))
	copy(a, stars)
	copy(b, stars)

	return &Galaxy{
		stars:     [2][]Star{a, b},
		pool:      pool,
		foldChunk: chunk,
	}, nil
}

func (g *Galaxy) buffers() (current, next []Star) {
	if g.iter&1 == 0 {
		return g.stars[0], g.stars[1]
	}
	return g.stars[1], g.stars[0]
}

// Step advances every star by one iteration on the calling goroutine and
// returns the new current population. The returned slice is owned by the
// galaxy and is overwritten two steps later; callers must not modify it.
func (g *Galaxy) Step() []Star {
	current, next := g.buffers()

	for i := range next {
		next[i] = Integrate(current[i], AccelerationOn(current[i], current))
	}

	g.iter++
	return next
}

// StepParallel is Step with the stars spread across the worker pool and
// each star's acceleration folded over partitions of the population.
func (g *Galaxy) StepParallel() []Star {
	current, next := g.buffers()
	parts := g.foldParts(len(current))

	g.pool.For(len(next), func(_, start, end int) {
		for i := start; i < end; i++ {
			next[i] = Integrate(current[i], AccelerationOnParallel(current[i], current, parts))
		}
	})

	g.iter++
	return next
}

func (g *Galaxy) foldParts(n int) int {
	parts := (n + g.foldChunk - 1) / g.foldChunk
	if parts > g.pool.Workers() {
		parts = g.pool.Workers()
	}
	if parts < 1 {
		parts = 1
	}
	return parts
}

// StepFunc returns the step strategy for mode.
func (g *Galaxy) StepFunc(mode Mode) (func() []Star, error) {
	switch mode {
	case ModeSingle:
		return g.Step, nil
	case ModeParallel:
		return g.StepParallel, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
}

// Stars returns the current population without advancing it.
func (g *Galaxy) Stars() []Star {
	current, _ := g.buffers()
	return current
}

func (g *Galaxy) Iteration() uint64 { return g.iter }
func (g *Galaxy) Len() int          { return len(g.stars[0]) }
func (g *Galaxy) Workers() int      { return g.pool.Workers() }
