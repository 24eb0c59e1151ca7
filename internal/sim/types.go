package sim

import (
	"fmt"
	"time"

	"github.com/san-kum/galaxy/internal/galaxy"
)

type Metric interface {
	Name() string
	Observe(stars []galaxy.Star, iter uint64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(stars []galaxy.Star, iter uint64)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(stars []galaxy.Star, iter uint64)

func (f ObserverFunc) OnStep(stars []galaxy.Star, iter uint64) { f(stars, iter) }

type Config struct {
	Iterations    int
	SampleEvery   int // 0 disables metrics and observers
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Iterations:    1000,
		SampleEvery:   50,
		ValidateState: true,
	}
}

type Result struct {
	Iterations int
	Durations  []time.Duration
	Elapsed    time.Duration
	Metrics    map[string]float64
	Errors     []error
}

// StepsPerSecond is the throughput over the whole run.
func (r *Result) StepsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Iterations) / r.Elapsed.Seconds()
}

func (r *Result) MeanDuration() time.Duration {
	if len(r.Durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range r.Durations {
		total += d
	}
	return total / time.Duration(len(r.Durations))
}

// SimError records a problem found after a given iteration.
type SimError struct {
	Iteration uint64
	Message   string
}

func (e SimError) Error() string {
	return fmt.Sprintf("iteration %d: %s", e.Iteration, e.Message)
}
