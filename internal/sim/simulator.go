package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/galaxy/internal/galaxy"
	"github.com/san-kum/galaxy/internal/metrics"
)

// Runner drives a Galaxy for a fixed number of iterations with one
// execution mode.
type Runner struct {
	galaxy    *galaxy.Galaxy
	mode      galaxy.Mode
	step      func() []galaxy.Star
	metrics   []Metric
	observers []Observer
	logger    *log.Logger
}

// New binds the step strategy for mode. A nil logger discards output.
func New(g *galaxy.Galaxy, mode galaxy.Mode, logger *log.Logger) (*Runner, error) {
	step, err := g.StepFunc(mode)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		galaxy:    g,
		mode:      mode,
		step:      step,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger,
	}, nil
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Galaxy() *galaxy.Galaxy { return r.galaxy }

// Run advances the galaxy cfg.Iterations times. The context is checked
// between iterations; an iteration in progress always completes. On
// cancellation the partial result is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Durations: make([]time.Duration, 0, cfg.Iterations),
		Metrics:   make(map[string]float64),
		Errors:    make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	r.sample(r.galaxy.Stars(), cfg)

	r.logger.Debug("run starting",
		"stars", r.galaxy.Len(),
		"mode", r.mode,
		"workers", r.galaxy.Workers(),
		"iterations", cfg.Iterations)

	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			r.finish(result, start)
			return result, ctx.Err()
		default:
		}

		t0 := time.Now()
		stars := r.step()
		result.Durations = append(result.Durations, time.Since(t0))
		result.Iterations++

		iter := r.galaxy.Iteration()
		if cfg.SampleEvery > 0 && iter%uint64(cfg.SampleEvery) == 0 {
			r.sample(stars, cfg)
			r.logger.Debug("iteration", "n", iter, "step", result.Durations[len(result.Durations)-1])
		}

		if cfg.ValidateState {
			if bad := metrics.InvalidCount(stars); bad > 0 {
				err := SimError{Iteration: iter, Message: fmt.Sprintf("%d stars with NaN/Inf state", bad)}
				result.Errors = append(result.Errors, err)
				r.logger.Warn("invalid state", "iteration", iter, "stars", bad)
				break
			}
		}
	}
	r.finish(result, start)

	return result, nil
}

func (r *Runner) sample(stars []galaxy.Star, cfg Config) {
	if cfg.SampleEvery <= 0 {
		return
	}
	iter := r.galaxy.Iteration()
	for _, m := range r.metrics {
		m.Observe(stars, iter)
	}
	for _, obs := range r.observers {
		obs.OnStep(stars, iter)
	}
}

func (r *Runner) finish(result *Result, start time.Time) {
	result.Elapsed = time.Since(start)
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", cfg.Iterations)
	}
	if cfg.SampleEvery < 0 {
		return fmt.Errorf("sample interval must not be negative, got %d", cfg.SampleEvery)
	}
	return nil
}
