package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/galaxy/internal/config"
	"github.com/san-kum/galaxy/internal/galaxy"
	"github.com/san-kum/galaxy/internal/metrics"
	"github.com/san-kum/galaxy/internal/sim"
	"github.com/san-kum/galaxy/internal/viz"
)

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	m, err := cfg.ExecMode()
	if err != nil {
		return err
	}
	g, err := galaxy.NewWithConfig(cfg.GalaxyConfig())
	if err != nil {
		return err
	}
	runner, err := sim.New(g, m, logger)
	if err != nil {
		return err
	}
	runner.AddMetric(metrics.NewEnergyDrift())
	runner.AddMetric(metrics.NewSpread())
	runner.AddMetric(metrics.NewContainment(0))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("running", "stars", g.Len(), "mode", m, "workers", g.Workers(), "iterations", cfg.Iterations)
	result, err := runner.Run(ctx, sim.Config{
		Iterations:    cfg.Iterations,
		SampleEvery:   cfg.SampleEvery,
		ValidateState: true,
	})
	if errors.Is(err, context.Canceled) {
		logger.Warn("interrupted", "iteration", g.Iteration())
	} else if err != nil {
		return err
	}

	for _, e := range result.Errors {
		logger.Warn("run error", "err", e)
	}

	keyvals := []interface{}{
		"iterations", result.Iterations,
		"elapsed", result.Elapsed.Round(time.Millisecond),
		"mean_step", result.MeanDuration().Round(time.Microsecond),
		"steps_per_sec", fmt.Sprintf("%.2f", result.StepsPerSecond()),
	}
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		keyvals = append(keyvals, name, fmt.Sprintf("%.6g", result.Metrics[name]))
	}
	logger.Info("run complete", keyvals...)
	return nil
}

type benchRow struct {
	mode    galaxy.Mode
	workers int
	result  *sim.Result
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	// every mode starts from the same population
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rows := make([]benchRow, 0, len(benchModes))
	for _, name := range benchModes {
		m, err := galaxy.ParseMode(name)
		if err != nil {
			return err
		}
		g, err := galaxy.NewWithConfig(cfg.GalaxyConfig())
		if err != nil {
			return err
		}
		runner, err := sim.New(g, m, logger)
		if err != nil {
			return err
		}

		logger.Info("benchmarking", "mode", m, "stars", g.Len(), "iterations", cfg.Iterations)
		result, err := runner.Run(ctx, sim.Config{Iterations: cfg.Iterations})
		if err != nil {
			return err
		}
		rows = append(rows, benchRow{mode: m, workers: g.Workers(), result: result})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tWORKERS\tSTARS\tITERATIONS\tMEAN STEP\tSTEPS/S\tELAPSED")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%.2f\t%s\n",
			r.mode, r.workers, cfg.Stars, r.result.Iterations,
			r.result.MeanDuration().Round(time.Microsecond),
			r.result.StepsPerSecond(),
			r.result.Elapsed.Round(time.Millisecond))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(rows) > 1 && rows[0].result.Elapsed > 0 {
		base := rows[0].result.Elapsed.Seconds()
		for _, r := range rows[1:] {
			if r.result.Elapsed > 0 {
				fmt.Printf("\nspeedup %s vs %s: %.2fx\n", r.mode, rows[0].mode, base/r.result.Elapsed.Seconds())
			}
		}
	}

	series := make([][]float64, 0, len(rows))
	caption := "step time (ms):"
	colors := []asciigraph.AnsiColor{asciigraph.Green, asciigraph.Blue}
	colorNames := []string{"green", "blue"}
	for _, r := range rows {
		if len(r.result.Durations) == 0 {
			continue
		}
		data := make([]float64, len(r.result.Durations))
		for j, d := range r.result.Durations {
			data[j] = float64(d.Microseconds()) / 1000
		}
		caption += fmt.Sprintf(" %s=%s", r.mode, colorNames[len(series)%len(colorNames)])
		series = append(series, data)
	}
	if len(series) == 0 {
		return nil
	}
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption))
	fmt.Println()
	fmt.Println(graph)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	m, err := cfg.ExecMode()
	if err != nil {
		return err
	}
	gcfg := cfg.GalaxyConfig()
	g, err := galaxy.NewWithConfig(gcfg)
	if err != nil {
		return err
	}

	model, err := viz.NewModel(g, viz.Options{
		FPS:         cfg.FPS,
		Mode:        m,
		EnergyEvery: energyEvery,
		Regenerate: func() (*galaxy.Galaxy, error) {
			// a fixed seed would rebuild the same galaxy
			if gcfg.Seed != 0 {
				gcfg.Seed++
			}
			return galaxy.NewWithConfig(gcfg)
		},
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTARS\tMODE\tITERATIONS\tSEED\tFPS")
	for _, name := range names {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%d\n", name, p.Stars, p.Mode, p.Iterations, p.Seed, p.FPS)
	}
	return w.Flush()
}
