package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/galaxy/internal/config"
	"github.com/san-kum/galaxy/internal/galaxy"
)

var (
	stars      int
	mode       string
	threads    int
	seed       int64
	configFile string
	preset     string
	logLevel   string

	iterations  int
	sampleEvery int
	benchModes  []string
	frameRate   int
	energyEvery int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "galaxy",
})

// main registers the commands and runs the root command. Any error,
// including a missing subcommand, is fatal.
func main() {
	rootCmd := &cobra.Command{
		Use:           "galaxy",
		Short:         "brute-force gravitational n-body galaxy simulator",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("missing command: expected one of run, bench, live, presets")
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&stars, "stars", config.DefaultStars, "number of stars")
	pf.StringVar(&mode, "mode", config.DefaultMode, "execution mode (single or parallel)")
	pf.IntVar(&threads, "threads", 0, "worker threads (0 = logical cores)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml or ini)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation headless",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "number of iterations")
	runCmd.Flags().IntVar(&sampleEvery, "sample-every", config.DefaultSampleEvery, "diagnostic sampling interval (0 = off)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time iterations for each execution mode",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "number of iterations")
	benchCmd.Flags().StringSliceVar(&benchModes, "modes", galaxy.ModeNames(), "modes to benchmark")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation with a terminal viewer",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().IntVar(&energyEvery, "energy-every", 10, "sample total energy every n frames (0 = off)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, benchCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("galaxy", "err", err)
	}
}

// resolveConfig layers the preset, the config file and explicitly set flags,
// in that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("stars") {
		cfg.Stars = stars
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("threads") {
		cfg.Threads = threads
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("sample-every") {
		cfg.SampleEvery = sampleEvery
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config resolved",
		"preset", preset,
		"file", configFile,
		"stars", cfg.Stars,
		"mode", cfg.Mode,
		"threads", cfg.Threads,
		"seed", cfg.Seed)
	return cfg, nil
}
