package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		log.Fatalf("Stress test failed: %v", err)
	}
}

// realMain returns instead of exiting so the profiler and logger are flushed.
func realMain(args []string) error {
	fs := flag.NewFlagSet("group-stress", flag.ContinueOnError)
	configPath := fs.String("config", "", "Optional YAML config file; flags override its values.")
	duration := fs.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := fs.Int("entities", 10000, "The number of rows each worker keeps in its group.")
	workers := fs.Int("workers", 1, "The number of independent groups exercised concurrently.")
	gcPauseMetrics := fs.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := fs.String("profile", "", "Write a cpu or mem profile.")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error).")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfigFile(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = *duration
		case "entities":
			cfg.Entities = *entityCount
		case "workers":
			cfg.Workers = *workers
		case "gc-pause-metrics":
			cfg.GCPauseMetrics = *gcPauseMetrics
		case "profile":
			cfg.Profile = *profileMode
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfilePath), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(cfg.ProfilePath), profile.NoShutdownHook).Stop()
	}

	report, err := run(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("stress test failed", zap.Error(err))
		return err
	}

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", zap.Error(err))
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")

	logger.Info("stress test complete", zap.String("run", report.RunID))
	return nil
}

// run populates one group per worker and exercises them until cfg.Duration elapses.
func run(ctx context.Context, cfg Config, logger *zap.Logger) (*Report, error) {
	report := &Report{
		RunID:          uuid.NewString(),
		Duration:       cfg.Duration,
		Entities:       cfg.Entities,
		Workers:        cfg.Workers,
		GCPauseMetrics: cfg.GCPauseMetrics,
	}
	logger = logger.With(zap.String("run", report.RunID))

	logger.Info("populating groups",
		zap.Int("workers", cfg.Workers),
		zap.Int("entities", cfg.Entities),
	)
	seed := uint64(time.Now().UnixNano())
	workers := make([]*worker, cfg.Workers)
	for i := range workers {
		workers[i] = newWorker(i, cfg, seed, logger)
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", zap.Duration("duration", cfg.Duration))
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	results := make([]workerResult, len(workers))
	g, ctx := errgroup.WithContext(ctx)
	startTime := time.Now()
	for i, w := range workers {
		g.Go(func() error {
			result, err := w.Run(ctx)
			results[i] = result
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, result := range results {
		report.TotalRounds += result.Rounds
		report.RowsRemoved += result.Removed
		report.SubsetsCycled += result.Subsets
		report.FinalRows += result.FinalRows
		report.RoundTime.Samples = append(report.RoundTime.Samples, result.Samples...)
	}
	report.RoundTime.Finalize()

	logger.Info("simulation finished", zap.Int64("rounds", report.TotalRounds))
	return report, nil
}
