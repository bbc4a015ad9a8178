// Command gridbench runs batches of independent A* searches over generated
// caves, one grid and one workspace per worker, and cross-checks every
// answer against a flood fill from the goal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/flood"
	"github.com/katalvlaran/tilepath/internal/config"
	"github.com/katalvlaran/tilepath/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "gridbench.yaml", "Path to YAML config")
		workers    = flag.Int("workers", 0, "Concurrent maps (0 keeps the configured value)")
		searches   = flag.Int("searches", -1, "Searches per map (-1 keeps the configured value)")
	)
	flag.Parse()

	if err := run(*configPath, *workers, *searches); err != nil {
		fmt.Fprintln(os.Stderr, "gridbench:", err)
		os.Exit(1)
	}
}

func run(configPath string, workers, searches int) error {
	cfg, err := config.LoadBench(configPath)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if searches >= 0 {
		cfg.Searches = searches
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()
	astar.SetLogger(logger.Named("astar"))
	flood.SetLogger(logger.Named("flood"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	sum, err := runBench(ctx, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Info("bench finished",
		zap.Int("maps", cfg.Maps),
		zap.Int("searches", sum.total()),
		zap.Int("found", sum.Found),
		zap.Int("no_path", sum.NoPath),
		zap.Int("out_of_workspace", sum.OutOfWorkspace),
		zap.Duration("elapsed", elapsed),
	)
	fmt.Printf("%d maps, %d searches in %v: %d found, %d no path, %d out of workspace\n",
		cfg.Maps, sum.total(), elapsed.Round(time.Millisecond), sum.Found, sum.NoPath, sum.OutOfWorkspace)

	if sum.Mismatched > 0 {
		return fmt.Errorf("%w: %d searches", errMismatch, sum.Mismatched)
	}
	return nil
}
