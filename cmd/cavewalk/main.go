// Command cavewalk is an interactive terminal demo: walk a generated cave
// with a field of view, a flood-fill distance overlay and on-demand A*
// routes to the cave centre.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/cave"
	"github.com/katalvlaran/tilepath/flood"
	"github.com/katalvlaran/tilepath/internal/config"
	"github.com/katalvlaran/tilepath/internal/logging"
)

// Rows reserved below the map for the status and help lines.
const chromeRows = 2

func main() {
	var (
		configPath = flag.String("config", "cavewalk.yaml", "Path to YAML config")
		seed       = flag.Uint64("seed", 0, "Cave seed (0 keeps the configured one)")
		radius     = flag.Int("radius", -1, "Initial FOV radius (-1 keeps the configured one)")
	)
	flag.Parse()

	if err := run(*configPath, *seed, *radius); err != nil {
		fmt.Fprintln(os.Stderr, "cavewalk:", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, radius int) error {
	cfg, err := config.LoadDemo(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if radius >= 0 {
		cfg.FOVRadius = radius
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

	w, h := screenSize(cfg)
	opts := cave.DefaultOptions()
	opts.Seed = cfg.Seed
	g, err := cave.Generate(w, h, opts)
	if err != nil {
		return err
	}
	logger.Info("cave generated",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Uint64("seed", cfg.Seed),
	)

	m, err := newModel(g, cfg, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// screenSize returns the map size: the terminal minus chrome, clamped to
// the configured maximum. Without a terminal the maximum is used.
func screenSize(cfg config.Demo) (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return cfg.MaxWidth, cfg.MaxHeight
	}
	h -= chromeRows
	return max(3, min(w, cfg.MaxWidth)), max(3, min(h, cfg.MaxHeight))
}
