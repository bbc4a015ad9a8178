package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/cave"
	"github.com/katalvlaran/tilepath/flood"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/internal/config"
	"github.com/katalvlaran/tilepath/tilemap"
)

var errMismatch = errors.New("A* and flood disagree")

// summary counts search outcomes.
type summary struct {
	Found          int
	NoPath         int
	OutOfWorkspace int
	Mismatched     int
}

func (s summary) total() int {
	return s.Found + s.NoPath + s.OutOfWorkspace
}

func (s *summary) add(o summary) {
	s.Found += o.Found
	s.NoPath += o.NoPath
	s.OutOfWorkspace += o.OutOfWorkspace
	s.Mismatched += o.Mismatched
}

func parseMove(s string) (grid.Movement, error) {
	switch s {
	case "8":
		return grid.Move8, nil
	case "4":
		return grid.Move4, nil
	case "bishop":
		return grid.MoveBishop, nil
	}
	return 0, fmt.Errorf("%w: move %q", config.ErrInvalidConfig, s)
}

// runBench fans the maps out over cfg.Workers goroutines. Each map owns
// its grid and workspaces, so workers share nothing but their result slot.
func runBench(ctx context.Context, cfg config.Bench) (summary, error) {
	move, err := parseMove(cfg.Move)
	if err != nil {
		return summary{}, err
	}

	results := make([]summary, cfg.Maps)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Maps {
		g.Go(func() error {
			opts := cave.DefaultOptions()
			opts.Seed = cfg.Seed + uint64(i)
			opts.Move = move
			res, err := benchMap(ctx, cfg, opts)
			if err != nil {
				return fmt.Errorf("map %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary{}, err
	}

	var sum summary
	for _, r := range results {
		sum.add(r)
	}
	return sum, nil
}

// benchMap runs cfg.Searches random searches on one cave.
func benchMap(ctx context.Context, cfg config.Bench, opts cave.Options) (summary, error) {
	g, err := cave.Generate(cfg.Width, cfg.Height, opts)
	if err != nil {
		return summary{}, err
	}
	region := cave.Largest(g)
	if len(region) == 0 {
		return summary{}, nil
	}

	ws := tilemap.WorkspaceFor(g.Tiles())
	if cfg.WorkspaceSlots > 0 {
		ws = tilemap.NewWorkspace(cfg.WorkspaceSlots)
	}
	floodWS := tilemap.WorkspaceFor(g.Tiles())
	rng := rand.New(rand.NewPCG(opts.Seed, uint64(cfg.Searches)))

	var res summary
	for range cfg.Searches {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		from := region[rng.IntN(len(region))]
		to := region[rng.IntN(len(region))]

		g.ResetMarks()
		n, err := astar.ShortestPath(g, from, to, ws)
		switch {
		case err == nil:
			res.Found++
		case errors.Is(err, tilemap.ErrNoPath):
			res.NoPath++
		case errors.Is(err, tilemap.ErrOutOfWorkspace):
			res.OutOfWorkspace++
			continue
		default:
			return res, err
		}

		if !agrees(g, floodWS, to, from, n) {
			res.Mismatched++
		}
	}
	return res, nil
}

// agrees floods from goal and checks that the distance at start matches
// the A* outcome n.
func agrees(g *grid.Grid, ws tilemap.Workspace, goal, start tilemap.Point, n int) bool {
	head, err := flood.Seed(ws, 0, goal)
	if err != nil {
		return false
	}
	if err := flood.Flood(g, ws, head); err != nil {
		return false
	}
	d := g.Distance(start)
	if n == astar.NoPath {
		return d == tilemap.Unreached
	}
	return int(d) == n
}
