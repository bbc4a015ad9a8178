package cave

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/tilemap"
)

// ErrTooSmall indicates a size that leaves no interior tiles.
var ErrTooSmall = errors.New("cave: grid must be at least 3x3")

// Options tunes Generate.
type Options struct {
	// Seed drives the scatter; equal seeds give equal caves.
	Seed uint64
	// Passes is the number of automaton smoothing passes.
	Passes int
	// Scatter is the number of opened points as a fraction of W·H.
	Scatter float64
	// Move is the movement rule of the returned grid.
	Move grid.Movement
}

// DefaultOptions returns two passes, a quarter of the area scattered, Move8.
func DefaultOptions() Options {
	return Options{
		Seed:    1,
		Passes:  2,
		Scatter: 0.25,
		Move:    grid.Move8,
	}
}

// Generate builds a w×h cave.
func Generate(w, h int, opts Options) (*grid.Grid, error) {
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, w, h)
	}
	g, err := grid.New(w, h, opts.Move)
	if err != nil {
		return nil, err
	}

	cur := make([]bool, w*h)
	next := make([]bool, w*h)
	for i := range cur {
		cur[i] = true
		next[i] = true
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	n := int(float64(w*h) * opts.Scatter)
	for range n {
		x := int(rng.NormFloat64()*float64(w)/6 + float64(w/2))
		y := int(rng.NormFloat64()*float64(h)/6 + float64(h/2))
		if x > 0 && y > 0 && x < w-1 && y < h-1 {
			cur[y*w+x] = false
		}
	}

	for range opts.Passes {
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				sum := 0
				for _, d := range tilemap.Directions {
					dx, dy := d.Delta()
					if cur[(y+dy)*w+x+dx] {
						sum++
					}
				}
				next[y*w+x] = sum > 6
			}
		}
		cur, next = next, cur
	}

	for i, wall := range cur {
		g.SetWall(g.Point(i), wall)
	}
	return g, nil
}

// Largest returns the tiles of g's biggest connected floor region, or nil
// when g has no floor. Ties go to the region found first in row-major order.
func Largest(g *grid.Grid) []tilemap.Point {
	var best []tilemap.Point
	for _, r := range g.Regions() {
		if len(r) > len(best) {
			best = r
		}
	}
	return best
}
