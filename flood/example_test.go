package flood_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/flood"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/tilemap"
)

// ExampleFlood builds a Dijkstra map from two opposite corners: every
// tile holds the step count to its nearest seed.
func ExampleFlood() {
	g, _ := grid.Parse(grid.Move8,
		"......",
		".##...",
		"....#.",
		"......",
	)
	ws := tilemap.WorkspaceFor(g.Tiles())
	head, _ := flood.Seed(ws, 0, tilemap.Pt(0, 0))
	head, _ = flood.Seed(ws, head, tilemap.Pt(5, 3))

	if err := flood.Flood(g, ws, head); err != nil {
		fmt.Println(err)
		return
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := tilemap.Pt(x, y)
			if g.Wall(p) {
				fmt.Print("#")
				continue
			}
			fmt.Print(g.Distance(p))
		}
		fmt.Println()
	}

	// Output:
	// 012333
	// 1##322
	// 2232#1
	// 333210
}
