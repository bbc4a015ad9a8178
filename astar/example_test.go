package astar_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/tilemap"
)

// ExampleShortestPath routes around a wall that is open only at the top.
// The route is written into the grid through MarkShortest and drawn as '*'.
func ExampleShortestPath() {
	g, _ := grid.Parse(grid.Move8,
		".....",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	)
	ws := tilemap.WorkspaceFor(g.Tiles())

	n, err := astar.ShortestPath(g, tilemap.Pt(0, 0), tilemap.Pt(4, 4), ws)
	fmt.Println("length:", n, "err:", err)
	fmt.Print(g)

	// Output:
	// length: 6 err: <nil>
	// *.*..
	// .*#*.
	// ..#*.
	// ..#.*
	// ..#.*
}

// ExampleShortestPath_outOfWorkspace shows a deliberate early bailout:
// a tiny workspace caps how far the search may spread.
func ExampleShortestPath_outOfWorkspace() {
	g, _ := grid.New(64, 64, grid.Move8)

	n, err := astar.ShortestPath(g, tilemap.Pt(0, 0), tilemap.Pt(63, 63), tilemap.NewWorkspace(4))
	fmt.Println(n, err)

	// Output:
	// -2 tilemap: out of workspace
}
