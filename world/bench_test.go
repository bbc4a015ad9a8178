package world_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/tilemap"
	"github.com/katalvlaran/tilepath/world"
)

// BenchmarkShortestPath_Obstacles searches a 512×512 world scattered with
// square pillars; terrain lookups hit the R-tree once per tile, then the memo.
func BenchmarkShortestPath_Obstacles(b *testing.B) {
	w, err := world.New(tilemap.Pt(-256, -256), tilemap.Pt(255, 255))
	if err != nil {
		b.Fatal(err)
	}
	for y := -240; y < 240; y += 16 {
		for x := -240; x < 240; x += 16 {
			pillar := orb.Bound{Min: orb.Point{float64(x), float64(y)}, Max: orb.Point{float64(x + 6), float64(y + 6)}}
			if err := w.AddObstacle(pillar.ToPolygon()); err != nil {
				b.Fatal(err)
			}
		}
	}
	ws := tilemap.NewWorkspace(512 * 512 * 8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.ResetMarks()
		_, _ = astar.ShortestPath(w, tilemap.Pt(-250, -250), tilemap.Pt(250, 250), ws)
	}
}
