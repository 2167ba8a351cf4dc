package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazebfs/grid"
	"github.com/katalvlaran/mazebfs/search"
)

// BenchmarkRun_Open measures an unpaced search across an empty M×M grid,
// corner to corner.
func BenchmarkRun_Open(b *testing.B) {
	const m = 100
	values := make([][]int, m)
	for i := range values {
		values[i] = make([]int, m)
	}
	g := mustGrid(b, values)
	start, end := grid.Position{}, grid.Position{Row: m - 1, Col: m - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		work := g.Clone()
		_, _ = search.Run(work, start, end)
	}
}

// BenchmarkRun_Snapshots adds a grid copy per step, as a renderer would.
func BenchmarkRun_Snapshots(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	g := randomGrid(b, r, 40, 40, 0.2)
	start, end := grid.Position{}, grid.Position{Row: 39, Col: 39}
	g.Set(start, grid.Open)
	g.Set(end, grid.Open)
	onStep := search.WithOnStep(func(ev search.Event) error {
		_ = ev.Snapshot()
		return nil
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Run(g.Clone(), start, end, onStep)
	}
}
