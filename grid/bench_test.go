package grid_test

import (
	"testing"

	"github.com/katalvlaran/pipemaze/grid"
)

// BenchmarkPad measures padding a 140×140 grid, the size of a real puzzle input.
// Complexity: O(W×H)
func BenchmarkPad(b *testing.B) {
	g, err := grid.Filled(140, 140, grid.Horizontal)
	if err != nil {
		b.Fatalf("setup Filled failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Pad(grid.Ground)
	}
}

// BenchmarkExit measures the table lookup behind every traversal step.
func BenchmarkExit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = grid.Exit(grid.BendSW, grid.East)
	}
}
