package loop_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
)

// bigRing builds an n×n rectangular loop with S in the top-left corner.
func bigRing(n int) string {
	var b strings.Builder
	b.WriteString("S" + strings.Repeat("-", n-2) + "7\n")
	for i := 0; i < n-2; i++ {
		b.WriteString("|" + strings.Repeat(".", n-2) + "|\n")
	}
	b.WriteString("L" + strings.Repeat("-", n-2) + "J\n")
	return b.String()
}

// BenchmarkFarthest measures the dual-cursor walk on a 140×140 ring.
// Complexity: O(L)
func BenchmarkFarthest(b *testing.B) {
	m, err := maze.Parse(bigRing(140))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loop.Farthest(m)
	}
}

// BenchmarkTrace measures the single-cursor walk including the marked copy.
// Complexity: O(L) time, O(W×H) memory
func BenchmarkTrace(b *testing.B) {
	m, err := maze.Parse(bigRing(140))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loop.Trace(m)
	}
}

// BenchmarkDistances measures the BFS cross-check.
func BenchmarkDistances(b *testing.B) {
	m, err := maze.Parse(bigRing(140))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loop.Distances(m)
	}
}
