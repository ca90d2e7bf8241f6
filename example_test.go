// File: example_test.go
package pipemaze_test

import (
	"fmt"

	"github.com/katalvlaran/pipemaze"
)

// ExampleSolve answers both questions for the smallest loop.
func ExampleSolve() {
	r, err := pipemaze.Solve("S--7\n|..|\nL--J\n", pipemaze.WithDistanceCheck())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("start behaves as:", r.Start.Tile)
	fmt.Println("loop length:", r.LoopLength)
	fmt.Println("farthest:", r.Farthest)
	fmt.Println("enclosed:", r.Interior)
	// Output:
	// start behaves as: F
	// loop length: 10
	// farthest: 5
	// enclosed: 2
}
