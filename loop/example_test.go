// File: loop/example_test.go
package loop_test

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
)

// ExampleFarthest measures the farthest point on the "complex" puzzle loop.
func ExampleFarthest() {
	m, err := maze.Parse("..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ...\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	steps, err := loop.Farthest(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("farthest:", steps)
	// Output:
	// farthest: 8
}

// ExampleTrace marks the loop of a small square with X.
func ExampleTrace() {
	m, _ := maze.Parse("S-7\n|.|\nL-J\n")
	lp, err := loop.Trace(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tiles:", lp.Route.Len())
	fmt.Print(lp.Marked)
	// Output:
	// tiles: 8
	// .....
	// .XXX.
	// .X.X.
	// .XXX.
	// .....
}
