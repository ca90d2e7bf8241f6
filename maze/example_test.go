// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/maze"
)

// ExampleMaze_ResolveStart infers the hidden shape of 'S' in a square loop.
func ExampleMaze_ResolveStart() {
	m, err := maze.Parse("S-7\n|.|\nL-J\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	shape, err := m.ResolveStart()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Start(), shape.Exits[0], shape.Exits[1], shape.Tile)
	// Output:
	// (1,1) East South F
}
