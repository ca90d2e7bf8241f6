package loop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/maze"
)

// Trace walks the loop once with a single cursor leaving by the start's first
// exit, and returns the closed Route together with a copy of the grid in which
// every loop cell is marked grid.InLoop. The maze itself is not modified.
//
// Returns maze.ErrAmbiguousStart, ErrLoopNotClosed or a Step error.
// Complexity: O(L) steps, O(W×H) memory for the marked copy.
func Trace(m *maze.Maze, opts ...Option) (*Loop, error) {
	o, err := buildOptions(m, opts)
	if err != nil {
		return nil, err
	}
	shape, err := m.ResolveStart()
	if err != nil {
		return nil, err
	}

	start := m.Start()
	marked := m.Grid()
	marked.Set(start, grid.InLoop)
	route := Route{start}

	c := depart(start, shape.Exits[0])
	for c.pos != start {
		if len(route) > o.MaxSteps {
			return nil, fmt.Errorf("%w: still open after %d steps", ErrLoopNotClosed, len(route))
		}
		route = append(route, c.pos)
		marked.Set(c.pos, grid.InLoop)
		o.OnStep(len(route)-1, c.pos)
		if err := c.advance(m); err != nil {
			return nil, err
		}
	}
	route = append(route, start)

	return &Loop{Route: route, Marked: marked, Start: shape}, nil
}
