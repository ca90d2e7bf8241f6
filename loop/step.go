package loop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/maze"
)

// Step applies the step rule: p was entered travelling with heading; the
// cursor leaves by grid.Exit(tile at p, heading) and arrives at the neighbor
// in that direction. The returned heading is the direction just travelled.
//
// Returns an error matching ErrInvalidTraversal when p has no exit for the
// heading (wrapping grid.ErrInvalidTile) or when the next cell lies outside
// the grid (ErrOffGrid).
func Step(m *maze.Maze, p grid.Position, heading grid.Direction) (grid.Position, grid.Direction, error) {
	out, err := grid.Exit(m.Tile(p), heading)
	if err != nil {
		return p, heading, fmt.Errorf("%w: at %v: %w", ErrInvalidTraversal, p, err)
	}
	next := p.Add(out)
	if !m.InBounds(next) {
		return p, heading, fmt.Errorf("%w: from %v heading %v", ErrOffGrid, p, out)
	}
	return next, out, nil
}

// cursor is one walker on the loop.
type cursor struct {
	pos     grid.Position
	heading grid.Direction
}

// depart places a cursor on the start's neighbor in direction d.
func depart(start grid.Position, d grid.Direction) cursor {
	return cursor{pos: start.Add(d), heading: d}
}

// advance moves c one step along the loop.
func (c *cursor) advance(m *maze.Maze) error {
	pos, heading, err := Step(m, c.pos, c.heading)
	if err != nil {
		return err
	}
	c.pos, c.heading = pos, heading
	return nil
}
