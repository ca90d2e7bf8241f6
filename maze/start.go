package maze

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/grid"
)

// ResolveStart infers the start tile's shape. A direction D is an exit when
// the neighbor at Start+D has an entrance from D.Flip(). Exactly two exits
// must be found; otherwise ResolveStart returns ErrAmbiguousStart.
// The maze is not modified.
func (m *Maze) ResolveStart() (StartShape, error) {
	var (
		shape StartShape
		found int
	)
	for _, d := range grid.Directions {
		nb := m.start.Add(d)
		if !m.tiles.InBounds(nb) || !m.tiles.At(nb).HasEntranceFrom(d.Flip()) {
			continue
		}
		if found < len(shape.Exits) {
			shape.Exits[found] = d
		}
		found++
	}
	if found != 2 {
		return StartShape{}, fmt.Errorf("%w: found %d at %v", ErrAmbiguousStart, found, m.start)
	}

	t, err := grid.TileFromConnections(shape.Exits[0], shape.Exits[1])
	if err != nil {
		return StartShape{}, fmt.Errorf("%w: %w", ErrAmbiguousStart, err)
	}
	shape.Tile = t
	return shape, nil
}
