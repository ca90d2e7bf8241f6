package loop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/maze"
)

// Farthest returns the number of steps from the start to the point of the
// loop farthest from it. Two cursors leave the start by its two exits and
// advance one step per iteration until they occupy the same cell.
//
// Returns maze.ErrAmbiguousStart if the start shape cannot be resolved,
// ErrOddLoop if the cursors swap cells without meeting, ErrLoopNotClosed if
// the step budget runs out, or a Step error for a broken pipe.
func Farthest(m *maze.Maze, opts ...Option) (int, error) {
	o, err := buildOptions(m, opts)
	if err != nil {
		return 0, err
	}
	shape, err := m.ResolveStart()
	if err != nil {
		return 0, err
	}

	start := m.Start()
	a := depart(start, shape.Exits[0])
	b := depart(start, shape.Exits[1])
	steps := 1
	o.OnStep(steps, a.pos, b.pos)

	for a.pos != b.pos {
		if steps >= o.MaxSteps {
			return 0, fmt.Errorf("%w: no meeting point after %d steps", ErrLoopNotClosed, steps)
		}
		prevA, prevB := a.pos, b.pos
		if err := a.advance(m); err != nil {
			return 0, err
		}
		if err := b.advance(m); err != nil {
			return 0, err
		}
		steps++
		if a.pos == prevB && b.pos == prevA {
			return 0, fmt.Errorf("%w: cursors crossed between %v and %v", ErrOddLoop, prevA, prevB)
		}
		o.OnStep(steps, a.pos, b.pos)
	}
	return steps, nil
}
