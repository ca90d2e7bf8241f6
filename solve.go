package pipemaze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipemaze/area"
	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
)

// ErrFarthestMismatch indicates the farthest-point count disagrees with the
// traced route length or with the breadth-first distances.
var ErrFarthestMismatch = errors.New("pipemaze: farthest point checks disagree")

// Report holds the answers for one maze and the intermediate values needed to
// draw it.
type Report struct {
	Farthest   int // steps from the start to the farthest loop tile
	LoopLength int // distinct loop tiles
	Area       int // polygon area of the route
	Interior   int // tiles enclosed by the loop

	Maze       *maze.Maze
	Start      maze.StartShape
	Loop       *loop.Loop
	Classified *grid.Grid // Interior / Exterior / InLoop per cell
}

// Options controls Solve.
type Options struct {
	// DistanceCheck also runs loop.Distances and compares its maximum with Farthest.
	DistanceCheck bool
	// Loop is passed to every loop traversal.
	Loop []loop.Option
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// WithDistanceCheck enables the breadth-first cross-check of the farthest point.
func WithDistanceCheck() Option {
	return func(o *Options) { o.DistanceCheck = true }
}

// WithLoopOptions forwards options to loop.Farthest, loop.Trace and loop.Distances.
func WithLoopOptions(opts ...loop.Option) Option {
	return func(o *Options) { o.Loop = append(o.Loop, opts...) }
}

// Solve parses text and computes every answer, checking the independent
// methods against each other:
//
//   - Farthest must equal ceil(LoopLength/2) (and the BFS maximum with WithDistanceCheck),
//     otherwise ErrFarthestMismatch;
//   - Pick's theorem and the row scan must agree, otherwise area.ErrMethodDisagreement.
//
// Parse, start and traversal errors are returned unchanged.
func Solve(text string, opts ...Option) (*Report, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	m, err := maze.Parse(text)
	if err != nil {
		return nil, err
	}
	farthest, err := loop.Farthest(m, o.Loop...)
	if err != nil {
		return nil, err
	}
	lp, err := loop.Trace(m, o.Loop...)
	if err != nil {
		return nil, err
	}
	if half := (lp.Route.Len() + 1) / 2; farthest != half {
		return nil, fmt.Errorf("%w: dual cursor %d, half route %d", ErrFarthestMismatch, farthest, half)
	}
	if o.DistanceCheck {
		dist, err := loop.Distances(m, o.Loop...)
		if err != nil {
			return nil, err
		}
		if bfs := loop.MaxDistance(dist); bfs != farthest {
			return nil, fmt.Errorf("%w: dual cursor %d, breadth-first %d", ErrFarthestMismatch, farthest, bfs)
		}
	}

	a, err := area.Area(lp.Route)
	if err != nil {
		return nil, err
	}
	interior, classified, err := area.Interior(m, lp)
	if err != nil {
		return nil, err
	}

	return &Report{
		Farthest:   farthest,
		LoopLength: lp.Route.Len(),
		Area:       a,
		Interior:   interior,
		Maze:       m,
		Start:      lp.Start,
		Loop:       lp,
		Classified: classified,
	}, nil
}
