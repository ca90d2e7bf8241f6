// Package loop defines options, sentinel errors and result types
// for tracing the pipe loop.
package loop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/maze"
)

// Sentinel errors for loop traversal.
var (
	// ErrInvalidTraversal is the category of every traversal failure.
	ErrInvalidTraversal = errors.New("loop: invalid traversal")

	// ErrOffGrid indicates a step would leave the padded grid.
	ErrOffGrid = fmt.Errorf("%w: step leaves the grid", ErrInvalidTraversal)

	// ErrOddLoop indicates the two cursors swapped cells without meeting.
	ErrOddLoop = fmt.Errorf("%w: loop has odd length", ErrInvalidTraversal)

	// ErrLoopNotClosed indicates the step budget ran out before the loop closed.
	ErrLoopNotClosed = fmt.Errorf("%w: loop does not close", ErrInvalidTraversal)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")
)

// Route is the ordered list of loop cells, starting and ending at the start.
type Route []grid.Position

// Len returns the number of distinct loop tiles (the closing duplicate is not counted).
func (r Route) Len() int {
	if len(r) == 0 {
		return 0
	}
	return len(r) - 1
}

// Closed reports whether the route has at least one step and ends where it began.
func (r Route) Closed() bool {
	return len(r) > 1 && r[0] == r[len(r)-1]
}

// Loop is the result of Trace.
type Loop struct {
	// Route is the closed loop, Route[0] == Route[len(Route)-1] == start.
	Route Route
	// Marked is a copy of the maze grid with every loop cell set to grid.InLoop.
	Marked *grid.Grid
	// Start is the resolved start shape the trace departed with.
	Start maze.StartShape
}

// Option configures traversal behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Farthest, Trace and Distances.
type Options struct {
	// OnStep is called after each step. step counts from 1; cursors holds the
	// position of every cursor after that step (two for Farthest, one otherwise).
	OnStep func(step int, cursors ...grid.Position)

	// MaxSteps bounds the number of steps. 0 means width × height of the maze.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a no-op hook and the default step budget.
func DefaultOptions() Options {
	return Options{
		OnStep:   func(int, ...grid.Position) {},
		MaxSteps: 0,
	}
}

// WithOnStep registers a per-step callback.
func WithOnStep(fn func(step int, cursors ...grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps overrides the step budget.
//
//	n > 0:  at most n steps
//	n == 0: width × height of the maze
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// buildOptions applies opts over the defaults and fills in the maze-sized budget.
func buildOptions(m *maze.Maze, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = m.Width() * m.Height()
	}
	return o, nil
}
