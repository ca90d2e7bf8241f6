package area

import "errors"

var (
	// ErrOpenRoute indicates a route that is too short or does not close.
	ErrOpenRoute = errors.New("area: route is not a closed polygon")
	// ErrNoLoop indicates a nil loop or a loop without its marked grid.
	ErrNoLoop = errors.New("area: loop is missing")
	// ErrGridMismatch indicates the marked grid does not match the maze size.
	ErrGridMismatch = errors.New("area: marked grid does not match maze")
	// ErrMethodDisagreement indicates the polygon and scanline counts differ.
	ErrMethodDisagreement = errors.New("area: interior methods disagree")
)
