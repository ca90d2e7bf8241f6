package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates a rune that does not encode any tile.
	ErrUnknownSymbol = errors.New("grid: unknown tile symbol")
	// ErrInvalidTile indicates a tile has no exit for the heading it was entered with.
	ErrInvalidTile = errors.New("grid: tile has no exit for entry heading")
	// ErrInvalidConnections indicates a direction pair that no pipe tile owns.
	ErrInvalidConnections = errors.New("grid: no tile connects the given directions")
)
