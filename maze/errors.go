package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipemaze/grid"
)

var (
	// ErrMalformedInput is the category of every parse failure.
	ErrMalformedInput = errors.New("maze: malformed input")

	// ErrEmptyInput indicates the text contains no rows.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrMalformedInput)
	// ErrNonRectangular indicates lines of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: %w", ErrMalformedInput, grid.ErrNonRectangular)
	// ErrUnknownSymbol indicates a character outside the tile alphabet.
	ErrUnknownSymbol = fmt.Errorf("%w: %w", ErrMalformedInput, grid.ErrUnknownSymbol)
	// ErrNoStart indicates no 'S' cell was found.
	ErrNoStart = fmt.Errorf("%w: no start tile", ErrMalformedInput)
	// ErrMultipleStarts indicates more than one 'S' cell.
	ErrMultipleStarts = fmt.Errorf("%w: more than one start tile", ErrMalformedInput)

	// ErrAmbiguousStart indicates the start does not have exactly two
	// compatible neighbors, so it is not on a single loop.
	ErrAmbiguousStart = errors.New("maze: start tile does not have exactly two connections")
)
