package maze

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/pipemaze/grid"
)

// Parse builds a Maze from puzzle text: one line per row, one symbol per
// column. A trailing '\r' on each line and trailing blank lines are ignored.
// The resulting grid carries one Ground ring on every side, so Start is
// reported in padded coordinates.
//
// Row lengths are counted in runes and validated before any symbol is decoded.
// Complexity: O(W×H).
func Parse(text string) (*Maze, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrNonRectangular, i+1, n, width)
		}
	}

	cells := make([][]grid.Tile, len(lines))
	for r, line := range lines {
		row := make([]grid.Tile, 0, width)
		for _, sym := range line {
			t, err := grid.ParseTile(sym)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrUnknownSymbol, sym, r+1, len(row)+1)
			}
			row = append(row, t)
		}
		cells[r] = row
	}

	g, err := grid.New(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	padded := g.Pad(grid.Ground)

	starts := padded.Find(grid.Start)
	switch len(starts) {
	case 0:
		return nil, ErrNoStart
	case 1:
	default:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, len(starts))
	}

	return &Maze{tiles: padded, start: starts[0]}, nil
}

// ParseReader reads r to EOF and parses the text with Parse.
func ParseReader(r io.Reader) (*Maze, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("maze: read input: %w", err)
	}
	return Parse(string(b))
}
