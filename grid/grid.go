package grid

import "strings"

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(cells [][]Tile) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{width: w, height: h, cells: make([][]Tile, h)}
	for r := range cells {
		g.cells[r] = make([]Tile, w)
		copy(g.cells[r], cells[r])
	}
	return g, nil
}

// Filled returns a width×height grid with every cell set to t.
// Non-positive dimensions yield ErrEmptyGrid.
func Filled(width, height int, t Tile) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{width: width, height: height, cells: make([][]Tile, height)}
	for r := range g.cells {
		row := make([]Tile, width)
		for c := range row {
			row[c] = t
		}
		g.cells[r] = row
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the tile at p. p must be in bounds.
func (g *Grid) At(p Position) Tile {
	return g.cells[p.Row][p.Col]
}

// Set overwrites the tile at p. p must be in bounds.
// Use it on clones only; grids owned by a maze are never mutated.
func (g *Grid) Set(p Position, t Tile) {
	g.cells[p.Row][p.Col] = t
}

// Clone returns a deep copy of g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([][]Tile, g.height)}
	for r, row := range g.cells {
		c.cells[r] = make([]Tile, g.width)
		copy(c.cells[r], row)
	}
	return c
}

// Pad returns a copy of g surrounded by one ring of ring tiles, so every
// original cell has four in-bounds neighbors. Original (r,c) moves to (r+1,c+1).
func (g *Grid) Pad(ring Tile) *Grid {
	w, h := g.width+2, g.height+2
	p := &Grid{width: w, height: h, cells: make([][]Tile, h)}
	for r := 0; r < h; r++ {
		row := make([]Tile, w)
		for c := range row {
			row[c] = ring
		}
		if r > 0 && r < h-1 {
			copy(row[1:w-1], g.cells[r-1])
		}
		p.cells[r] = row
	}
	return p
}

// Find returns the positions of every cell holding t, in row-major order.
func (g *Grid) Find(t Tile) []Position {
	var found []Position
	for r, row := range g.cells {
		for c, cell := range row {
			if cell == t {
				found = append(found, Position{Row: r, Col: c})
			}
		}
	}
	return found
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.width, Col: idx % g.width}
}

// Render draws the grid one line per row, each line terminated by '\n'.
func (g *Grid) Render(glyphs Glyphs) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height * 3)
	for _, row := range g.cells {
		for _, t := range row {
			if glyphs == Box {
				b.WriteRune(t.BoxRune())
			} else {
				b.WriteRune(t.Rune())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid with the ASCII alphabet.
func (g *Grid) String() string { return g.Render(ASCII) }
