package maze

import "github.com/katalvlaran/pipemaze/grid"

// Maze is a parsed, padded pipe grid and its start position.
// It is read-only once built; Grid hands out copies.
type Maze struct {
	tiles *grid.Grid
	start grid.Position
}

// StartShape is the inferred shape of the start tile.
type StartShape struct {
	// Exits are the two directions the start connects to, in N, E, S, W order.
	Exits [2]grid.Direction
	// Tile is the pipe the start behaves as.
	Tile grid.Tile
}

// Start returns the start position in padded coordinates.
func (m *Maze) Start() grid.Position { return m.start }

// Tile returns the tile at p. p must be in bounds.
func (m *Maze) Tile(p grid.Position) grid.Tile { return m.tiles.At(p) }

// InBounds reports whether p lies inside the padded grid.
func (m *Maze) InBounds(p grid.Position) bool { return m.tiles.InBounds(p) }

// Width returns the padded width.
func (m *Maze) Width() int { return m.tiles.Width() }

// Height returns the padded height.
func (m *Maze) Height() int { return m.tiles.Height() }

// Grid returns a copy of the padded grid, safe to mark up.
func (m *Maze) Grid() *grid.Grid { return m.tiles.Clone() }

// WithMarkers returns a copy of the grid with every given position set to
// InLoop. Handy for watching cursors move while debugging a traversal.
func (m *Maze) WithMarkers(ps ...grid.Position) *grid.Grid {
	g := m.tiles.Clone()
	for _, p := range ps {
		if g.InBounds(p) {
			g.Set(p, grid.InLoop)
		}
	}
	return g
}

// String renders the padded maze with the puzzle alphabet.
func (m *Maze) String() string { return m.tiles.Render(grid.ASCII) }
