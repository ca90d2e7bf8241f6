// Package grid defines Direction, Position, Tile and Grid,
// the value types shared by the maze, loop and area packages.
package grid

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	// North points to the previous row.
	North Direction = iota
	// East points to the next column.
	East
	// South points to the next row.
	South
	// West points to the previous column.
	West
)

// Directions lists the cardinal directions in canonical scan order N, E, S, W.
var Directions = [4]Direction{North, East, South, West}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Tile is the content of a single grid cell.
type Tile uint8

const (
	// Ground has no connections.
	Ground Tile = iota
	// Vertical connects North and South ('|').
	Vertical
	// Horizontal connects East and West ('-').
	Horizontal
	// BendNE connects North and East ('L').
	BendNE
	// BendNW connects North and West ('J').
	BendNW
	// BendSW connects South and West ('7').
	BendSW
	// BendSE connects South and East ('F').
	BendSE
	// Start marks the start cell; its shape is inferred from its neighbors.
	Start
	// InLoop marks a cell that belongs to the traced loop.
	InLoop
	// Interior marks a cell enclosed by the loop.
	Interior
	// Exterior marks a cell outside the loop.
	Exterior

	numTiles
)

// Grid is a rectangular field of tiles addressed as cells[row][col].
// It is deep-copied on construction; callers mutate only copies obtained via Clone.
type Grid struct {
	width, height int
	cells         [][]Tile
}

// Glyphs selects the rune alphabet used by Grid.Render.
type Glyphs uint8

const (
	// ASCII renders tiles with the puzzle alphabet (| - L J 7 F . S).
	ASCII Glyphs = iota
	// Box renders pipes with box-drawing characters (│ ─ └ ┘ ┐ ┌).
	Box
)
