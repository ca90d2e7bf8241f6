// Package grid models a rectangular field of pipe tiles and the four
// cardinal directions that connect them.
//
// What:
//
//   - Direction: North, East, South, West with Offset and Flip.
//   - Position: (Row, Col) pair; Position.Add(d) yields the neighbor (no bounds check).
//   - Tile: closed enum of pipe shapes, Ground, Start and derived markers
//     (InLoop, Interior, Exterior). Every pipe owns exactly two distinct
//     connection directions, looked up in a fixed table.
//   - Grid: rectangular [][]Tile, deep-copied on construction, with Pad to add
//     a ring of Ground so interior cells never need bounds checks.
//
// Why:
//
//   - Keep tile connectivity an exhaustive table rather than scattered switches.
//   - Make traversal code (Exit) fail loudly on inconsistent mazes.
//
// Complexity:
//
//   - Direction/Tile operations: O(1).
//   - New, Clone, Pad, Find, Render: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownSymbol: a rune outside the tile alphabet.
//   - ErrInvalidTile: a tile cannot be left after entering with a given heading.
//   - ErrInvalidConnections: a direction pair that no pipe owns.
//
// Tile alphabet:
//
//	|  Vertical     -  Horizontal
//	L  BendNE       J  BendNW
//	7  BendSW       F  BendSE
//	.  Ground       S  Start
package grid
