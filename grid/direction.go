package grid

import "fmt"

// offsets holds (dRow, dCol) per Direction.
var offsets = [4][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

var directionNames = [4]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// Offset returns the row and column delta of one step in d.
func (d Direction) Offset() (dRow, dCol int) {
	o := offsets[d]
	return o[0], o[1]
}

// Flip returns the opposite direction: North↔South, East↔West.
func (d Direction) Flip() Direction {
	return (d + 2) % 4
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Direction(?)"
}

// Add returns the neighbor of p in direction d. No bounds checking is done.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
