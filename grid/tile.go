package grid

import "fmt"

// tileInfo is one row of the exhaustive tile table.
type tileInfo struct {
	symbol rune
	box    rune
	pipe   bool         // owns exactly two connections
	conns  [2]Direction // valid only when pipe
}

// tiles is indexed by Tile.
var tiles = [numTiles]tileInfo{
	Ground:     {symbol: '.', box: '.'},
	Vertical:   {symbol: '|', box: '│', pipe: true, conns: [2]Direction{North, South}},
	Horizontal: {symbol: '-', box: '─', pipe: true, conns: [2]Direction{East, West}},
	BendNE:     {symbol: 'L', box: '└', pipe: true, conns: [2]Direction{North, East}},
	BendNW:     {symbol: 'J', box: '┘', pipe: true, conns: [2]Direction{North, West}},
	BendSW:     {symbol: '7', box: '┐', pipe: true, conns: [2]Direction{South, West}},
	BendSE:     {symbol: 'F', box: '┌', pipe: true, conns: [2]Direction{South, East}},
	Start:      {symbol: 'S', box: 'S'},
	InLoop:     {symbol: 'X', box: 'X'},
	Interior:   {symbol: 'I', box: 'I'},
	Exterior:   {symbol: 'O', box: 'O'},
}

// symbols maps the puzzle alphabet to tiles. Derived markers are not part of it.
var symbols = map[rune]Tile{
	'|': Vertical,
	'-': Horizontal,
	'L': BendNE,
	'J': BendNW,
	'7': BendSW,
	'F': BendSE,
	'.': Ground,
	'S': Start,
}

// ParseTile decodes a single puzzle symbol.
// Returns ErrUnknownSymbol for any rune outside the alphabet.
func ParseTile(r rune) (Tile, error) {
	t, ok := symbols[r]
	if !ok {
		return Ground, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
	}
	return t, nil
}

// TileFromConnections returns the pipe tile that connects a and b, in either order.
// Returns ErrInvalidConnections when a == b.
func TileFromConnections(a, b Direction) (Tile, error) {
	for t := Vertical; t <= BendSE; t++ {
		c := tiles[t].conns
		if (c[0] == a && c[1] == b) || (c[0] == b && c[1] == a) {
			return t, nil
		}
	}
	return Ground, fmt.Errorf("%w: %v and %v", ErrInvalidConnections, a, b)
}

// Connections returns the two directions a pipe tile extends toward.
// ok is false for Ground, Start and the derived markers.
func (t Tile) Connections() (conns [2]Direction, ok bool) {
	if !t.valid() || !tiles[t].pipe {
		return conns, false
	}
	return tiles[t].conns, true
}

// HasEntranceFrom reports whether the tile's connection set contains d.
// It is meant for neighbor compatibility checks, not for traversal.
func (t Tile) HasEntranceFrom(d Direction) bool {
	c, ok := t.Connections()
	return ok && (c[0] == d || c[1] == d)
}

// Exit returns the direction a path leaves t by, given the heading it
// travelled when it entered t. The tile must connect heading.Flip();
// otherwise Exit fails with ErrInvalidTile.
func Exit(t Tile, heading Direction) (Direction, error) {
	c, ok := t.Connections()
	if ok {
		from := heading.Flip()
		switch from {
		case c[0]:
			return c[1], nil
		case c[1]:
			return c[0], nil
		}
	}
	return heading, fmt.Errorf("%w: %v entered heading %v", ErrInvalidTile, t, heading)
}

// IsPipe reports whether t is one of the six pipe shapes.
func (t Tile) IsPipe() bool { return t.valid() && tiles[t].pipe }

// IsBend reports whether t is one of the four corner shapes.
func (t Tile) IsBend() bool { return t >= BendNE && t <= BendSE }

// IsVertical reports whether t is the North-South pipe.
func (t Tile) IsVertical() bool { return t == Vertical }

// IsHorizontal reports whether t is the East-West pipe.
func (t Tile) IsHorizontal() bool { return t == Horizontal }

// Rune returns the tile's symbol in the puzzle alphabet.
func (t Tile) Rune() rune {
	if !t.valid() {
		return '?'
	}
	return tiles[t].symbol
}

// BoxRune returns the tile drawn with box-drawing characters.
func (t Tile) BoxRune() rune {
	if !t.valid() {
		return '?'
	}
	return tiles[t].box
}

// String implements fmt.Stringer using the puzzle alphabet.
func (t Tile) String() string { return string(t.Rune()) }

func (t Tile) valid() bool { return t < numTiles }
