// Package render draws a solved maze for a terminal: the start, the loop and
// the enclosed tiles each in their own ANSI color.
package render

import (
	"errors"
	"strings"

	"github.com/vyevs/ansi"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
)

// ErrShapeMismatch is returned when the classification grid does not match the maze.
var ErrShapeMismatch = errors.New("render: classification grid does not match maze")

// Palette names the foreground color of each highlighted class.
// An empty name leaves that class uncolored.
type Palette struct {
	Start    string
	Loop     string
	Interior string
}

// DefaultPalette colors the start red, the loop green and the interior purple.
func DefaultPalette() Palette {
	return Palette{Start: "red", Loop: "green", Interior: "purple"}
}

// Options controls Colorize.
type Options struct {
	Glyphs  grid.Glyphs
	Palette Palette
}

// Option configures Colorize via functional arguments.
type Option func(*Options)

// DefaultOptions draws box-drawing glyphs with DefaultPalette.
func DefaultOptions() Options {
	return Options{Glyphs: grid.Box, Palette: DefaultPalette()}
}

// WithGlyphs selects the tile alphabet.
func WithGlyphs(g grid.Glyphs) Option {
	return func(o *Options) { o.Glyphs = g }
}

// WithPalette replaces the colors.
func WithPalette(p Palette) Option {
	return func(o *Options) { o.Palette = p }
}

// Colorize draws every tile of m with its own shape. Cells marked InLoop in
// classified are drawn in the loop color, Interior cells in the interior
// color, and the start in the start color. classified is usually the grid
// returned by area.InteriorScan; lp.Marked works too and leaves the interior
// plain.
func Colorize(m *maze.Maze, classified *grid.Grid, opts ...Option) (string, error) {
	if classified == nil || classified.Width() != m.Width() || classified.Height() != m.Height() {
		return "", ErrShapeMismatch
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	b.Grow(m.Width() * m.Height() * 8)
	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			p := grid.Position{Row: r, Col: c}
			color := ""
			switch {
			case p == m.Start():
				color = o.Palette.Start
			case classified.At(p) == grid.InLoop:
				color = o.Palette.Loop
			case classified.At(p) == grid.Interior:
				color = o.Palette.Interior
			}
			writeTile(&b, m.Tile(p), o.Glyphs, color)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Loop is a shortcut for Colorize over lp.Marked.
func Loop(m *maze.Maze, lp *loop.Loop, opts ...Option) (string, error) {
	if lp == nil {
		return "", ErrShapeMismatch
	}
	return Colorize(m, lp.Marked, opts...)
}

func writeTile(b *strings.Builder, t grid.Tile, glyphs grid.Glyphs, color string) {
	r := t.Rune()
	if glyphs == grid.Box {
		r = t.BoxRune()
	}
	if color == "" {
		b.WriteRune(r)
		return
	}
	b.WriteString(ansi.FGColorName(color))
	b.WriteRune(r)
	b.WriteString(ansi.Clear)
}
