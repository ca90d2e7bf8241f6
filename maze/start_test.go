package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/internal/samples"
	"github.com/katalvlaran/pipemaze/maze"
)

// TestResolveStart checks inferred exits and tile on the puzzle samples.
func TestResolveStart(t *testing.T) {
	cases := []struct {
		sample string
		exits  [2]grid.Direction
		tile   grid.Tile
	}{
		{"square", [2]grid.Direction{grid.East, grid.South}, grid.BendSE},
		{"square-noisy", [2]grid.Direction{grid.East, grid.South}, grid.BendSE},
		{"minimal", [2]grid.Direction{grid.East, grid.South}, grid.BendSE},
		{"complex-noisy", [2]grid.Direction{grid.East, grid.South}, grid.BendSE},
		{"junk", [2]grid.Direction{grid.South, grid.West}, grid.BendSW},
	}
	for _, tc := range cases {
		t.Run(tc.sample, func(t *testing.T) {
			m, err := maze.Parse(samples.All[tc.sample].Text)
			require.NoError(t, err)

			shape, err := m.ResolveStart()
			require.NoError(t, err)
			assert.Equal(t, tc.exits, shape.Exits)
			assert.Equal(t, tc.tile, shape.Tile)
		})
	}
}

// TestResolveStart_Shapes drives each of the six shapes through the start.
func TestResolveStart_Shapes(t *testing.T) {
	cases := []struct {
		name string
		text string
		tile grid.Tile
	}{
		{"Vertical", ".|.\n.S.\n.|.\n", grid.Vertical},
		{"Horizontal", "...\n-S-\n...\n", grid.Horizontal},
		{"BendNE", ".|.\n.S-\n...\n", grid.BendNE},
		{"BendNW", ".|.\n-S.\n...\n", grid.BendNW},
		{"BendSW", "...\n-S.\n.|.\n", grid.BendSW},
		{"BendSE", "...\n.S-\n.|.\n", grid.BendSE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.Parse(tc.text)
			require.NoError(t, err)
			shape, err := m.ResolveStart()
			require.NoError(t, err)
			assert.Equal(t, tc.tile, shape.Tile)

			// round-trip: tile → connections → the same exit pair
			conns, ok := shape.Tile.Connections()
			require.True(t, ok)
			assert.ElementsMatch(t, shape.Exits[:], conns[:])
		})
	}
}

// TestResolveStart_Ambiguous: zero, one, three or four compatible
// neighbors must fail rather than pick two.
func TestResolveStart_Ambiguous(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"Zero", "...\n.S.\n...\n"},
		{"ZeroIncompatible", ".-.\n|S|\n.-.\n"},
		{"One", "S-\n..\n"},
		{"Three", ".|.\n-S-\n...\n"},
		{"Four", ".|.\n-S-\n.|.\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.Parse(tc.text)
			require.NoError(t, err)
			_, err = m.ResolveStart()
			assert.ErrorIs(t, err, maze.ErrAmbiguousStart)
		})
	}
}

// TestResolveStart_Pure: resolving twice gives the same shape and leaves the
// start cell as Start.
func TestResolveStart_Pure(t *testing.T) {
	m, err := maze.Parse(samples.All["larger"].Text)
	require.NoError(t, err)

	a, err := m.ResolveStart()
	require.NoError(t, err)
	b, err := m.ResolveStart()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, grid.Start, m.Tile(m.Start()))
}
