package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]grid.Tile
		err   error
	}{
		{"EmptyRows", [][]grid.Tile{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.Tile{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.Tile{{grid.Ground, grid.Start}, {grid.Ground}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.cells, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the Grid.
func TestNew_DeepCopy(t *testing.T) {
	cells := [][]grid.Tile{{grid.Vertical, grid.Horizontal}}
	g, err := grid.New(cells)
	require.NoError(t, err)

	cells[0][0] = grid.Ground
	assert.Equal(t, grid.Vertical, g.At(grid.Position{Row: 0, Col: 0}))
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.Filled(3, 2, grid.Ground)
	require.NoError(t, err)

	valid := []grid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []grid.Position{{Row: 0, Col: -1}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: -1, Col: 2}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

func TestFilled_Errors(t *testing.T) {
	_, err := grid.Filled(0, 3, grid.Ground)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.Filled(3, -1, grid.Ground)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Pad, Clone, Find Tests
//----------------------------------------------------------------------------//

// TestPad verifies the ground ring and the shifted original cells.
func TestPad(t *testing.T) {
	g, err := grid.New([][]grid.Tile{
		{grid.Start, grid.BendSW},
		{grid.BendNE, grid.BendNW},
	})
	require.NoError(t, err)

	p := g.Pad(grid.Ground)
	require.Equal(t, 4, p.Width())
	require.Equal(t, 4, p.Height())

	want := "....\n.S7.\n.LJ.\n....\n"
	if diff := cmp.Diff(want, p.String()); diff != "" {
		t.Errorf("Pad mismatch (-want +got):\n%s", diff)
	}
	// original untouched
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, grid.Start, g.At(grid.Position{Row: 0, Col: 0}))
}

// TestClone_Independent ensures Set on a clone never alters the source.
func TestClone_Independent(t *testing.T) {
	g, err := grid.Filled(2, 2, grid.Ground)
	require.NoError(t, err)

	c := g.Clone()
	c.Set(grid.Position{Row: 1, Col: 1}, grid.InLoop)

	assert.Equal(t, grid.Ground, g.At(grid.Position{Row: 1, Col: 1}))
	assert.Equal(t, grid.InLoop, c.At(grid.Position{Row: 1, Col: 1}))
}

func TestFind(t *testing.T) {
	g, err := grid.New([][]grid.Tile{
		{grid.Start, grid.Ground},
		{grid.Ground, grid.Start},
	})
	require.NoError(t, err)

	got := g.Find(grid.Start)
	want := []grid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, g.Find(grid.Vertical))
}

// TestIndexCoordinate round-trips every cell of a 3×4 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.Filled(4, 3, grid.Ground)
	require.NoError(t, err)

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := grid.Position{Row: r, Col: c}
			idx := g.Index(p)
			assert.Equal(t, r*4+c, idx)
			assert.Equal(t, p, g.Coordinate(idx))
		}
	}
}

// TestRender_Box checks the box-drawing alphabet.
func TestRender_Box(t *testing.T) {
	g, err := grid.New([][]grid.Tile{
		{grid.BendSE, grid.Horizontal, grid.BendSW},
		{grid.Vertical, grid.Ground, grid.Vertical},
		{grid.BendNE, grid.Horizontal, grid.BendNW},
	})
	require.NoError(t, err)

	assert.Equal(t, "┌─┐\n│.│\n└─┘\n", g.Render(grid.Box))
	assert.Equal(t, "F-7\n|.|\nL-J\n", g.Render(grid.ASCII))
}
