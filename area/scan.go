package area

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
)

// InteriorScan counts the tiles enclosed by lp by scanning every row of m
// west to east. Only cells marked grid.InLoop in lp.Marked take part in the
// parity; every other cell, pipe or not, is classified by the current flag.
// The start cell is read as lp.Start.Tile.
//
// It also returns a copy of lp.Marked in which every non-loop cell is set to
// grid.Interior or grid.Exterior.
// Returns ErrNoLoop or ErrGridMismatch for unusable input.
func InteriorScan(m *maze.Maze, lp *loop.Loop) (int, *grid.Grid, error) {
	if lp == nil || lp.Marked == nil {
		return 0, nil, ErrNoLoop
	}
	if lp.Marked.Width() != m.Width() || lp.Marked.Height() != m.Height() {
		return 0, nil, fmt.Errorf("%w: marked %dx%d, maze %dx%d", ErrGridMismatch,
			lp.Marked.Width(), lp.Marked.Height(), m.Width(), m.Height())
	}

	classified := lp.Marked.Clone()
	total := 0
	for r := 0; r < m.Height(); r++ {
		total += scanRow(m, lp, r, classified)
	}
	return total, classified, nil
}

// scanRow classifies row r into out and returns its interior count.
// The inside flag and the unmatched corner never carry across rows.
func scanRow(m *maze.Maze, lp *loop.Loop, r int, out *grid.Grid) int {
	var (
		inside  bool
		corner  grid.Tile
		pending bool
		count   int
	)
	for c := 0; c < m.Width(); c++ {
		p := grid.Position{Row: r, Col: c}
		if lp.Marked.At(p) != grid.InLoop {
			if inside {
				count++
				out.Set(p, grid.Interior)
			} else {
				out.Set(p, grid.Exterior)
			}
			continue
		}

		t := m.Tile(p)
		if p == m.Start() {
			t = lp.Start.Tile
		}
		switch {
		case t.IsVertical():
			inside = !inside
		case t.IsBend() && !pending:
			inside = !inside
			corner, pending = t, true
		case t.IsBend():
			if formsU(corner, t) {
				inside = !inside
			}
			pending = false
		}
	}
	return count
}

// formsU reports whether two bends on one row open toward the same side:
// {L, J} or {F, 7}, in either order.
func formsU(a, b grid.Tile) bool {
	switch {
	case a == grid.BendNE && b == grid.BendNW, a == grid.BendNW && b == grid.BendNE:
		return true
	case a == grid.BendSE && b == grid.BendSW, a == grid.BendSW && b == grid.BendSE:
		return true
	}
	return false
}

// Interior counts the enclosed tiles with both InteriorPick and InteriorScan
// and returns the count with the scan's classification grid.
// A difference is an invariant violation reported as ErrMethodDisagreement.
func Interior(m *maze.Maze, lp *loop.Loop) (int, *grid.Grid, error) {
	if lp == nil {
		return 0, nil, ErrNoLoop
	}
	pick, err := InteriorPick(lp.Route)
	if err != nil {
		return 0, nil, err
	}
	scan, classified, err := InteriorScan(m, lp)
	if err != nil {
		return 0, nil, err
	}
	if pick != scan {
		return 0, nil, fmt.Errorf("%w: pick=%d scan=%d", ErrMethodDisagreement, pick, scan)
	}
	return pick, classified, nil
}
