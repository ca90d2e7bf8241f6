// Package pipemaze solves the closed-loop pipe maze: find the loop of pipes
// running through the start tile, how far its farthest point is, and how
// many tiles it encloses.
//
// What is inside?
//
//	grid/     Direction, Position, Tile and Grid: the exhaustive connection table
//	maze/     text parser with a Ground ring, start-shape inference
//	loop/     dual-cursor farthest point, single-cursor route, BFS cross-check
//	area/     shoelace + Pick's theorem and row-scan parity, cross-validated
//	render/   ANSI colored drawing of start, loop and interior
//	cmd/pipemaze  command line front end
//
// Data flows strictly downward:
//
//	text → grid → start connectivity → loop route → interior count
//
// Quick ASCII example:
//
//	S--7       start behaves as F (East + South)
//	|..|       loop length 10, farthest point 5 steps away
//	L--J       2 enclosed tiles
//
// Every stage is pure: the parsed Maze is never mutated; tracing and counting
// work on copies and return identical results when repeated.
//
//	report, err := pipemaze.Solve(text, pipemaze.WithDistanceCheck())
package pipemaze
