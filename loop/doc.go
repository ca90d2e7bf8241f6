// Package loop walks the closed pipe loop that passes through a maze's start.
//
// What
//
//   - Step: the single step rule. From position P, entered with heading H,
//     leave by grid.Exit(tile(P), H) and arrive at P + that direction.
//   - Farthest: two cursors leave the start by its two exits and advance in
//     lockstep until they share a cell; the iteration count is the distance
//     to the farthest point of the loop.
//   - Trace: one cursor leaves by the first exit and records every cell until
//     it returns to the start, producing the closed Route and a copy of the
//     grid with every loop cell marked grid.InLoop.
//   - Distances: breadth-first search over mutual pipe connections from the
//     start. Its maximum depth is an independent check of Farthest.
//
// Odd-length loops
//
//	Every cycle on a square lattice has even length, so the cursors of
//	Farthest always meet on a cell. If they ever swap cells instead of
//	meeting, Farthest fails with ErrOddLoop rather than guessing.
//
// Options
//
//   - DefaultOptions(): no hook, step budget = maze width × height.
//   - WithOnStep(fn):    called after every step with the cursor position(s).
//   - WithMaxSteps(n):   override the step budget (n > 0; 0 restores the default).
//
// Errors
//
//   - ErrInvalidTraversal: category of every traversal failure:
//     ErrOffGrid, ErrOddLoop, ErrLoopNotClosed and wrapped grid.ErrInvalidTile.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - maze.ErrAmbiguousStart is passed through from start resolution.
//
// Complexity
//
//   - Farthest, Trace, Distances: O(L) time for a loop of L tiles;
//     Trace additionally copies the grid, O(W×H) memory.
//
// Every function is side-effect free on the Maze and returns identical
// results when run repeatedly.
package loop
