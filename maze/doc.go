// Package maze parses puzzle text into a padded tile grid and infers the
// shape hidden under the start tile.
//
// What:
//
//   - Parse / ParseReader: text → Maze with one Ground ring on every side.
//   - Maze: immutable grid plus the start Position (padded coordinates).
//   - ResolveStart: the two directions the start connects to and the pipe
//     Tile it stands in for, inferred from its four neighbors.
//
// Why:
//
//   - The start symbol 'S' hides its shape; every later stage needs the real
//     connections but must not see a mutated maze.
//
// Complexity:
//
//   - Parse: O(W×H) time and memory.
//   - ResolveStart: O(1).
//
// Errors:
//
//   - ErrMalformedInput: umbrella for ErrEmptyInput, ErrNonRectangular,
//     ErrUnknownSymbol, ErrNoStart and ErrMultipleStarts.
//   - ErrAmbiguousStart: the start does not have exactly two compatible neighbors.
package maze
