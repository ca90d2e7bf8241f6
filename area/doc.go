// Package area counts the tiles enclosed by a traced pipe loop, two
// independent ways that must agree.
//
// What:
//
//   - Method A (InteriorPick): shoelace area of the route polygon in its
//     trapezoid form, then Pick's theorem i = A - b/2 + 1 with b boundary tiles.
//   - Method B (InteriorScan): scan every row west to east, flipping an
//     inside flag on vertical pipes and on corner pairs that cross the row.
//   - Interior: runs both and fails with ErrMethodDisagreement if they differ.
//
// Why two methods:
//
//	The polygon method sees only the ordered route; the scan sees only which
//	cells belong to the loop and their shapes. Agreement is a strong check on
//	the tracer and the start resolver alike.
//
// Corner pairing:
//
//	On a row, a run of loop tiles starts and ends with a bend. The first bend
//	flips the inside flag. The closing bend flips it back only when the two
//	form a U (L…J or F…7), because then the loop touches the row and turns
//	back without crossing it. L…7 and F…J cross and keep the single flip.
//	Horizontal pipes inside a run change nothing.
//
// Complexity:
//
//   - TwiceArea, Area, InteriorPick: O(L).
//   - InteriorScan, Interior: O(W×H) time and memory (classification copy).
//
// Errors:
//
//   - ErrOpenRoute: route has fewer than four cells or does not end at its start.
//   - ErrNoLoop: nil loop or loop without a marked grid.
//   - ErrGridMismatch: marked grid and maze differ in size.
//   - ErrMethodDisagreement: Method A and Method B disagree (an invariant violation).
package area
