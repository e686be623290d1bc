// Package hexboard constructs the press topology of hexagonal toggle-puzzle
// boards from axial coordinates.
//
// What:
//
//   - Build enumerates every tile of a hexagon with the given radius, assigns
//     deterministic dense indices, and derives the press adjacency table:
//     entry k lists tile k itself plus its up-to-six in-bounds neighbors.
//   - Topology carries the full coordinate cross-reference (axial, offset,
//     index, render slot) so solvers and renderers agree on tile identity.
//   - Shared memoizes one build per radius for the process lifetime.
//
// Why:
//
//   - Hexagonal toggle puzzles: each adjacency entry is one column of the
//     press-effects matrix.
//   - Visual layouts: Render and Columns place every tile in a column-stacked
//     hexagon without recomputing geometry client-side.
//
// How indices are assigned:
//
//	Axial coordinates (q, r) valid for radius p satisfy |q|+|r|+|-q-r| ≤ 2p.
//	Each is projected to an offset pair (row = r + floor(q/2), col = q),
//	offsets are shifted so the smallest row and column become zero, and tiles
//	are ranked by (column, row). Neighbor relations always come from the six
//	axial directions, never from offset arithmetic; the floored halving in
//	the projection is what keeps negative columns aligned.
//
// Complexity:
//
//   - Build: O(n log n) time for n = 3p(p+1)+1 tiles, O(n) memory.
//   - Shared: O(1) after the first call per radius.
//
// Errors:
//
//   - ErrNegativeRadius: requested radius is below zero.
package hexboard
