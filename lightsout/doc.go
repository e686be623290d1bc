// Package lightsout solves Lights-Out-style toggle puzzles exactly by
// modeling button presses as a linear system over a finite ring.
//
// What:
//
//   - Solver.Solve maps a board and a difficulty label to a press-by-press
//     solution: each Step records the click, the tiles it cycles, and the
//     full board after the press, ending at the all-ones (solved) board.
//   - Flatten adapts nested row input to the flat board form Solve consumes.
//   - The difficulty catalog is closed:
//     easy    3×3 grid, 9 tiles, values cycle mod 4
//     medium  4×4 grid, 16 tiles, values cycle mod 4
//     hard    radius-3 hexagon, 37 tiles, values cycle mod 2
//     expert  radius-3 hexagon, 37 tiles, values cycle mod 6
//
// How:
//
//	Pressing button j advances every tile in its adjacency entry one position
//	along the 1..m cycle, which over Z_m is adding column j of the
//	press-effects matrix A to the board. The press counts x therefore solve
//	A·x ≡ (1 - board) (mod m). Prime and prime-power levels go through
//	modsolve.SolveMod; the expert level's mod-6 ring is split into its 2×3
//	factors through modsolve.SolveCRT. The replayed click path presses
//	buttons in ascending index order, every press of one button contiguous;
//	pressing a button k or k+m times is equivalent.
//
// Concurrency:
//
//	A Solver holds no per-solve state. The only shared structure is the
//	read-only hexagon topology, memoized per radius by hexboard.Shared.
//
// Options:
//
//   - WithHexTopology: inject a pre-built hexagon topology in place of the
//     process-wide shared instance.
//
// Errors:
//
//   - ErrUnknownDifficulty: label outside the catalog.
//   - ErrBoardSize: board length differs from the difficulty's tile count.
//   - ErrTopologyMismatch: injected topology radius differs from the
//     difficulty's.
//   - Solver failures wrap modsolve.ErrInconsistent or modsolve.ErrNoInverse.
package lightsout
