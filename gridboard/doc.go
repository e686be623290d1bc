// Package gridboard builds press maps for square toggle-puzzle boards,
// where pressing a button cycles the button's own tile and every
// surrounding tile.
//
// What:
//
//   - Build produces the adjacency table of a size×size board: entry k lists
//     every tile index affected by pressing button k (the button itself plus
//     its eight surrounding neighbors, clipped at the border).
//   - Index and Coordinate convert between (row, col) pairs and the dense
//     row-major tile index used throughout the solver.
//
// Why:
//
//   - Toggle puzzles on square boards: each adjacency entry becomes one
//     column of the press-effects matrix.
//   - Border buttons affect fewer tiles; corner buttons affect exactly four.
//
// Complexity:
//
//   - Build: O(size²) time and memory (at most 9 entries per button).
//   - Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrBadSize: requested board size is smaller than 1.
package gridboard
