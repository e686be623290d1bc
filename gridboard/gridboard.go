// Package gridboard defines the square-board press map and its sentinel errors.
package gridboard

import (
	"errors"
	"sort"
)

// ErrBadSize indicates a requested board size smaller than 1.
var ErrBadSize = errors.New("gridboard: size must be at least 1")

// surround lists the button's own cell and its eight surrounding cells,
// in (row, col) delta form.
var surround = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Build returns the adjacency table of a size×size board. Entry k holds the
// ascending-sorted tile indices affected by pressing button k: the button
// itself plus every in-bounds surrounding cell. The result is freshly
// allocated on every call and safe for the caller to own.
// Returns ErrBadSize if size < 1.
// Complexity: O(size²) time and memory.
func Build(size int) ([][]int, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	n := size * size
	adj := make([][]int, n)
	for k := 0; k < n; k++ {
		row, col := Coordinate(k, size)
		affected := make([]int, 0, len(surround))
		for _, d := range surround {
			r, c := row+d[0], col+d[1]
			if r < 0 || r >= size || c < 0 || c >= size {
				continue
			}
			affected = append(affected, Index(r, c, size))
		}
		sort.Ints(affected)
		adj[k] = affected
	}

	return adj, nil
}

// Index maps (row, col) to the row-major tile index: row*size + col.
// Complexity: O(1).
func Index(row, col, size int) int {
	return row*size + col
}

// Coordinate converts a row-major tile index back to (row, col).
// Complexity: O(1).
func Coordinate(idx, size int) (row, col int) {
	return idx / size, idx % size
}
