// Package modsolve implements Gauss-Jordan elimination over Z_m with strict
// fail-fast validation.
package modsolve

import (
	"fmt"
)

// Mod returns the least non-negative residue of v modulo m. The built-in %
// operator keeps the sign of the dividend; elimination arithmetic needs the
// Euclidean representative in [0, m).
func Mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}

	return r
}

// Inverse returns the multiplicative inverse of v modulo m and true, or
// (0, false) when gcd(v, m) != 1 and no inverse exists.
// Complexity: O(log m) via the extended Euclidean algorithm.
func Inverse(v, m int) (int, bool) {
	v = Mod(v, m)
	if v == 0 {
		return 0, false
	}
	r0, r1 := m, v
	s0, s1 := 0, 1
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
	}
	if r0 != 1 {
		return 0, false
	}

	return Mod(s0, m), true
}

// SolveMod solves A·x ≡ b (mod m) for square A by Gauss-Jordan elimination
// on an augmented copy; the inputs are never modified.
// Blueprint:
//
//	Stage 1 (Validate): modulus ≥ 2, square matrix, matching vector length.
//	Stage 2 (Reduce): copy [A|b] with every entry reduced into [0, m).
//	Stage 3 (Eliminate): per column, locate a non-zero pivot from the
//	  diagonal down, swap it up, scale its row to a unit pivot and clear the
//	  column from every other row. Columns without a pivot stay unresolved.
//	Stage 4 (Check): an all-zero coefficient row with a non-zero target
//	  means no solution exists.
//	Stage 5 (Substitute): read the solution bottom-up; unresolved variables
//	  are pinned to zero, yielding one particular solution.
//
// Returns ErrBadModulus, ErrDimensionMismatch, ErrNoInverse or
// ErrInconsistent; on success every entry of x lies in [0, m).
// Complexity: O(n³) time, O(n²) memory.
func SolveMod(a [][]int, b []int, m int) ([]int, error) {
	// Stage 1: fail-fast validation.
	if m < 2 {
		return nil, fmt.Errorf("SolveMod: modulus %d: %w", m, ErrBadModulus)
	}
	n := len(b)
	if len(a) != n {
		return nil, fmt.Errorf("SolveMod: %d rows for %d targets: %w", len(a), n, ErrDimensionMismatch)
	}
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("SolveMod: row %d has %d columns, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
	}

	// Stage 2: augmented working copy, reduced mod m.
	aug := make([][]int, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]int, n+1)
		for j := 0; j < n; j++ {
			aug[i][j] = Mod(a[i][j], m)
		}
		aug[i][n] = Mod(b[i], m)
	}

	// Stage 3: eliminate column by column with unit pivots.
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if aug[r][col] != 0 {
				pivot = r

				break
			}
		}
		if pivot == -1 {
			continue // free column; its variable is resolved in Stage 5
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		inv, ok := Inverse(aug[col][col], m)
		if !ok {
			return nil, fmt.Errorf("SolveMod: pivot %d in column %d: %w", aug[col][col], col, ErrNoInverse)
		}
		for j := 0; j <= n; j++ {
			aug[col][j] = Mod(aug[col][j]*inv, m)
		}
		for r := 0; r < n; r++ {
			if r == col || aug[r][col] == 0 {
				continue
			}
			f := aug[r][col]
			for j := 0; j <= n; j++ {
				aug[r][j] = Mod(aug[r][j]-f*aug[col][j], m)
			}
		}
	}

	// Stage 4: reject systems with an unsatisfiable row.
	for i := 0; i < n; i++ {
		zero := true
		for j := 0; j < n; j++ {
			if aug[i][j] != 0 {
				zero = false

				break
			}
		}
		if zero && aug[i][n] != 0 {
			return nil, fmt.Errorf("SolveMod: row %d: %w", i, ErrInconsistent)
		}
	}

	// Stage 5: back-substitution; free variables stay zero.
	x := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		if aug[i][i] != 1 {
			continue
		}
		s := aug[i][n]
		for j := i + 1; j < n; j++ {
			s -= aug[i][j] * x[j]
		}
		x[i] = Mod(s, m)
	}

	return x, nil
}
