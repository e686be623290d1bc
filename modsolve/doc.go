// Package modsolve solves square linear systems A·x ≡ b over the ring of
// integers modulo m.
//
// What:
//
//   - SolveMod runs Gauss-Jordan elimination on an augmented copy of the
//     system, producing one particular solution with free variables pinned
//     to zero.
//   - SolveCRT solves mod-6 systems by combining independent mod-2 and mod-3
//     solutions through the Chinese Remainder Theorem.
//   - Inverse and Mod expose the underlying modular arithmetic: the
//     multiplicative inverse (with an explicit no-inverse result) and the
//     least non-negative residue.
//
// Why:
//
//   - Toggle puzzles: pressing button j adds column j of the press-effects
//     matrix to the board, so the presses x that reach the solved state are
//     exactly the solutions of A·x ≡ b (mod m).
//   - Any exact small-ring system where floating point is unacceptable.
//
// Behavior over non-prime moduli:
//
//	Z_m is not a field when m is composite, so a pivot may lack an inverse.
//	SolveMod fails with ErrNoInverse rather than attempting partial
//	gcd-based elimination; callers that need a composite modulus with
//	coprime factors (such as 6) should go through SolveCRT, which keeps
//	every elimination inside a prime field.
//
// Complexity:
//
//   - SolveMod: O(n³) time, O(n²) memory.
//   - SolveCRT: two SolveMod runs plus an O(n) reconstruction.
//   - Inverse: O(log m) time (extended Euclid).
//
// Errors:
//
//   - ErrBadModulus: modulus is smaller than 2.
//   - ErrDimensionMismatch: coefficient matrix is not square, or the target
//     vector length differs from the matrix size.
//   - ErrNoInverse: a pivot has no multiplicative inverse modulo m.
//   - ErrInconsistent: elimination produced an all-zero row with a non-zero
//     target, so no solution exists.
package modsolve
