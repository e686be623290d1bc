// Package modsolve defines sentinel errors for the modular linear solver.
package modsolve

import (
	"errors"
)

// Sentinel errors for modular system solving.
var (
	// ErrBadModulus indicates a modulus smaller than 2.
	ErrBadModulus = errors.New("modsolve: modulus must be at least 2")
	// ErrDimensionMismatch indicates a non-square matrix or a target vector
	// whose length differs from the matrix size.
	ErrDimensionMismatch = errors.New("modsolve: matrix and vector dimensions must agree")
	// ErrNoInverse indicates a pivot with no multiplicative inverse modulo m.
	ErrNoInverse = errors.New("modsolve: pivot is not invertible modulo m")
	// ErrInconsistent indicates an all-zero row with a non-zero target:
	// the system has no solution.
	ErrInconsistent = errors.New("modsolve: system is inconsistent")
)
