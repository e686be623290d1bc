package modsolve

import (
	"fmt"
)

// Composite modulus served by SolveCRT, with its coprime factorization.
const (
	crtModulus = 6
	crtFirst   = 2
	crtSecond  = 3
)

// SolveCRT solves A·x ≡ b (mod 6) by solving the mod-2 and mod-3 residue
// systems independently and recombining per variable: the result is the
// unique k in [0, 6) with k ≡ x2[i] (mod 2) and k ≡ x3[i] (mod 3).
// Both factor moduli are prime, so every elimination stays inside a field;
// either residue failure propagates with its cause wrapped.
// Complexity: two SolveMod runs plus an O(n) reconstruction.
func SolveCRT(a [][]int, b []int) ([]int, error) {
	x2, err := SolveMod(a, b, crtFirst)
	if err != nil {
		return nil, fmt.Errorf("SolveCRT: mod %d: %w", crtFirst, err)
	}
	x3, err := SolveMod(a, b, crtSecond)
	if err != nil {
		return nil, fmt.Errorf("SolveCRT: mod %d: %w", crtSecond, err)
	}

	// Recombine: scan the six candidates; the CRT guarantees exactly one hit.
	x := make([]int, len(b))
	for i := range x {
		for k := 0; k < crtModulus; k++ {
			if k%crtFirst == x2[i] && k%crtSecond == x3[i] {
				x[i] = k

				break
			}
		}
	}

	return x, nil
}
