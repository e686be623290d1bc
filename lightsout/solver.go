// Package lightsout implements the puzzle solving facade over the topology
// builders and the modular solver.
package lightsout

import (
	"fmt"

	"github.com/lumigrid/lumigrid/gridboard"
	"github.com/lumigrid/lumigrid/hexboard"
	"github.com/lumigrid/lumigrid/modsolve"
)

// Solver turns boards into replayable press sequences. It holds no per-solve
// state and is safe for concurrent use.
type Solver struct {
	hex *hexboard.Topology // injected hexagon topology; nil selects the shared one
}

// New constructs a Solver with the given options.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve returns the press-by-press solution taking board to the all-ones
// state under the given difficulty.
// Blueprint:
//
//	Stage 1 (Catalog): resolve the label to topology, tile count and modulus;
//	  reject unknown labels and mismatched board lengths before any work.
//	Stage 2 (Topology): grid adjacency is rebuilt per call; hexagon adjacency
//	  comes from the injected or shared topology.
//	Stage 3 (Model): press-effects matrix A[tile][button] and target vector
//	  b[i] = (1 - board[i]) mod m.
//	Stage 4 (Solve): modulus 6 dispatches to modsolve.SolveCRT, every other
//	  level to modsolve.SolveMod.
//	Stage 5 (Replay): expand press counts into single clicks in ascending
//	  button order and snapshot the board after every press.
//
// The input board is never modified. Returns ErrUnknownDifficulty,
// ErrBoardSize, ErrTopologyMismatch, or a wrapped modsolve failure when the
// board cannot be solved.
// Complexity: O(n³) time dominated by elimination, O(n²) memory.
func (s *Solver) Solve(board []int, d Difficulty) ([]Step, error) {
	// Stage 1: difficulty catalog lookup and fail-fast validation.
	cfg, ok := levels[d]
	if !ok {
		return nil, fmt.Errorf("Solve: difficulty %q: %w", d, ErrUnknownDifficulty)
	}
	if len(board) != cfg.tiles {
		return nil, fmt.Errorf("Solve: board has %d tiles, want %d: %w", len(board), cfg.tiles, ErrBoardSize)
	}

	// Stage 2: press adjacency for the level's topology.
	adj, err := s.adjacency(cfg)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stage 3: press-effects matrix and target vector.
	a := effects(adj, cfg.tiles)
	b := make([]int, cfg.tiles)
	for i, v := range board {
		b[i] = modsolve.Mod(1-v, cfg.modulus)
	}

	// Stage 4: exact solve over the ring.
	var x []int
	if cfg.modulus == compositeModulus {
		x, err = modsolve.SolveCRT(a, b)
	} else {
		x, err = modsolve.SolveMod(a, b, cfg.modulus)
	}
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stage 5: replay the presses into verifiable steps.
	return replay(board, x, adj, cfg), nil
}

// adjacency returns the press map for the level's topology.
func (s *Solver) adjacency(cfg levelConfig) ([][]int, error) {
	if cfg.kind == gridKind {
		return gridboard.Build(cfg.size)
	}
	top := s.hex
	if top == nil {
		shared, err := hexboard.Shared(cfg.radius)
		if err != nil {
			return nil, err
		}
		top = shared
	}
	if top.Radius != cfg.radius {
		return nil, fmt.Errorf("topology radius %d, want %d: %w", top.Radius, cfg.radius, ErrTopologyMismatch)
	}

	return top.Adjacency, nil
}

// effects builds the press-effects matrix: A[tile][button] is 1 exactly when
// pressing that button cycles that tile.
func effects(adj [][]int, n int) [][]int {
	a := make([][]int, n)
	for i := range a {
		a[i] = make([]int, n)
	}
	for button, affected := range adj {
		for _, tile := range affected {
			a[tile][button] = 1
		}
	}

	return a
}

// replay applies x[button] presses per button in ascending button order,
// snapshotting the board after every single press. A press moves every
// affected tile one position along its 1..m cycle; values outside the cycle
// (the 0 of an unlit tile) land on 1 after one press.
func replay(board, x []int, adj [][]int, cfg levelConfig) []Step {
	current := append([]int(nil), board...)
	total := 0
	for _, presses := range x {
		total += presses
	}

	steps := make([]Step, 0, total)
	for button, presses := range x {
		for p := 0; p < presses; p++ {
			for _, tile := range adj[button] {
				current[tile] = modsolve.Mod(current[tile], cfg.modulus) + 1
			}
			steps = append(steps, Step{
				Click:    newClick(button, cfg),
				Affected: append([]int(nil), adj[button]...),
				Board:    append([]int(nil), current...),
			})
		}
	}

	return steps
}

// newClick renders a button index in the level's wire form.
func newClick(button int, cfg levelConfig) Click {
	if cfg.kind == gridKind {
		row, col := gridboard.Coordinate(button, cfg.size)

		return Click{Tile: button, Row: row, Col: col, Pair: true}
	}

	return Click{Tile: button}
}

// Flatten joins row-major nested rows into the flat board form Solve
// consumes. Useful at boundaries that accept either shape.
func Flatten(rows [][]int) []int {
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	flat := make([]int, 0, total)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return flat
}
