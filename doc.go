// Package lumigrid is your in-memory engine for solving Lights-Out style
// toggle puzzles on square and hexagonal boards.
//
// 🚀 What is lumigrid?
//
//	A small, thread-safe solving engine that brings together:
//		• Board topologies: Moore-neighborhood squares & axial hexagons
//		• Modular algebra: Gauss-Jordan elimination over Z_m + a CRT recombiner
//		• Difficulty catalog: easy (3x3), medium (4x4), hard & expert (hexagon)
//		• Replay: every answer lists each press with its board snapshot
//		• Transport: an HTTP API speaking the exact wire format the boards expect
//		• Inspection: a self-contained HTML visualizer for hexagon topologies
//
// ✨ Why choose lumigrid?
//
//   - Exact answers – presses come from solving the linear system, not search
//   - Honest failures – unsolvable boards say so instead of guessing
//   - Cached topologies – hexagon boards are built once and shared
//   - Small API – one Solve call covers every difficulty
//
// Under the hood, everything is organized under flat subpackages:
//
//	gridboard/  — square boards with self-plus-eight press effects
//	hexboard/   — axial-coordinate hexagons, offsets, render slots & cache
//	modsolve/   — SolveMod (Gauss-Jordan over Z_m) & SolveCRT (mod 6)
//	lightsout/  — the difficulty catalog, Solve pipeline & press replay
//	httpapi/    —
//	visualizer/ —
//	cli/        — cobra commands: serve, solve, visualize
//
// Quick ASCII example:
//
//	    0 0 0        press        1 1 1
//	    0 0 0   ──── center ────▶ 1 1 1
//	    0 0 0                     1 1 1
//
//	one press of the center tile advances all nine tiles of a 3x3 board.
//
//	go get github.com/lumigrid/lumigrid
package lumigrid
