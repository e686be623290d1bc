// Package lightsout defines the difficulty catalog, solution step types,
// options, and sentinel errors for the solving facade.
package lightsout

import (
	"encoding/json"
	"errors"

	"github.com/lumigrid/lumigrid/hexboard"
)

// Sentinel errors for puzzle solving.
var (
	// ErrUnknownDifficulty indicates a difficulty label outside the catalog.
	ErrUnknownDifficulty = errors.New("lightsout: unknown difficulty")
	// ErrBoardSize indicates a board whose length differs from the
	// difficulty's tile count.
	ErrBoardSize = errors.New("lightsout: board size does not match difficulty")
	// ErrTopologyMismatch indicates an injected hexagon topology built for a
	// different radius than the difficulty requires.
	ErrTopologyMismatch = errors.New("lightsout: topology radius does not match difficulty")
)

// Difficulty selects a puzzle level: board topology, tile count, and the
// modulus tile values cycle through. Labels match the wire format exactly;
// lookups are case-sensitive.
type Difficulty string

// The closed difficulty catalog.
const (
	Easy   Difficulty = "easy"   // 3×3 grid, values cycle mod 4
	Medium Difficulty = "medium" // 4×4 grid, values cycle mod 4
	Hard   Difficulty = "hard"   // radius-3 hexagon, values cycle mod 2
	Expert Difficulty = "expert" // radius-3 hexagon, values cycle mod 6
)

// compositeModulus is the one catalog modulus that is not a prime power;
// systems over it dispatch to the CRT solver.
const compositeModulus = 6

// boardKind distinguishes the two supported topologies.
type boardKind int

const (
	gridKind boardKind = iota
	hexKind
)

// levelConfig fixes one difficulty's topology and ring.
type levelConfig struct {
	kind    boardKind
	size    int // grid side length, gridKind only
	radius  int // hexagon radius, hexKind only
	tiles   int // board length
	modulus int // tile cycle length
}

// levels is the closed difficulty catalog; any other label fails with
// ErrUnknownDifficulty.
var levels = map[Difficulty]levelConfig{
	Easy:   {kind: gridKind, size: 3, tiles: 9, modulus: 4},
	Medium: {kind: gridKind, size: 4, tiles: 16, modulus: 4},
	Hard:   {kind: hexKind, radius: 3, tiles: 37, modulus: 2},
	Expert: {kind: hexKind, radius: 3, tiles: 37, modulus: 6},
}

// Click identifies one pressed button in a replayed solution. Grid clicks
// marshal as a [row, col] pair and hexagon clicks as the bare tile index;
// both shapes are fixed by the board frontends.
type Click struct {
	Tile int  // dense tile index of the pressed button
	Row  int  // grid row of the button, set when Pair is true
	Col  int  // grid column of the button, set when Pair is true
	Pair bool // true on grid boards, where the wire form is [row, col]
}

// MarshalJSON emits the board-specific wire form of the click.
func (c Click) MarshalJSON() ([]byte, error) {
	if c.Pair {
		return json.Marshal([2]int{c.Row, c.Col})
	}

	return json.Marshal(c.Tile)
}

// Step is one press of a replayed solution: the click, the tiles it cycles,
// and the full board state after the press.
type Step struct {
	Click    Click `json:"click"`
	Affected []int `json:"affected_tiles"`
	Board    []int `json:"board_state"`
}

// Option configures a Solver during construction.
type Option func(*Solver)

// WithHexTopology injects a pre-built hexagon topology in place of the
// process-wide shared instance; useful for isolated tests and custom caches.
// The topology's radius must match the difficulty being solved.
func WithHexTopology(top *hexboard.Topology) Option {
	return func(s *Solver) { s.hex = top }
}
