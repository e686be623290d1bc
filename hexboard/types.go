// Package hexboard defines core types and sentinel errors for hexagonal
// board topologies.
package hexboard

import (
	"errors"
)

// ErrNegativeRadius indicates a requested hexagon radius below zero.
var ErrNegativeRadius = errors.New("hexboard: radius must be non-negative")

// Axial is a hexagonal tile coordinate in axial form. The implicit third
// cube coordinate S keeps the invariant Q+R+S = 0.
type Axial struct {
	Q, R int
}

// S returns the implicit third cube coordinate, -Q-R.
func (a Axial) S() int { return -a.Q - a.R }

// Directions lists the six axial neighbor deltas of a hexagonal tile.
var Directions = [6]Axial{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Offset is the projected rectangular coordinate of a tile. Offsets give
// tiles a deterministic order; adjacency is always derived in axial space.
type Offset struct {
	Row, Col int
}

// Slot is a tile's position in the column-stacked visual layout: Col selects
// the column, Row counts tiles from the top of that column.
type Slot struct {
	Col, Row int
}

// Topology is the immutable product of Build: every lookup table a solver or
// renderer needs for one hexagon radius. Treat all fields as read-only;
// instances returned by Shared are used concurrently without locking.
type Topology struct {
	Radius    int            // hexagon radius the topology was built for
	Tiles     int            // number of tiles, 3·Radius·(Radius+1)+1
	Adjacency [][]int        // Adjacency[k]: ascending tile indices affected by pressing k
	Offsets   []Offset       // tile index → normalized offset coordinate
	Axials    []Axial        // tile index → axial coordinate
	Index     map[Offset]int // normalized offset coordinate → tile index
	Render    []Slot         // tile index → visual layout slot
	Columns   int            // number of columns in the visual layout
}
