// Package hexboard builds hexagonal press topologies; see doc.go for the
// full contract.
package hexboard

import (
	"math"
	"sort"
)

// Build constructs the topology of a hexagon with the given radius.
// The result is freshly allocated and independent of any cached instance;
// two builds of the same radius are deep-equal.
// Returns ErrNegativeRadius if radius < 0.
// Complexity: O(n log n) time, O(n) memory, n = 3·radius·(radius+1)+1.
func Build(radius int) (*Topology, error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}

	// Enumerate the axial coordinates inside the hexagon boundary.
	axials := make([]Axial, 0, cellCount(radius))
	for q := -radius; q <= radius; q++ {
		lo := max(-radius, -q-radius)
		hi := min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			axials = append(axials, Axial{Q: q, R: r})
		}
	}

	// Project every coordinate to offset space and normalize the minimum
	// row and column to zero.
	offs := make([]Offset, len(axials))
	minRow, minCol := math.MaxInt, math.MaxInt
	for i, a := range axials {
		o := a.offset()
		offs[i] = o
		if o.Row < minRow {
			minRow = o.Row
		}
		if o.Col < minCol {
			minCol = o.Col
		}
	}
	for i := range offs {
		offs[i].Row -= minRow
		offs[i].Col -= minCol
	}

	// Rank tiles by (column, row) to fix the dense index order.
	order := make([]int, len(offs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool {
		a, b := offs[order[x]], offs[order[y]]
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		return a.Row < b.Row
	})

	n := len(order)
	top := &Topology{
		Radius:    radius,
		Tiles:     n,
		Adjacency: make([][]int, n),
		Offsets:   make([]Offset, n),
		Axials:    make([]Axial, n),
		Index:     make(map[Offset]int, n),
		Render:    make([]Slot, n),
	}
	byAxial := make(map[Axial]int, n)
	for tile, i := range order {
		top.Offsets[tile] = offs[i]
		top.Axials[tile] = axials[i]
		top.Index[offs[i]] = tile
		byAxial[axials[i]] = tile
	}

	// Adjacency: the tile itself plus every in-bounds axial neighbor.
	for tile, a := range top.Axials {
		affected := make([]int, 1, 1+len(Directions))
		affected[0] = tile
		for _, d := range Directions {
			if nb, ok := byAxial[Axial{Q: a.Q + d.Q, R: a.R + d.R}]; ok {
				affected = append(affected, nb)
			}
		}
		sort.Ints(affected)
		top.Adjacency[tile] = affected
	}

	// Render slots. Normalized columns are contiguous, so the column slot is
	// the column itself; the row slot counts tiles from the top of the column.
	colTop := make(map[int]int, 2*radius+1)
	for _, o := range top.Offsets {
		if first, ok := colTop[o.Col]; !ok || o.Row < first {
			colTop[o.Col] = o.Row
		}
	}
	for tile, o := range top.Offsets {
		top.Render[tile] = Slot{Col: o.Col, Row: o.Row - colTop[o.Col]}
		if o.Col+1 > top.Columns {
			top.Columns = o.Col + 1
		}
	}

	return top, nil
}

// offset projects an axial coordinate to offset space: the column is q, the
// row folds every second column down by half.
func (a Axial) offset() Offset {
	return Offset{Row: a.R + floorDiv(a.Q, 2), Col: a.Q}
}

// floorDiv divides a by b rounding toward negative infinity. Go's integer
// division truncates toward zero, which would misplace tiles in columns with
// negative q.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// cellCount returns the number of tiles in a hexagon of the given radius,
// the centered hexagonal number 3·r·(r+1)+1.
func cellCount(radius int) int {
	return 3*radius*(radius+1) + 1
}
