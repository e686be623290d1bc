package hexboard_test

import (
	"sync"
	"testing"

	"github.com/lumigrid/lumigrid/hexboard"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Build Tests
//----------------------------------------------------------------------------//

// TestBuild_NegativeRadius verifies that Build rejects radii below zero.
func TestBuild_NegativeRadius(t *testing.T) {
	_, err := hexboard.Build(-1)
	require.ErrorIs(t, err, hexboard.ErrNegativeRadius)
}

// TestBuild_RadiusZero checks the degenerate single-tile hexagon.
func TestBuild_RadiusZero(t *testing.T) {
	top, err := hexboard.Build(0)
	require.NoError(t, err)

	require.Equal(t, 1, top.Tiles)
	require.Equal(t, 1, top.Columns)
	require.Equal(t, [][]int{{0}}, top.Adjacency)
	require.Equal(t, []hexboard.Offset{{Row: 0, Col: 0}}, top.Offsets)
	require.Equal(t, []hexboard.Slot{{Col: 0, Row: 0}}, top.Render)
	require.Equal(t, []hexboard.Axial{{Q: 0, R: 0}}, top.Axials)
}

// TestBuild_RadiusOne walks the full 7-tile hexagon by hand: two tiles in the
// outer columns, three in the middle, center adjacent to everything.
func TestBuild_RadiusOne(t *testing.T) {
	top, err := hexboard.Build(1)
	require.NoError(t, err)

	require.Equal(t, 7, top.Tiles)
	require.Equal(t, 3, top.Columns)

	center, ok := top.Index[hexboard.Offset{Row: 1, Col: 1}]
	require.True(t, ok)
	require.Equal(t, 3, center)
	require.Equal(t, hexboard.Axial{Q: 0, R: 0}, top.Axials[center])
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, top.Adjacency[center])

	require.Equal(t, []int{0, 1, 2, 3}, top.Adjacency[0])
	require.Equal(t, []int{3, 4, 5, 6}, top.Adjacency[6])
}

// TestBuild_RadiusThree pins the production board layout: 37 tiles in seven
// columns, with the adjacency entries the board UIs are built against.
func TestBuild_RadiusThree(t *testing.T) {
	top, err := hexboard.Build(3)
	require.NoError(t, err)

	require.Equal(t, 37, top.Tiles)
	require.Equal(t, 7, top.Columns)
	require.Len(t, top.Adjacency, 37)

	// Center, edge and corner entries.
	require.Equal(t, []int{11, 12, 17, 18, 19, 24, 25}, top.Adjacency[18])
	require.Equal(t, []int{14, 20, 21, 27}, top.Adjacency[21])
	require.Equal(t, []int{26, 27, 31, 32, 36}, top.Adjacency[32])
	require.Equal(t, []int{0, 1, 4, 5}, top.Adjacency[0])
	require.Equal(t, []int{9, 15, 16, 22}, top.Adjacency[15])
	require.Equal(t, []int{31, 32, 35, 36}, top.Adjacency[36])

	// Coordinate cross-reference around the board.
	require.Equal(t, hexboard.Axial{Q: 0, R: 0}, top.Axials[18])
	require.Equal(t, hexboard.Axial{Q: -3, R: 0}, top.Axials[0])
	require.Equal(t, hexboard.Axial{Q: 3, R: 0}, top.Axials[36])
	require.Equal(t, hexboard.Offset{Row: 3, Col: 3}, top.Offsets[18])
	require.Equal(t, hexboard.Offset{Row: 1, Col: 0}, top.Offsets[0])
	require.Equal(t, hexboard.Offset{Row: 4, Col: 6}, top.Offsets[36])

	// Render slots used by the visualizer.
	require.Equal(t, hexboard.Slot{Col: 0, Row: 0}, top.Render[0])
	require.Equal(t, hexboard.Slot{Col: 3, Row: 3}, top.Render[18])
	require.Equal(t, hexboard.Slot{Col: 6, Row: 0}, top.Render[33])

	// Six corners reach three neighbors, twelve edge tiles reach four,
	// nineteen interior tiles reach six (entries include the tile itself).
	byLen := map[int]int{}
	for _, affected := range top.Adjacency {
		byLen[len(affected)]++
	}
	require.Equal(t, map[int]int{4: 6, 5: 12, 7: 19}, byLen)
}

// TestBuild_Properties asserts the structural invariants for several radii:
// self-inclusion, ascending entries, symmetry, and index consistency.
func TestBuild_Properties(t *testing.T) {
	for radius := 0; radius <= 4; radius++ {
		top, err := hexboard.Build(radius)
		require.NoError(t, err)

		require.Equal(t, 3*radius*(radius+1)+1, top.Tiles)
		require.Equal(t, 2*radius+1, top.Columns)
		require.Len(t, top.Offsets, top.Tiles)
		require.Len(t, top.Axials, top.Tiles)
		require.Len(t, top.Render, top.Tiles)
		require.Len(t, top.Index, top.Tiles)

		for tile, affected := range top.Adjacency {
			require.Contains(t, affected, tile, "tile %d must affect itself", tile)
			require.IsIncreasing(t, affected, "entry %d must be sorted", tile)
			for _, nb := range affected {
				require.Contains(t, top.Adjacency[nb], tile, "adjacency must be symmetric (%d, %d)", tile, nb)
			}
		}
		for tile, off := range top.Offsets {
			require.Equal(t, tile, top.Index[off])
		}
	}
}

// TestBuild_Deterministic confirms two independent builds agree exactly.
func TestBuild_Deterministic(t *testing.T) {
	first, err := hexboard.Build(3)
	require.NoError(t, err)
	second, err := hexboard.Build(3)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

//----------------------------------------------------------------------------//
// Shared Cache Tests
//----------------------------------------------------------------------------//

// TestShared_ReturnsSameInstance verifies the per-radius memoization.
func TestShared_ReturnsSameInstance(t *testing.T) {
	first, err := hexboard.Shared(2)
	require.NoError(t, err)
	second, err := hexboard.Shared(2)
	require.NoError(t, err)

	require.Same(t, first, second)

	other, err := hexboard.Shared(3)
	require.NoError(t, err)
	require.NotSame(t, first, other)
}

// TestShared_NegativeRadius confirms errors are not cached as entries.
func TestShared_NegativeRadius(t *testing.T) {
	_, err := hexboard.Shared(-2)
	require.ErrorIs(t, err, hexboard.ErrNegativeRadius)
}

// TestShared_Concurrent hammers the cache from many goroutines; every caller
// must observe the same instance.
func TestShared_Concurrent(t *testing.T) {
	const workers = 16
	results := make([]*hexboard.Topology, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(slot int) {
			defer wg.Done()
			top, err := hexboard.Shared(4)
			if err != nil {
				t.Error(err)

				return
			}
			results[slot] = top
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, results[0], results[i])
	}
}

//----------------------------------------------------------------------------//
// Projection Tests
//----------------------------------------------------------------------------//

// TestFloorDiv pins the floored halving against negative operands, where
// truncating division would shift every odd negative column up by one row.
func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{3, 2, 1},
		{2, 2, 1},
		{1, 2, 0},
		{0, 2, 0},
		{-1, 2, -1},
		{-2, 2, -1},
		{-3, 2, -2},
		{-4, 2, -2},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, hexboard.FloorDiv(tc.a, tc.b), "floorDiv(%d, %d)", tc.a, tc.b)
	}
}
