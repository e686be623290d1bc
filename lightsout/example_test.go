package lightsout_test

import (
	"encoding/json"
	"fmt"

	"github.com/lumigrid/lumigrid/lightsout"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solver.Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolver_Solve solves the canonical easy scenario.
// Scenario:
//
//   - A 3×3 board of unlit tiles (value 0) cycling mod 4.
//   - One press of the center button lights every tile at once.
//
// Complexity: O(n³), Memory: O(n²)
func ExampleSolver_Solve() {
	solver := lightsout.New()

	steps, _ := solver.Solve([]int{0, 0, 0, 0, 0, 0, 0, 0, 0}, lightsout.Easy)
	fmt.Println("steps:", len(steps))

	wire, _ := json.Marshal(steps[0])
	fmt.Println(string(wire))

	// Output:
	// steps: 1
	// {"click":[1,1],"affected_tiles":[0,1,2,3,4,5,6,7,8],"board_state":[1,1,1,1,1,1,1,1,1]}
}

////////////////////////////////////////////////////////////////////////////////
// Example: Flatten
////////////////////////////////////////////////////////////////////////////////

// ExampleFlatten adapts nested row input to the flat board form.
func ExampleFlatten() {
	rows := [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	board := lightsout.Flatten(rows)
	fmt.Println("tiles:", len(board))

	// Output:
	// tiles: 9
}
