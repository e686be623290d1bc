package hexboard

// FloorDiv exposes floorDiv to the black-box tests; the projection fixtures
// depend on its negative-operand behavior.
var FloorDiv = floorDiv
