// Package visualizer renders a self-contained HTML page for inspecting a
// hexagon board topology.
//
// What:
//
//   - The page draws every tile in its column layout; clicking a tile
//     highlights the tiles a press would advance.
//   - The embedded adjacency and render maps are the exact structures the
//     solver uses, so the page doubles as a visual check of the topology.
//   - At radius 3 the page carries a small self-test report comparing the
//     embedded adjacency of three tiles against known-good fixtures, each
//     drawn as a 5x5 mini grid.
//
// The output is a single file with no external assets, suitable for
// opening straight from disk.
package visualizer
