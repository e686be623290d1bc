// Package visualizer renders an HTML inspection page for hexagon boards.
package visualizer

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/lumigrid/lumigrid/hexboard"
)

//go:embed page.tmpl
var pageFS embed.FS

// The page embeds generated JSON verbatim inside its script block, so it is
// parsed as text rather than contextually escaped HTML.
var page = template.Must(template.ParseFS(pageFS, "page.tmpl"))

// selfTestRadius is the board size the fixture expectations were derived
// for; other radii render the page without the self-test report.
const selfTestRadius = 3

// selfTests holds hand-checked press effects for three radius-3 tiles:
// the center, a corner, and a lower edge tile.
var selfTests = map[int]testCase{
	18: {Expected: []int{11, 12, 17, 18, 19, 24, 25}},
	32: {Expected: []int{26, 27, 31, 32, 36}},
	21: {Expected: []int{14, 20, 21, 27}},
}

type testCase struct {
	Expected []int `json:"expected"`
}

// pageData carries the pre-marshaled topology blobs into the template.
type pageData struct {
	Radius    int
	Tiles     int
	Columns   int
	Adjacency string
	Render    string
	TestCases string
}

// Render writes the inspection page for top to w.
func Render(w io.Writer, top *hexboard.Topology) error {
	adjacency := make(map[int][]int, top.Tiles)
	for i, affected := range top.Adjacency {
		adjacency[i] = affected
	}
	slots := make(map[int][2]int, top.Tiles)
	for i, slot := range top.Render {
		slots[i] = [2]int{slot.Col, slot.Row}
	}
	cases := map[int]testCase{}
	if top.Radius == selfTestRadius {
		cases = selfTests
	}

	data := pageData{
		Radius:  top.Radius,
		Tiles:   top.Tiles,
		Columns: top.Columns,
	}
	var err error
	if data.Adjacency, err = marshal(adjacency); err != nil {
		return fmt.Errorf("Render: adjacency: %w", err)
	}
	if data.Render, err = marshal(slots); err != nil {
		return fmt.Errorf("Render: slots: %w", err)
	}
	if data.TestCases, err = marshal(cases); err != nil {
		return fmt.Errorf("Render: test cases: %w", err)
	}

	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	return nil
}

func marshal(v any) (string, error) {
	blob, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(blob), nil
}
