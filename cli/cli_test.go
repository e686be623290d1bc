package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumigrid/lumigrid/lightsout"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolve_FromStdin(t *testing.T) {
	out, err := runCommand(t, "[0,0,0,0,0,0,0,0,0]",
		"solve", "--difficulty", "easy", "--board=")
	require.NoError(t, err)

	var steps []struct {
		Click    json.RawMessage `json:"click"`
		Affected []int           `json:"affected_tiles"`
		Board    []int           `json:"board_state"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 1)
	require.JSONEq(t, "[1,1]", string(steps[0].Click))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, steps[0].Affected)
}

func TestSolve_FromBoardFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte("[[0,0,0],[0,0,0],[0,0,0]]"), 0o644))

	out, err := runCommand(t, "", "solve", "--difficulty", "easy", "--board", path)
	require.NoError(t, err)
	require.Contains(t, out, `"affected_tiles"`)
}

func TestSolve_UnknownDifficulty(t *testing.T) {
	_, err := runCommand(t, "[0,0,0,0,0,0,0,0,0]",
		"solve", "--difficulty", "brutal", "--board=")
	require.ErrorIs(t, err, lightsout.ErrUnknownDifficulty)
}

func TestSolve_RejectsMalformedBoard(t *testing.T) {
	_, err := runCommand(t, `"not a board"`,
		"solve", "--difficulty", "easy", "--board=")
	require.Error(t, err)
	require.Contains(t, err.Error(), "JSON array")
}

func TestVisualize_WritesPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.html")

	_, err := runCommand(t, "", "visualize", "--radius", "1", "--output", path)
	require.NoError(t, err)

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(html), "const NUM_COLS = 3;")
	require.Contains(t, string(html), "7 tiles")
}

func TestVisualize_NegativeRadius(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.html")

	_, err := runCommand(t, "", "visualize", "--radius", "-1", "--output", path)
	require.Error(t, err)
}
