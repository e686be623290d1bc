package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lumigrid/lumigrid/lightsout"
)

var (
	solveDifficulty string
	solveBoardFile  string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a board and print the press sequence",
		Long: `Solve a board and print the press sequence as JSON.

The board is read from --board (a file path) or from standard input,
either as a flat array ([0,0,0,...]) or row by row ([[0,0,0],...]).

Examples:
  echo '[0,0,0,0,0,0,0,0,0]' | lumigrid solve --difficulty easy
  lumigrid solve --difficulty expert --board board.json`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveDifficulty, "difficulty", "d", string(lightsout.Easy), "Difficulty label: easy|medium|hard|expert")
	solveCmd.Flags().StringVarP(&solveBoardFile, "board", "b", "", "Board JSON file (defaults to stdin)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var src io.Reader = cmd.InOrStdin()
	if solveBoardFile != "" {
		f, err := os.Open(solveBoardFile)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		defer f.Close()
		src = f
	}

	board, err := readBoard(src)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	log.WithFields(logrus.Fields{"difficulty": solveDifficulty, "tiles": len(board)}).Debug("board loaded")

	steps, err := lightsout.New().Solve(board, lightsout.Difficulty(solveDifficulty))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(steps)
}

// readBoard decodes a board given either flat or as rows.
func readBoard(src io.Reader) ([]int, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	var flat []int
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat, nil
	}
	var rows [][]int
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("board must be a JSON array of tiles or rows: %w", err)
	}
	return lightsout.Flatten(rows), nil
}
