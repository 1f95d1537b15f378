package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gridpoint.io/sudoku/internal/domain"
	"gridpoint.io/sudoku/internal/ports"
	"gridpoint.io/sudoku/internal/solver"
)

var (
	// Global flags
	solverKind string
	timeout    time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Backtracking Sudoku solver",
	Long: `sudoku solves, checks and serves 9x9 Sudoku puzzles.

Puzzle files contain nine rows of nine cells; 0, '.' or '*' mark an
empty cell and whitespace between cells is ignored. Pass '-' to read
the puzzle from stdin.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&solverKind, "solver", "backtrack", "search implementation: backtrack|pruned")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "abort the search after this duration (0 = no limit)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(serveCmd)
}

// pickSolver maps a config/flag value to a solver implementation.
func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "pruned":
		return solver.NewPrunedSolver()
	default:
		return solver.NewBacktrackingSolver()
	}
}

// readGrid loads and checks a puzzle from path, or stdin for "-".
func readGrid(path string) (domain.Grid, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Grid{}, err
	}
	g, err := domain.ParseGrid(string(data))
	if err != nil {
		return domain.Grid{}, err
	}
	if err := g.Check(); err != nil {
		return domain.Grid{}, err
	}
	return g, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
