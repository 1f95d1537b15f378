package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gridpoint.io/sudoku/internal/domain"
)

// solveCmd solves a single puzzle and prints the result
var solveCmd = &cobra.Command{
	Use:   "solve <puzzle-file>",
	Short: "Solve a puzzle file",
	Long: `Solve reads a puzzle, prints it, runs the backtracking search and
prints the completed grid. An unsolvable puzzle is reported as such;
it is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := readGrid(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fmt.Printf("Puzzle to solve:\n%s\n", g)

	s := pickSolver(solverKind)
	out, st, err := s.Solve(ctx, domain.NewBoard(g))
	switch {
	case errors.Is(err, domain.ErrUnsolvable):
		fmt.Println("The provided puzzle is unsolvable.")
		return nil
	case err != nil:
		return fmt.Errorf("search aborted: %w", err)
	}
	fmt.Printf("Solved puzzle:\n%s\n", out.Values)
	fmt.Printf("(%d nodes, %v)\n", st.Nodes, st.Duration.Round(time.Microsecond))
	return nil
}
