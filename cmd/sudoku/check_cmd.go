package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gridpoint.io/sudoku/internal/domain"
)

// checkCmd reports whether a puzzle has exactly one solution
var checkCmd = &cobra.Command{
	Use:   "check <puzzle-file>",
	Short: "Check a puzzle for a unique solution",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	s := pickSolver(solverKind)
	unique, st, err := s.Unique(ctx, domain.NewBoard(g))
	if err != nil {
		return fmt.Errorf("search aborted: %w", err)
	}
	if unique {
		fmt.Println("The puzzle has exactly one solution.")
	} else {
		fmt.Println("The puzzle does not have a unique solution.")
	}
	fmt.Printf("(%d nodes, %v)\n", st.Nodes, st.Duration.Round(time.Microsecond))
	return nil
}
