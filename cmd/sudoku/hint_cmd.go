package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridpoint.io/sudoku/internal/domain"
	"gridpoint.io/sudoku/internal/hint"
)

// hintCmd suggests the next placement for a puzzle
var hintCmd = &cobra.Command{
	Use:   "hint <puzzle-file>",
	Short: "Suggest the next placement",
	Args:  cobra.ExactArgs(1),
	RunE:  runHint,
}

func runHint(cmd *cobra.Command, args []string) error {
	g, err := readGrid(args[0])
	if err != nil {
		return err
	}
	h, found, err := hint.NewSingles().Hint(cmd.Context(), domain.NewBoard(g))
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("No hint found.")
		return nil
	}
	cell := h.Cells[0]
	fmt.Printf("%s (row %d, col %d)\n", h.Message, cell.Row, cell.Col)
	return nil
}
