package solver

import "gridpoint.io/sudoku/internal/domain"

// BacktrackingSolver is a straightforward recursive solver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers shared by Solve/Unique (in other files) ---

func validInRow(g *domain.Grid, r int, v uint8) bool {
	for c := 0; c < 9; c++ {
		if g[r][c] == v {
			return false
		}
	}
	return true
}

func validInCol(g *domain.Grid, c int, v uint8) bool {
	for r := 0; r < 9; r++ {
		if g[r][c] == v {
			return false
		}
	}
	return true
}

// validInBox checks the 3x3 box containing (r, c); the box origin is
// (r/3*3, c/3*3).
func validInBox(g *domain.Grid, r, c int, v uint8) bool {
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func isValid(g *domain.Grid, r, c int, v uint8) bool {
	return validInRow(g, r, v) && validInCol(g, c, v) && validInBox(g, r, c, v)
}

// findEmpty scans rows top to bottom, cells left to right, and returns the
// first empty cell. The scan order is a contract: together with the
// ascending candidate order it fixes which solution of a multi-solution
// puzzle is found first.
func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
