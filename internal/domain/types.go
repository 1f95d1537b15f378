package domain

// Grid is the 9x9 cell matrix. 0 marks an empty cell, 1..9 a placed digit.
type Grid [9][9]uint8

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values Grid       `json:"board"`
	Fixed  [9][9]bool `json:"fixed,omitempty"`
}

// NewBoard freezes the non-empty cells of g as givens.
func NewBoard(g Grid) *Board {
	b := &Board{Values: g}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = g[r][c] != 0
		}
	}
	return b
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested next placement.
type Hint struct {
	Message  string      `json:"message,omitempty"`
	Cells    []CellCoord `json:"cells,omitempty"`
	Strategy string      `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
