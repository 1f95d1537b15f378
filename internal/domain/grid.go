package domain

import (
	"fmt"
	"strings"
)

// String renders the grid one row per line, cells space-separated,
// with '*' standing in for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := g[r][c]; v == 0 {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid reads a grid from text: nine rows of nine cells, top to bottom.
// '0', '.' and '*' all mean empty; spaces, tabs and blank lines are skipped.
func ParseGrid(text string) (Grid, error) {
	var g Grid
	cells := 0
	for _, ch := range text {
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '|':
			continue
		case ch == '0' || ch == '.' || ch == '*':
			if cells >= 81 {
				return Grid{}, fmt.Errorf("%w: more than 81 cells", ErrBadGrid)
			}
			g[cells/9][cells%9] = 0
			cells++
		case ch >= '1' && ch <= '9':
			if cells >= 81 {
				return Grid{}, fmt.Errorf("%w: more than 81 cells", ErrBadGrid)
			}
			g[cells/9][cells%9] = uint8(ch - '0')
			cells++
		default:
			return Grid{}, fmt.Errorf("%w: unexpected character %q", ErrBadGrid, ch)
		}
	}
	if cells != 81 {
		return Grid{}, fmt.Errorf("%w: got %d cells, want 81", ErrBadGrid, cells)
	}
	return g, nil
}

// Check rejects grids whose values are out of range or whose givens
// already collide within a row, column or box. It distinguishes bad
// input from a genuinely unsatisfiable search.
func (g *Grid) Check() error {
	var rows, cols, boxes [9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if v > 9 {
				return fmt.Errorf("%w: value %d at (%d,%d)", ErrBadGrid, v, r, c)
			}
			bit := uint16(1) << v
			bx := (r/3)*3 + c/3
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[bx]&bit != 0 {
				return fmt.Errorf("%w: duplicate %d at (%d,%d)", ErrBadGrid, v, r, c)
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[bx] |= bit
		}
	}
	return nil
}
