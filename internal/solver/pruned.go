package solver

import (
	"context"
	"time"

	"gridpoint.io/sudoku/internal/domain"
	"gridpoint.io/sudoku/internal/ports"
)

// PrunedSolver is a backtracking solver that tracks used digits per row,
// column and box in bitmasks, turning each candidate test into three bit
// probes. It visits cells and candidates in exactly the same order as
// BacktrackingSolver, so both return the same solution for any input.
type PrunedSolver struct{}

func NewPrunedSolver() *PrunedSolver { return &PrunedSolver{} }

type masks struct {
	rows, cols, boxes [9]uint16
}

func boxOf(r, c int) int { return (r/3)*3 + c/3 }

func buildMasks(g *domain.Grid) masks {
	var m masks
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				bit := uint16(1) << v
				m.rows[r] |= bit
				m.cols[c] |= bit
				m.boxes[boxOf(r, c)] |= bit
			}
		}
	}
	return m
}

func (m *masks) free(r, c int, v uint8) bool {
	bit := uint16(1) << v
	return m.rows[r]&bit == 0 && m.cols[c]&bit == 0 && m.boxes[boxOf(r, c)]&bit == 0
}

func (m *masks) place(r, c int, v uint8) {
	bit := uint16(1) << v
	m.rows[r] |= bit
	m.cols[c] |= bit
	m.boxes[boxOf(r, c)] |= bit
}

func (m *masks) remove(r, c int, v uint8) {
	bit := uint16(1) << v
	m.rows[r] &^= bit
	m.cols[c] &^= bit
	m.boxes[boxOf(r, c)] &^= bit
}

func (s *PrunedSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	m := buildMasks(&grid)
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if m.free(r, c, v) {
				grid[r][c] = v
				m.place(r, c, v)
				if dfs() {
					return true
				}
				grid[r][c] = 0
				m.remove(r, c, v)
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrUnsolvable
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Unique counts solutions up to 2 using the same mask bookkeeping.
func (s *PrunedSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	m := buildMasks(&grid)
	nodes := 0
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if m.free(r, c, v) {
				grid[r][c] = v
				m.place(r, c, v)
				if dfs() {
					return true
				}
				grid[r][c] = 0
				m.remove(r, c, v)
			}
		}
		return false
	}
	_ = dfs()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
