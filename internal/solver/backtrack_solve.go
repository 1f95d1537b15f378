package solver

import (
	"context"
	"time"

	"gridpoint.io/sudoku/internal/domain"
	"gridpoint.io/sudoku/internal/ports"
)

// Solve runs a depth-first search over the empty cells, trying candidates
// 1..9 in ascending order and undoing each failed assignment before moving
// on. It works on a copy of the grid, so the caller's board is untouched
// when the search fails.
//
// Exhaustion reports domain.ErrUnsolvable; a fired context reports the
// context's error instead. The two outcomes are never conflated.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true // no empty cell left: complete and valid by invariant
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0 // roll back before the next candidate
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
