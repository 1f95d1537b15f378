package solver

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"gridpoint.io/sudoku/internal/domain"
	"gridpoint.io/sudoku/internal/validator"
)

// The worked example puzzle (0 = empty).
var sample = domain.Grid{
	{0, 0, 2, 0, 0, 8, 0, 0, 0},
	{0, 0, 0, 0, 0, 3, 7, 6, 2},
	{4, 3, 0, 0, 0, 0, 8, 0, 0},
	{0, 5, 0, 0, 3, 0, 0, 9, 0},
	{0, 4, 0, 0, 0, 0, 0, 2, 6},
	{0, 0, 0, 4, 6, 7, 0, 0, 0},
	{0, 8, 6, 7, 0, 4, 0, 0, 0},
	{0, 0, 0, 5, 1, 9, 0, 0, 8},
	{1, 7, 0, 0, 0, 6, 0, 0, 5},
}

// The lexicographically smallest completed grid: what a row-major,
// ascending-candidate search finds first on an empty board.
var firstCompletion = domain.Grid{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 1, 4, 3, 6, 5, 8, 9, 7},
	{3, 6, 5, 8, 9, 7, 2, 1, 4},
	{8, 9, 7, 2, 1, 4, 3, 6, 5},
	{5, 3, 1, 6, 4, 2, 9, 7, 8},
	{6, 4, 2, 9, 7, 8, 5, 3, 1},
	{9, 7, 8, 5, 3, 1, 6, 4, 2},
}

func TestSolveWorkedExample(t *testing.T) {
	in := domain.NewBoard(sample)
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.NotZero(t, out.Values[r][c], "unsolved cell at r=%d c=%d", r, c)
			if sample[r][c] != 0 {
				require.Equal(t, sample[r][c], out.Values[r][c], "clue altered at r=%d c=%d", r, c)
			}
		}
	}
	ok, conf, err := validator.New().Validate(ctx, out)
	require.NoError(t, err)
	require.True(t, ok, "invalid solution, conflicts=%v", conf)

	// the caller's board stays untouched
	require.Equal(t, sample, in.Values)
}

func TestSolveCompleteBoardIsIdempotent(t *testing.T) {
	in := domain.NewBoard(firstCompletion)
	out, st, err := NewBacktrackingSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	require.Zero(t, st.Nodes, "a complete board needs no search")
	require.Empty(t, cmp.Diff(firstCompletion, out.Values))
}

func TestSolveUnsolvablePreservesInput(t *testing.T) {
	g := domain.Grid{}
	g[0][0], g[0][1] = 5, 5 // same digit twice in row 0
	in := domain.NewBoard(g)

	out, _, err := NewBacktrackingSolver().Solve(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrUnsolvable)
	require.Nil(t, out)
	require.Equal(t, g, in.Values, "failed search must leave the board as given")
}

func TestSolveSingleEmptyCell(t *testing.T) {
	g := firstCompletion
	g[0][0] = 0
	out, _, err := NewBacktrackingSolver().Solve(context.Background(), domain.NewBoard(g))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(firstCompletion, out.Values))
}

func TestSolveEmptyGridSearchOrder(t *testing.T) {
	out, _, err := NewBacktrackingSolver().Solve(context.Background(), domain.NewBoard(domain.Grid{}))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(firstCompletion, out.Values),
		"row-major scan with ascending candidates must find the lexicographically smallest completion")
}

func TestSolveDeterministic(t *testing.T) {
	s := NewBacktrackingSolver()
	first, _, err := s.Solve(context.Background(), domain.NewBoard(sample))
	require.NoError(t, err)
	second, _, err := s.Solve(context.Background(), domain.NewBoard(sample))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first.Values, second.Values))
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewBacktrackingSolver().Solve(ctx, domain.NewBoard(sample))
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, domain.ErrUnsolvable, "an aborted search is not exhaustion")
}
