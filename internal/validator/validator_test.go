package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpoint.io/sudoku/internal/domain"
)

func TestValidateCleanBoard(t *testing.T) {
	var g domain.Grid
	g[0][0], g[0][1], g[1][0] = 1, 2, 3
	ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: g})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateReportsConflicts(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*domain.Grid)
	}{
		{"row", func(g *domain.Grid) { g[4][0], g[4][8] = 6, 6 }},
		{"column", func(g *domain.Grid) { g[0][7], g[8][7] = 3, 3 }},
		{"box", func(g *domain.Grid) { g[3][3], g[5][5] = 9, 9 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g domain.Grid
			tc.mut(&g)
			ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: g})
			require.NoError(t, err)
			assert.False(t, ok)
			assert.NotEmpty(t, conf)
		})
	}
}

func TestValidateIgnoresEmptyCells(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}
