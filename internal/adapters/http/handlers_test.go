package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gridpoint.io/sudoku/internal/domain"
	"gridpoint.io/sudoku/internal/hint"
	"gridpoint.io/sudoku/internal/infrastructure/storage"
	"gridpoint.io/sudoku/internal/solver"
	"gridpoint.io/sudoku/internal/usecase"
	"gridpoint.io/sudoku/internal/validator"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	uc := usecase.NewService(
		solver.NewBacktrackingSolver(),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

var apiSample = domain.Grid{
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

func TestSolveEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/solve", solveReq{Board: apiSample})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Solvable)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.NotZero(t, resp.Board[r][c])
		}
	}
}

func TestSolveEndpointUnsolvableIsOK(t *testing.T) {
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[4][8] = 9 // blocks the last cell of row 0 via its column

	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/solve", solveReq{Board: g})
	require.Equal(t, http.StatusOK, rec.Code, "exhaustion is an answer, not an HTTP error")

	var resp solveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Solvable)
	assert.Empty(t, resp.Error)
}

func TestSolveEndpointBadGrid(t *testing.T) {
	var g domain.Grid
	g[0][0], g[0][1] = 5, 5

	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/solve", solveReq{Board: g})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolveEndpointBadJSON(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateEndpoint(t *testing.T) {
	var g domain.Grid
	g[2][2], g[2][6] = 4, 4

	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/validate", validateReq{Board: g})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp validateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestCheckEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/check", checkReq{Board: domain.Grid{}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp checkResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Unique)
}

func TestSaveLoadListEndpoints(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/save", saveReq{Board: apiSample, Name: "morning puzzle"})
	require.Equal(t, http.StatusOK, rec.Code)

	var saved saveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/load?id="+saved.ID, nil)
	lrec := httptest.NewRecorder()
	mux.ServeHTTP(lrec, req)
	require.Equal(t, http.StatusOK, lrec.Code)

	var loaded loadResp
	require.NoError(t, json.Unmarshal(lrec.Body.Bytes(), &loaded))
	require.NotNil(t, loaded.Puzzle)
	assert.Equal(t, "morning puzzle", loaded.Puzzle.Name)
	assert.Equal(t, apiSample, loaded.Puzzle.Board.Values)

	req = httptest.NewRequest(http.MethodGet, "/api/list", nil)
	lsrec := httptest.NewRecorder()
	mux.ServeHTTP(lsrec, req)
	require.Equal(t, http.StatusOK, lsrec.Code)

	var listed listResp
	require.NoError(t, json.Unmarshal(lsrec.Body.Bytes(), &listed))
	require.Len(t, listed.Puzzles, 1)
	assert.Equal(t, saved.ID, listed.Puzzles[0].ID)
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
