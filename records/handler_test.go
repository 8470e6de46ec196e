package records

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerBestTime(t *testing.T) {
	s := NewMemoryStore()
	h := NewHandler(s)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/best", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got bestResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.False(t, got.HasBest)

	require.NoError(t, s.SetBestTime(33.3))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/best", nil))
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.HasBest)
	assert.InDelta(t, 33.3, got.BestTime, 1e-9)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHandlerResults(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SaveResult(Result{ID: "a", Time: 40}))
	require.NoError(t, s.SaveResult(Result{ID: "b", Time: 38}))
	h := NewHandler(s)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results?limit=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestHandlerResultsEmptyIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(NewMemoryStore()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandlerRejectsBadLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(NewMemoryStore()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerRejectsWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(NewMemoryStore()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/best", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
