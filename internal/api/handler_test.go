package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/loopgen/internal/export"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter()
}

func TestHealth(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGenerateDefaults(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/generate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var doc export.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	assert.Equal(t, 60, doc.Meta.FrameCount)
	assert.Len(t, doc.Frames, 61)

	// Omitted fluidity/softness fall back to the stock defaults:
	// fluidity 0.5 maps to zeta 1.05 over critical damping 2·sqrt(20·1).
	assert.InDelta(t, 9.391486, doc.Params.Damping, 1e-6)
	assert.InDelta(t, 0.2, doc.Params.Softness, 1e-9)
}

func TestGenerateExplicitZeroFluidity(t *testing.T) {
	router := setupRouter()

	body := `{"fluidity": 0, "softness": 0}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var doc export.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	// Explicit zeros are honored, not replaced: zeta 0.1 over critical
	// damping 2·sqrt(20·1).
	assert.InDelta(t, 0.894427, doc.Params.Damping, 1e-6)
	assert.Zero(t, doc.Params.Softness)
}

func TestGenerateCustomFrames(t *testing.T) {
	router := setupRouter()

	body := `{"frames": 24, "duration": 1.5, "radius": 40, "fluidity": 0.9}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var doc export.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	assert.Equal(t, 24, doc.Meta.FrameCount)
	assert.Len(t, doc.Frames, 25)
	assert.InDelta(t, 1.5, doc.Meta.DurationSec, 1e-9)

	// Seam closure survives serialization.
	first := doc.Frames[0]
	last := doc.Frames[len(doc.Frames)-1]
	assert.Equal(t, first.X, last.X)
	assert.Equal(t, first.Y, last.Y)
	assert.Equal(t, first.Theta, last.Theta)
}

func TestGenerateMalformedBody(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/generate", bytes.NewBufferString(`{"frames": "lots"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
