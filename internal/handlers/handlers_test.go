package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FATIGUE_MONITOR/go-backend/internal/database"
	"FATIGUE_MONITOR/go-backend/internal/models"
	"FATIGUE_MONITOR/go-backend/internal/services"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, database.InitDB(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(database.CloseDB)
}

func TestSessionsEndpoint(t *testing.T) {
	setupTestDB(t)

	start := time.Now().Add(-time.Hour)
	require.NoError(t, database.CreateSession("session-old", start))
	require.NoError(t, database.EndSession("session-old", start.Add(30*time.Minute)))
	require.NoError(t, database.CreateSession("session-current", time.Now()))

	h := New(nil, nil, services.NewMetrics(), "*")
	rec := httptest.NewRecorder()
	h.Sessions(rec, httptest.NewRequest(http.MethodGet, "/api/sessions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var sessions []models.Session
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sessions))
	require.Len(t, sessions, 2)

	assert.Equal(t, "session-current", sessions[0].ID)
	assert.Equal(t, "active", sessions[0].Status)
	assert.Nil(t, sessions[0].EndTime)

	assert.Equal(t, "session-old", sessions[1].ID)
	assert.Equal(t, "completed", sessions[1].Status)
	require.NotNil(t, sessions[1].EndTime)
}

func TestSessionsEndpointRejectsBadLimit(t *testing.T) {
	setupTestDB(t)

	h := New(nil, nil, services.NewMetrics(), "*")
	rec := httptest.NewRecorder()
	h.Sessions(rec, httptest.NewRequest(http.MethodGet, "/api/sessions?limit=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsReportsLastFrameTime(t *testing.T) {
	metrics := services.NewMetrics()
	metrics.IncrementFrames()

	h := New(nil, nil, metrics, "*")
	rec := httptest.NewRecorder()
	h.Metrics(rec, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotZero(t, body["last_frame_ts"])
}
