package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"FATIGUE_MONITOR/go-backend/internal/database"
	"FATIGUE_MONITOR/go-backend/internal/pipeline"
	"FATIGUE_MONITOR/go-backend/internal/services"
)

// HealthChecker reports whether the landmark detector sidecar is reachable.
type HealthChecker interface {
	HealthCheck() bool
}

type Handlers struct {
	pipeline *pipeline.Pipeline
	detector HealthChecker
	metrics  *services.Metrics
	origins  string
	started  time.Time
}

func New(p *pipeline.Pipeline, detector HealthChecker, metrics *services.Metrics, corsOrigins string) *Handlers {
	return &Handlers{
		pipeline: p,
		detector: detector,
		metrics:  metrics,
		origins:  corsOrigins,
		started:  time.Now(),
	}
}

func (h *Handlers) enableCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", h.origins)
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	detectorOK := h.detector != nil && h.detector.HealthCheck()

	status := "healthy"
	if !detectorOK {
		status = "degraded"
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         status,
		"detector_ok":    detectorOK,
		"active_clients": h.metrics.GetWebSocketConnections(),
		"uptime_sec":     int(time.Since(h.started).Seconds()),
		"timestamp":      time.Now().Format(time.RFC3339),
	})
}

func (h *Handlers) Metrics(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"total_frames":   h.metrics.GetTotalFrames(),
		"total_faces":    h.metrics.GetTotalFaces(),
		"total_gaps":     h.metrics.GetTotalGaps(),
		"total_errors":   h.metrics.GetTotalErrors(),
		"total_alerts":   h.metrics.GetTotalAlerts(),
		"avg_latency_ms": h.metrics.GetAvgLatency(),
		"last_frame_ts":  h.metrics.GetLastFrameTime(),
		"websocket":      h.metrics.GetWebSocketMetrics(),
		"timestamp":      time.Now().Format(time.RFC3339),
	})
}

// Snapshot serves the latest per-frame snapshot. 503 until the first frame
// has been processed.
func (h *Handlers) Snapshot(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := h.pipeline.Latest()
	if snap == nil {
		http.Error(w, "No snapshot yet", http.StatusServiceUnavailable)
		return
	}
	json.NewEncoder(w).Encode(snap)
}

// Sessions lists recent monitoring sessions, newest first.
func (h *Handlers) Sessions(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 200 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	sessions, err := database.RecentSessions(limit)
	if err != nil {
		log.Printf("Sessions query failed: %v", err)
		http.Error(w, "Failed to fetch sessions", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(sessions)
}

// Alerts lists the most recently persisted alerts, newest first.
func (h *Handlers) Alerts(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 500 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	events, err := database.RecentAlerts(limit)
	if err != nil {
		log.Printf("Alerts query failed: %v", err)
		http.Error(w, "Failed to fetch alerts", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(events)
}
