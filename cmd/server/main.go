package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"FATIGUE_MONITOR/go-backend/internal/alerts"
	"FATIGUE_MONITOR/go-backend/internal/analysis"
	"FATIGUE_MONITOR/go-backend/internal/camera"
	"FATIGUE_MONITOR/go-backend/internal/config"
	"FATIGUE_MONITOR/go-backend/internal/database"
	"FATIGUE_MONITOR/go-backend/internal/handlers"
	"FATIGUE_MONITOR/go-backend/internal/models"
	"FATIGUE_MONITOR/go-backend/internal/pipeline"
	"FATIGUE_MONITOR/go-backend/internal/services"
)

var httpServer *http.Server

func main() {
	httpPort := flag.String("http-port", "", "HTTP port (overrides env)")
	cameraURL := flag.String("camera-url", "", "MJPEG camera stream URL (overrides env)")
	detectorURL := flag.String("detector-url", "", "landmark detector gRPC address (overrides env)")
	flag.Parse()

	cfg := config.LoadConfig()
	if *httpPort != "" {
		cfg.HTTPPort = *httpPort
	}
	if *cameraURL != "" {
		cfg.CameraURL = *cameraURL
	}
	if *detectorURL != "" {
		cfg.DetectorURL = *detectorURL
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Println("Starting fatigue monitor...")
	log.Printf("HTTP port: %s", cfg.HTTPPort)
	log.Printf("Camera: %s", cfg.CameraURL)
	log.Printf("Detector: %s", cfg.DetectorURL)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := database.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.CloseDB()

	sessionID := uuid.NewString()
	if err := database.CreateSession(sessionID, time.Now()); err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	log.Printf("Session: %s", sessionID)

	detector, err := services.NewDetectorClient(cfg.DetectorURL)
	if err != nil {
		log.Fatalf("Landmark detector unavailable: %v", err)
	}
	defer detector.Close()

	cam := camera.NewClient(cfg.CameraURL)
	defer cam.Close()

	notifiers := []alerts.Notifier{
		wsAlertNotifier{},
		alerts.NewRecorder(sessionID),
	}
	if cfg.VoiceEnabled {
		notifiers = append(notifiers, alerts.NewVoiceNotifier(cfg.VoiceCommand))
	}
	var gpio *alerts.GPIONotifier
	if cfg.GPIOEnabled {
		gpio, err = alerts.NewGPIONotifier(cfg.LEDPin, cfg.BuzzerPin)
		if err != nil {
			log.Printf("GPIO unavailable, channel disabled: %v", err)
		} else {
			notifiers = append(notifiers, gpio)
			defer gpio.Close()
		}
	}

	coordinator := alerts.NewCoordinator(cfg.Cooldown(), notifiers...)

	fatigue := analysis.NewFatigueAnalyzer(analysis.FatigueConfig{
		EARThreshold:     cfg.EARThreshold,
		PerclosThreshold: cfg.PerclosThreshold,
		PerclosWindow:    cfg.PerclosWindow(),
		MicrosleepAfter:  cfg.MicrosleepAfter(),
		BlinkRateLow:     cfg.BlinkRateLow,
		BlinkRateHigh:    cfg.BlinkRateHigh,
	})
	distance := analysis.NewDistanceAnalyzer(analysis.DistanceConfig{
		FaceWidthCM:    cfg.FaceWidthCM,
		EyeDistCM:      cfg.EyeDistCM,
		FocalPx:        cfg.FocalLengthPx,
		SmoothingAlpha: cfg.DistanceAlpha,
		TooCloseCM:     cfg.TooCloseCM,
		SustainAfter:   cfg.DistanceSustain(),
	})
	posture := analysis.NewPostureAnalyzer(analysis.PostureConfig{
		HeadDownDeg:       cfg.HeadDownDeg,
		HeadUpDeg:         cfg.HeadUpDeg,
		SustainAfter:      cfg.PostureSustain(),
		FailureResetAfter: cfg.PoseFailureReset,
	})

	metrics := services.GetMetrics()
	pipe := pipeline.New(cam, detector, fatigue, distance, posture, coordinator, metrics,
		func(snap *models.MetricSnapshot) {
			wsClients.BroadcastSnapshot(snap)
		})

	pipeCtx, stopPipe := context.WithCancel(context.Background())
	pipeDone := make(chan error, 1)
	go func() {
		pipeDone <- pipe.Run(pipeCtx)
	}()

	go startHTTPServer(cfg.HTTPPort, handlers.New(pipe, detector, metrics, cfg.CORSOrigins))

	pipeExited := false
	select {
	case <-done:
		log.Println("Shutting down...")
	case err := <-pipeDone:
		pipeExited = true
		if err != nil {
			log.Printf("Pipeline stopped: %v", err)
		}
	}

	stopPipe()
	if !awaitPipelineStop(pipeDone, pipeExited, 5*time.Second) {
		log.Println("Pipeline did not stop in time")
	}

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		log.Println("Stopping HTTP server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		} else {
			log.Println("HTTP server gracefully stopped")
		}
	}

	log.Println("Closing WebSocket connections...")
	closeAllWebSocketConnections()

	if err := database.EndSession(sessionID, time.Now()); err != nil {
		log.Printf("Failed to end session: %v", err)
	}

	log.Println("Goodbye!")
}

// awaitPipelineStop waits for the pipeline goroutine after a stop request.
// A pipeline whose exit was already consumed from pipeDone needs no second
// wait; receiving again would block until the timeout.
func awaitPipelineStop(pipeDone <-chan error, alreadyExited bool, timeout time.Duration) bool {
	if alreadyExited {
		return true
	}
	select {
	case <-pipeDone:
		return true
	case <-time.After(timeout):
		return false
	}
}

func startHTTPServer(httpPort string, h *handlers.Handlers) {
	port := httpPort
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", handleWebSocket)

	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/api/metrics", h.Metrics)
	mux.HandleFunc("/api/snapshot", h.Snapshot)
	mux.HandleFunc("/api/alerts", h.Alerts)
	mux.HandleFunc("/api/sessions", h.Sessions)

	httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("HTTP server listening on port %s", port)
	log.Printf("WebSocket:  ws://localhost:%s/ws", port)
	log.Printf("REST API:   http://localhost:%s/api/*", port)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}
