// Package pipeline runs the frame loop: acquire a frame, detect landmarks,
// run the analyzers, evaluate alerts and publish the snapshot.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"FATIGUE_MONITOR/go-backend/internal/alerts"
	"FATIGUE_MONITOR/go-backend/internal/analysis"
	"FATIGUE_MONITOR/go-backend/internal/landmarks"
	"FATIGUE_MONITOR/go-backend/internal/models"
	"FATIGUE_MONITOR/go-backend/internal/services"
)

// Camera contract errors. ErrNoSignal is transient: the loop waits and
// retries. ErrCameraClosed is permanent and stops the pipeline.
var (
	ErrNoSignal     = errors.New("camera: no signal")
	ErrCameraClosed = errors.New("camera: closed")
)

// Frame is one JPEG frame from the camera.
type Frame struct {
	JPEG      []byte
	Width     int
	Height    int
	Timestamp time.Time
}

// Camera supplies frames. ReadFrame blocks until a frame is available, the
// context is done, or the camera fails.
type Camera interface {
	ReadFrame(ctx context.Context) (Frame, error)
	Close() error
}

// Detector maps a frame onto a landmark set. A nil set with a nil error
// means no face in the frame.
type Detector interface {
	Detect(ctx context.Context, jpeg []byte, width, height int, ts time.Time) (*landmarks.Set, error)
}

// Publisher receives every finished snapshot, e.g. to push over WebSocket.
type Publisher func(*models.MetricSnapshot)

type Pipeline struct {
	camera      Camera
	detector    Detector
	fatigue     *analysis.FatigueAnalyzer
	distance    *analysis.DistanceAnalyzer
	posture     *analysis.PostureAnalyzer
	coordinator *alerts.Coordinator
	metrics     *services.Metrics
	publish     Publisher

	latest atomic.Pointer[models.MetricSnapshot]
}

func New(
	camera Camera,
	detector Detector,
	fatigue *analysis.FatigueAnalyzer,
	distance *analysis.DistanceAnalyzer,
	posture *analysis.PostureAnalyzer,
	coordinator *alerts.Coordinator,
	metrics *services.Metrics,
	publish Publisher,
) *Pipeline {
	return &Pipeline{
		camera:      camera,
		detector:    detector,
		fatigue:     fatigue,
		distance:    distance,
		posture:     posture,
		coordinator: coordinator,
		metrics:     metrics,
		publish:     publish,
	}
}

// Latest returns the most recently published snapshot, or nil before the
// first frame completes.
func (p *Pipeline) Latest() *models.MetricSnapshot {
	return p.latest.Load()
}

// Run drives the frame loop until the context is done or the camera closes
// permanently. Transient camera and detector errors skip the frame and are
// treated as observation gaps by the analyzers.
func (p *Pipeline) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frame, err := p.camera.ReadFrame(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			if errors.Is(err, ErrCameraClosed) {
				return fmt.Errorf("pipeline: %w", err)
			}
			p.metrics.IncrementErrors()
			log.Printf("pipeline: frame read failed: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(500 * time.Millisecond):
			}
			continue
		}
		p.metrics.IncrementFrames()

		detectStart := time.Now()
		set, err := p.detector.Detect(ctx, frame.JPEG, frame.Width, frame.Height, frame.Timestamp)
		p.metrics.RecordLatency(time.Since(detectStart))
		if err != nil {
			// The frame's state is unknown; the analyzers must see a gap,
			// not an extended interval of the previous state.
			p.metrics.IncrementErrors()
			log.Printf("pipeline: detect failed: %v", err)
			set = nil
		}

		if set != nil {
			p.metrics.IncrementFaces()
		} else {
			p.metrics.IncrementGaps()
		}

		now := frame.Timestamp
		snap := &models.MetricSnapshot{
			Timestamp:    now,
			FaceDetected: set != nil,
		}
		snap.Fatigue = p.fatigue.Update(set, frame.Width, frame.Height, now)
		snap.Distance = p.distance.Update(set, frame.Width, frame.Height, now)
		snap.Posture = p.posture.Update(set, frame.Width, frame.Height, now)

		dispatched := p.coordinator.Evaluate(snap, now)
		p.metrics.AddAlerts(len(dispatched))

		snap.HealthScore = healthScore(snap)

		p.latest.Store(snap)
		if p.publish != nil {
			p.publish(snap)
		}
	}
}

// healthScore condenses the three analyzers into a single 0-100 wellness
// number for the dashboard.
func healthScore(s *models.MetricSnapshot) int {
	score := 100
	score -= 15 * s.Fatigue.FatigueLevel
	if s.Distance.TooClose {
		score -= 10
	}
	if s.Posture.Sustained {
		score -= 10
	}
	if score < 0 {
		score = 0
	}
	return score
}
