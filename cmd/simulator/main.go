// Simulator drives the full analysis pipeline with synthetic landmark
// frames instead of a camera and detector. Useful for exercising blink,
// microsleep, proximity and posture alerts on a dev machine.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"FATIGUE_MONITOR/go-backend/internal/alerts"
	"FATIGUE_MONITOR/go-backend/internal/analysis"
	"FATIGUE_MONITOR/go-backend/internal/geometry"
	"FATIGUE_MONITOR/go-backend/internal/landmarks"
	"FATIGUE_MONITOR/go-backend/internal/models"
	"FATIGUE_MONITOR/go-backend/internal/pipeline"
	"FATIGUE_MONITOR/go-backend/internal/services"
)

const (
	frameWidth  = 640
	frameHeight = 480
	fps         = 10
)

// Scenario phases, in order.
const (
	phaseNormal     = "normal blinking"
	phaseMicrosleep = "microsleep"
	phaseClose      = "leaning in close"
	phaseHeadDown   = "head down"
)

func phaseAt(elapsed time.Duration) string {
	switch {
	case elapsed < 20*time.Second:
		return phaseNormal
	case elapsed < 26*time.Second:
		return phaseMicrosleep
	case elapsed < 50*time.Second:
		return phaseClose
	default:
		return phaseHeadDown
	}
}

// simCamera emits empty frames at a fixed rate; the simDetector scripts the
// landmark content, so no real JPEG data is needed.
type simCamera struct {
	ticker *time.Ticker
}

func newSimCamera() *simCamera {
	return &simCamera{ticker: time.NewTicker(time.Second / fps)}
}

func (c *simCamera) ReadFrame(ctx context.Context) (pipeline.Frame, error) {
	select {
	case <-ctx.Done():
		return pipeline.Frame{}, ctx.Err()
	case <-c.ticker.C:
		return pipeline.Frame{
			JPEG:      []byte{0xff, 0xd8, 0xff, 0xd9},
			Width:     frameWidth,
			Height:    frameHeight,
			Timestamp: time.Now(),
		}, nil
	}
}

func (c *simCamera) Close() error {
	c.ticker.Stop()
	return nil
}

// simDetector synthesizes a landmark set for the scenario phase at each
// frame. Pose points are produced by projecting the canonical face model at
// a scripted pitch so the posture solver recovers the intended angle.
type simDetector struct {
	start time.Time
}

// Canonical model, same geometry the posture solver fits against.
var modelPoints = [6][3]float64{
	{0, 0, 0},
	{0, -330, -65},
	{-225, 170, -135},
	{225, 170, -135},
	{-150, -150, -125},
	{150, -150, -125},
}

// projectPose places the six pose landmarks for a head at the given pitch
// (degrees, positive down) and distance (mm from the camera).
func projectPose(pitchDeg, distMM float64) [6]geometry.Point2 {
	p := pitchDeg * math.Pi / 180
	cp, sp := math.Cos(p), math.Sin(p)
	focal := float64(frameWidth)
	cx, cy := float64(frameWidth)/2, float64(frameHeight)/2

	var out [6]geometry.Point2
	for i, m := range modelPoints {
		// Rx(pitch) in the camera frame, after the base flip that turns
		// the model toward the camera.
		x := m[0]
		y := -(cp*m[1] - sp*m[2])
		z := -(sp*m[1] + cp*m[2])

		pz := z + distMM
		out[i] = geometry.Point2{
			X: (focal*x/pz + cx) / frameWidth,
			Y: (focal*y/pz + cy) / frameHeight,
		}
	}
	return out
}

func (d *simDetector) Detect(ctx context.Context, jpeg []byte, width, height int, ts time.Time) (*landmarks.Set, error) {
	elapsed := ts.Sub(d.start)
	phase := phaseAt(elapsed)

	// Eye openness: with this layout the pixel-space EAR comes out as
	// openness*H / (halfWidth*W).
	const halfWidth = 0.030
	openness := 0.0133 // EAR ~0.33 at 640x480
	switch phase {
	case phaseNormal:
		// 200ms blink every 4 seconds.
		if elapsed%(4*time.Second) < 200*time.Millisecond {
			openness = 0.003
		}
	case phaseMicrosleep:
		openness = 0.003
	}

	pitch := 0.0
	if phase == phaseHeadDown {
		pitch = 18
	}
	dist := 600.0 // mm
	if phase == phaseClose {
		dist = 380
	}

	pose := projectPose(pitch, dist)

	points := make([]geometry.Point3, landmarks.NumLandmarks)
	// Scatter the unused landmarks inside the face box so the bounding box
	// tracks the projected face width.
	minX, maxX := pose[2].X, pose[3].X
	for i := range points {
		frac := float64(i) / float64(landmarks.NumLandmarks)
		points[i] = geometry.Point3{
			X: minX + (maxX-minX)*frac,
			Y: 0.35 + 0.3*math.Abs(math.Sin(frac*math.Pi*7)),
		}
	}

	// Pose landmarks.
	for i, idx := range landmarks.PosePoints {
		points[idx] = geometry.Point3{X: pose[i].X, Y: pose[i].Y}
	}

	// Eye contours around the projected eye corners.
	placeEye(points, landmarks.LeftEye, pose[2].X+halfWidth, pose[2].Y, halfWidth, openness)
	placeEye(points, landmarks.RightEye, pose[3].X-halfWidth, pose[3].Y, halfWidth, openness)

	return landmarks.NewSet(points)
}

// placeEye writes a six-point eye contour centered at (cx, cy) with the EAR
// point ordering the fatigue analyzer expects.
func placeEye(points []geometry.Point3, indices [6]int, cx, cy, halfWidth, openness float64) {
	third := halfWidth / 3
	points[indices[0]] = geometry.Point3{X: cx - halfWidth, Y: cy}
	points[indices[1]] = geometry.Point3{X: cx - third, Y: cy - openness}
	points[indices[2]] = geometry.Point3{X: cx + third, Y: cy - openness}
	points[indices[3]] = geometry.Point3{X: cx + halfWidth, Y: cy}
	points[indices[4]] = geometry.Point3{X: cx + third, Y: cy + openness}
	points[indices[5]] = geometry.Point3{X: cx - third, Y: cy + openness}
}

// consoleNotifier prints dispatched alerts.
type consoleNotifier struct{}

func (consoleNotifier) Notify(alert models.Alert) error {
	fmt.Printf(">>> ALERT [%s] %s: %s\n", alert.Severity, alert.Condition, alert.Message)
	return nil
}

func main() {
	duration := flag.Duration("duration", 90*time.Second, "how long to run the scenario")
	flag.Parse()

	log.Println("Starting scenario simulator...")

	// Short windows and sustains so every phase triggers within the run.
	fatigue := analysis.NewFatigueAnalyzer(analysis.FatigueConfig{
		EARThreshold:     0.25,
		PerclosThreshold: 0.15,
		PerclosWindow:    15 * time.Second,
		MicrosleepAfter:  2 * time.Second,
		BlinkRateLow:     10,
		BlinkRateHigh:    30,
	})
	distance := analysis.NewDistanceAnalyzer(analysis.DistanceConfig{
		FaceWidthCM:    14.5,
		EyeDistCM:      6.3,
		FocalPx:        600,
		SmoothingAlpha: 0.3,
		TooCloseCM:     50,
		SustainAfter:   10 * time.Second,
	})
	posture := analysis.NewPostureAnalyzer(analysis.PostureConfig{
		HeadDownDeg:       12,
		HeadUpDeg:         -8,
		SustainAfter:      15 * time.Second,
		FailureResetAfter: 30,
	})
	coordinator := alerts.NewCoordinator(20*time.Second, consoleNotifier{})

	cam := newSimCamera()
	defer cam.Close()
	det := &simDetector{start: time.Now()}

	var lastPrint time.Time
	pipe := pipeline.New(cam, det, fatigue, distance, posture, coordinator, services.GetMetrics(),
		func(snap *models.MetricSnapshot) {
			if snap.Timestamp.Sub(lastPrint) < time.Second {
				return
			}
			lastPrint = snap.Timestamp
			fmt.Printf("[%-16s] EAR=%.2f perclos=%.2f blinks=%d dist=%.0fcm pitch=%+.1f state=%s health=%d\n",
				phaseAt(snap.Timestamp.Sub(det.start)),
				snap.Fatigue.EARAvg, snap.Fatigue.Perclos, snap.Fatigue.BlinkCountTotal,
				snap.Distance.DistanceCM, snap.Posture.Pitch, snap.Posture.State,
				snap.HealthScore)
		})

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	if err := pipe.Run(ctx); err != nil {
		log.Fatalf("simulator pipeline failed: %v", err)
	}
	log.Println("Scenario complete")
}
