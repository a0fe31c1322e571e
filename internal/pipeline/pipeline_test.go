package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FATIGUE_MONITOR/go-backend/internal/alerts"
	"FATIGUE_MONITOR/go-backend/internal/analysis"
	"FATIGUE_MONITOR/go-backend/internal/geometry"
	"FATIGUE_MONITOR/go-backend/internal/landmarks"
	"FATIGUE_MONITOR/go-backend/internal/models"
	"FATIGUE_MONITOR/go-backend/internal/services"
)

type fakeCamera struct {
	frames chan Frame
}

func (c *fakeCamera) ReadFrame(ctx context.Context) (Frame, error) {
	select {
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	case f, ok := <-c.frames:
		if !ok {
			return Frame{}, ErrCameraClosed
		}
		return f, nil
	}
}

func (c *fakeCamera) Close() error { return nil }

type fakeDetector struct {
	sets []*landmarks.Set
	errs []error
	call int
}

func (d *fakeDetector) Detect(ctx context.Context, jpeg []byte, width, height int, ts time.Time) (*landmarks.Set, error) {
	i := d.call
	d.call++
	var set *landmarks.Set
	var err error
	if i < len(d.sets) {
		set = d.sets[i]
	}
	if i < len(d.errs) {
		err = d.errs[i]
	}
	return set, err
}

func openFace() *landmarks.Set {
	points := make([]geometry.Point3, landmarks.NumLandmarks)
	for i := range points {
		points[i] = geometry.Point3{X: 0.5, Y: 0.5}
	}
	place := func(indices [6]int, cx float64) {
		// Pixel-space EAR ~0.33 on the 640x480 test frames.
		const halfWidth, openness = 0.03, 0.013
		third := halfWidth / 3
		points[indices[0]] = geometry.Point3{X: cx - halfWidth, Y: 0.45}
		points[indices[1]] = geometry.Point3{X: cx - third, Y: 0.45 - openness}
		points[indices[2]] = geometry.Point3{X: cx + third, Y: 0.45 - openness}
		points[indices[3]] = geometry.Point3{X: cx + halfWidth, Y: 0.45}
		points[indices[4]] = geometry.Point3{X: cx + third, Y: 0.45 + openness}
		points[indices[5]] = geometry.Point3{X: cx - third, Y: 0.45 + openness}
	}
	place(landmarks.LeftEye, 0.42)
	place(landmarks.RightEye, 0.58)

	set, err := landmarks.NewSet(points)
	if err != nil {
		panic(err)
	}
	return set
}

func newTestPipeline(cam Camera, det Detector, publish Publisher) *Pipeline {
	fatigue := analysis.NewFatigueAnalyzer(analysis.FatigueConfig{
		EARThreshold:     0.25,
		PerclosThreshold: 0.15,
		PerclosWindow:    60 * time.Second,
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
		SustainAfter:   30 * time.Second,
	})
	posture := analysis.NewPostureAnalyzer(analysis.PostureConfig{
		HeadDownDeg:       12,
		HeadUpDeg:         -8,
		SustainAfter:      60 * time.Second,
		FailureResetAfter: 30,
	})
	coordinator := alerts.NewCoordinator(300 * time.Second)
	return New(cam, det, fatigue, distance, posture, coordinator, services.NewMetrics(), publish)
}

func TestPipelinePublishesSnapshots(t *testing.T) {
	cam := &fakeCamera{frames: make(chan Frame, 4)}
	det := &fakeDetector{sets: []*landmarks.Set{openFace(), openFace(), nil}}

	base := time.Now()
	for i := 0; i < 3; i++ {
		cam.frames <- Frame{
			JPEG:      []byte{0xff, 0xd8},
			Width:     640,
			Height:    480,
			Timestamp: base.Add(time.Duration(i) * 100 * time.Millisecond),
		}
	}
	close(cam.frames)

	var published []*models.MetricSnapshot
	p := newTestPipeline(cam, det, func(s *models.MetricSnapshot) {
		published = append(published, s)
	})

	err := p.Run(context.Background())
	require.ErrorIs(t, err, ErrCameraClosed)

	require.Len(t, published, 3)
	assert.True(t, published[0].FaceDetected)
	assert.True(t, published[1].FaceDetected)
	assert.False(t, published[2].FaceDetected, "no-face frame publishes with face_detected=false")
	assert.Equal(t, published[2], p.Latest())
	assert.Equal(t, 100, published[0].HealthScore)
}

func TestPipelineStopsOnContextCancel(t *testing.T) {
	cam := &fakeCamera{frames: make(chan Frame)}
	p := newTestPipeline(cam, &fakeDetector{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err, "cancellation is a clean stop")
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline did not stop on context cancellation")
	}
}

func TestPipelineTreatsDetectorErrorAsGap(t *testing.T) {
	cam := &fakeCamera{frames: make(chan Frame, 2)}
	det := &fakeDetector{
		sets: []*landmarks.Set{openFace(), nil},
		errs: []error{nil, assert.AnError},
	}

	base := time.Now()
	cam.frames <- Frame{JPEG: []byte{1}, Width: 640, Height: 480, Timestamp: base}
	cam.frames <- Frame{JPEG: []byte{1}, Width: 640, Height: 480, Timestamp: base.Add(100 * time.Millisecond)}
	close(cam.frames)

	metrics := services.NewMetrics()
	p := newTestPipeline(cam, det, nil)
	p.metrics = metrics

	err := p.Run(context.Background())
	require.ErrorIs(t, err, ErrCameraClosed)

	snap := p.Latest()
	require.NotNil(t, snap)
	assert.False(t, snap.FaceDetected)
	assert.Equal(t, int64(1), metrics.GetTotalErrors())
	assert.Equal(t, int64(1), metrics.GetTotalGaps())
	assert.Equal(t, int64(1), metrics.GetTotalFaces())
}
