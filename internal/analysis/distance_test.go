package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FATIGUE_MONITOR/go-backend/internal/geometry"
	"FATIGUE_MONITOR/go-backend/internal/landmarks"
)

func testDistanceConfig() DistanceConfig {
	return DistanceConfig{
		FaceWidthCM:    14.5,
		EyeDistCM:      6.3,
		FocalPx:        600,
		SmoothingAlpha: 0.3,
		TooCloseCM:     50,
		SustainAfter:   30 * time.Second,
	}
}

// faceAtWidth builds a set whose bbox width and inter-eye pixel distance
// both correspond to the same physical distance under the pinhole model.
func faceAtWidth(distCM float64, cfg DistanceConfig, frameWidth, frameHeight int) *landmarks.Set {
	points := make([]geometry.Point3, landmarks.NumLandmarks)

	bboxPx := cfg.FaceWidthCM * cfg.FocalPx / distCM
	eyePx := cfg.EyeDistCM * cfg.FocalPx / distCM

	bboxN := bboxPx / float64(frameWidth)
	eyeN := eyePx / float64(frameWidth)

	// Everything inside the face box.
	for i := range points {
		points[i] = geometry.Point3{X: 0.5, Y: 0.5}
	}
	// Two landmarks pin the bbox width.
	points[10] = geometry.Point3{X: 0.5 - bboxN/2, Y: 0.5}
	points[11] = geometry.Point3{X: 0.5 + bboxN/2, Y: 0.5}

	// Collapse each eye contour onto its center so the centroid distance is
	// exactly the inter-eye distance.
	for _, idx := range landmarks.LeftEye {
		points[idx] = geometry.Point3{X: 0.5 - eyeN/2, Y: 0.45}
	}
	for _, idx := range landmarks.RightEye {
		points[idx] = geometry.Point3{X: 0.5 + eyeN/2, Y: 0.45}
	}

	set, err := landmarks.NewSet(points)
	if err != nil {
		panic(err)
	}
	return set
}

func TestDistanceEstimators(t *testing.T) {
	cfg := testDistanceConfig()
	a := NewDistanceAnalyzer(cfg)
	set := faceAtWidth(60, cfg, 640, 480)

	snap := a.Update(set, 640, 480, time.Now())
	assert.InDelta(t, 60, snap.RawBBoxCM, 0.5)
	assert.InDelta(t, 60, snap.RawEyeCM, 0.5)
	// First sample seeds the EMA directly.
	assert.InDelta(t, 60, snap.DistanceCM, 0.5)
	assert.False(t, snap.TooClose)
}

func TestDistanceEMAMonotonicStep(t *testing.T) {
	cfg := testDistanceConfig()
	a := NewDistanceAnalyzer(cfg)
	base := time.Now()

	far := faceAtWidth(80, cfg, 640, 480)
	near := faceAtWidth(40, cfg, 640, 480)

	a.Update(far, 640, 480, base)

	// A step change converges monotonically onto the new value.
	prev := 80.0
	for i := 1; i <= 40; i++ {
		snap := a.Update(near, 640, 480, base.Add(time.Duration(i)*100*time.Millisecond))
		require.Less(t, snap.DistanceCM, prev, "frame %d", i)
		require.Greater(t, snap.DistanceCM, 39.0, "frame %d", i)
		prev = snap.DistanceCM
	}
	assert.InDelta(t, 40, prev, 1.0)
}

func TestDistanceSustainedProximity(t *testing.T) {
	cfg := testDistanceConfig()
	a := NewDistanceAnalyzer(cfg)
	base := time.Now()
	near := faceAtWidth(40, cfg, 640, 480)

	// 29 seconds of proximity at 1fps: not sustained yet.
	var tooClose bool
	for i := 0; i <= 29; i++ {
		snap := a.Update(near, 640, 480, base.Add(time.Duration(i)*time.Second))
		tooClose = snap.TooClose
	}
	assert.False(t, tooClose)

	snap := a.Update(near, 640, 480, base.Add(30*time.Second))
	assert.True(t, snap.TooClose)
	assert.InDelta(t, 30, snap.SustainedSeconds, 0.01)
}

func TestDistanceSustainPausesOnGap(t *testing.T) {
	cfg := testDistanceConfig()
	a := NewDistanceAnalyzer(cfg)
	base := time.Now()
	near := faceAtWidth(40, cfg, 640, 480)

	for i := 0; i <= 20; i++ {
		a.Update(near, 640, 480, base.Add(time.Duration(i)*time.Second))
	}
	snap := a.Update(nil, 640, 480, base.Add(21*time.Second))
	assert.InDelta(t, 20, snap.SustainedSeconds, 0.01)

	// Face returns 40 seconds later: the unobserved time is not counted,
	// and the timer resumes instead of resetting.
	snap = a.Update(near, 640, 480, base.Add(61*time.Second))
	assert.InDelta(t, 20, snap.SustainedSeconds, 0.01)
	assert.False(t, snap.TooClose)

	snap = a.Update(near, 640, 480, base.Add(71*time.Second))
	assert.InDelta(t, 30, snap.SustainedSeconds, 0.01)
	assert.True(t, snap.TooClose)
}

func TestDistanceClearResetsSustain(t *testing.T) {
	cfg := testDistanceConfig()
	a := NewDistanceAnalyzer(cfg)
	base := time.Now()
	near := faceAtWidth(40, cfg, 640, 480)
	far := faceAtWidth(80, cfg, 640, 480)

	for i := 0; i <= 20; i++ {
		a.Update(near, 640, 480, base.Add(time.Duration(i)*time.Second))
	}
	// Far enough to pull the EMA over the threshold within a few frames.
	var snap = a.Update(far, 640, 480, base.Add(21*time.Second))
	for i := 22; snap.DistanceCM < cfg.TooCloseCM; i++ {
		snap = a.Update(far, 640, 480, base.Add(time.Duration(i)*time.Second))
	}
	assert.Equal(t, 0.0, snap.SustainedSeconds)
}
