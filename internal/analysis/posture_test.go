package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FATIGUE_MONITOR/go-backend/internal/geometry"
	"FATIGUE_MONITOR/go-backend/internal/landmarks"
	"FATIGUE_MONITOR/go-backend/internal/models"
)

const (
	testFrameW = 640
	testFrameH = 480
)

func testPostureConfig() PostureConfig {
	return PostureConfig{
		HeadDownDeg:       12,
		HeadUpDeg:         -8,
		SustainAfter:      60 * time.Second,
		FailureResetAfter: 30,
	}
}

// faceAtPitch synthesizes a landmark set whose pose points are the exact
// projection of the canonical model at the given pitch, 60cm from the
// camera. The base flip and a pitch rotation share the x axis, so the
// combined rotation vector is simply (pi + pitch, 0, 0).
func faceAtPitch(pitchDeg float64) *landmarks.Set {
	rx := math.Pi + pitchDeg*math.Pi/180
	params := [6]float64{rx, 0, 0, 0, 0, 600}
	proj, ok := projectModel(params, testFrameW, testFrameW/2, testFrameH/2)
	if !ok {
		panic("projection failed")
	}

	points := make([]geometry.Point3, landmarks.NumLandmarks)
	for i, idx := range landmarks.PosePoints {
		points[idx] = geometry.Point3{
			X: proj[i].X / testFrameW,
			Y: proj[i].Y / testFrameH,
		}
	}
	set, err := landmarks.NewSet(points)
	if err != nil {
		panic(err)
	}
	return set
}

func nanFace() *landmarks.Set {
	points := make([]geometry.Point3, landmarks.NumLandmarks)
	for _, idx := range landmarks.PosePoints {
		points[idx] = geometry.Point3{X: math.NaN(), Y: math.NaN()}
	}
	set, err := landmarks.NewSet(points)
	if err != nil {
		panic(err)
	}
	return set
}

func TestEulerAnglesFrontalFace(t *testing.T) {
	// The base flip alone reads as a neutral head.
	pitch, yaw, roll := eulerAngles([3]float64{math.Pi, 0, 0})
	assert.InDelta(t, 0, pitch, 1e-6)
	assert.InDelta(t, 0, yaw, 1e-6)
	assert.InDelta(t, 0, roll, 1e-6)
}

func TestPoseSolveRecoversPitch(t *testing.T) {
	for _, want := range []float64{-20, -8.5, 0, 5, 12.5, 20} {
		rx := math.Pi + want*math.Pi/180
		proj, ok := projectModel([6]float64{rx, 0, 0, 0, 0, 600}, testFrameW, testFrameW/2, testFrameH/2)
		require.True(t, ok)

		rvec, _, ok := solvePnP(proj, testFrameW, testFrameW/2, testFrameH/2)
		require.True(t, ok, "pitch %v", want)

		pitch, yaw, _ := eulerAngles(rvec)
		assert.InDelta(t, want, pitch, 0.5, "pitch %v", want)
		assert.InDelta(t, 0, yaw, 0.5, "pitch %v", want)
	}
}

func TestPostureClassification(t *testing.T) {
	a := NewPostureAnalyzer(testPostureConfig())
	base := time.Now()

	snap := a.Update(faceAtPitch(0), testFrameW, testFrameH, base)
	require.True(t, snap.SolveOK)
	assert.Equal(t, models.PostureNormal, snap.State)

	a.Reset()
	snap = a.Update(faceAtPitch(15), testFrameW, testFrameH, base)
	assert.Equal(t, models.PostureHeadDown, snap.State)

	a.Reset()
	snap = a.Update(faceAtPitch(-11), testFrameW, testFrameH, base)
	assert.Equal(t, models.PostureHeadUp, snap.State)

	// Inside both thresholds.
	a.Reset()
	snap = a.Update(faceAtPitch(10), testFrameW, testFrameH, base)
	assert.Equal(t, models.PostureNormal, snap.State)
}

func TestPostureSustainBoundary(t *testing.T) {
	a := NewPostureAnalyzer(testPostureConfig())
	base := time.Now()
	down := faceAtPitch(15)

	var snap models.PostureSnapshot
	for i := 0; i <= 59; i++ {
		snap = a.Update(down, testFrameW, testFrameH, base.Add(time.Duration(i)*time.Second))
	}
	// 59 seconds accumulated: one short of the threshold.
	assert.False(t, snap.Sustained)
	assert.InDelta(t, 59, snap.SustainedSeconds, 0.01)

	snap = a.Update(down, testFrameW, testFrameH, base.Add(60*time.Second))
	assert.True(t, snap.Sustained)
}

func TestPostureStateChangeResetsSustain(t *testing.T) {
	a := NewPostureAnalyzer(testPostureConfig())
	base := time.Now()

	for i := 0; i <= 30; i++ {
		a.Update(faceAtPitch(15), testFrameW, testFrameH, base.Add(time.Duration(i)*time.Second))
	}
	snap := a.Update(faceAtPitch(0), testFrameW, testFrameH, base.Add(31*time.Second))
	assert.Equal(t, models.PostureNormal, snap.State)
	assert.Equal(t, 0.0, snap.SustainedSeconds)
}

func TestPostureSolveFailurePolicy(t *testing.T) {
	cfg := testPostureConfig()
	a := NewPostureAnalyzer(cfg)
	base := time.Now()

	for i := 0; i <= 20; i++ {
		a.Update(faceAtPitch(15), testFrameW, testFrameH, base.Add(time.Duration(i)*time.Second))
	}

	// A handful of failed solves carries the last pose and pauses the timer.
	var snap models.PostureSnapshot
	for i := 21; i <= 25; i++ {
		snap = a.Update(nanFace(), testFrameW, testFrameH, base.Add(time.Duration(i)*time.Second))
	}
	assert.False(t, snap.SolveOK)
	assert.Equal(t, models.PostureHeadDown, snap.State)
	assert.InDelta(t, 20, snap.SustainedSeconds, 0.01)

	// Recovery within the limit resumes the timer without a reset.
	snap = a.Update(faceAtPitch(15), testFrameW, testFrameH, base.Add(26*time.Second))
	assert.True(t, snap.SolveOK)
	assert.InDelta(t, 20, snap.SustainedSeconds, 0.01)

	// A long run of consecutive failures resets to unknown.
	for i := 0; i < cfg.FailureResetAfter; i++ {
		snap = a.Update(nanFace(), testFrameW, testFrameH, base.Add(time.Duration(27+i)*time.Second))
	}
	assert.Equal(t, models.PostureUnknown, snap.State)
	assert.Equal(t, 0.0, snap.SustainedSeconds)
}
