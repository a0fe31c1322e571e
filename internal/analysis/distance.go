package analysis

import (
	"time"

	"FATIGUE_MONITOR/go-backend/internal/geometry"
	"FATIGUE_MONITOR/go-backend/internal/landmarks"
	"FATIGUE_MONITOR/go-backend/internal/models"
)

// DistanceConfig holds the screen-distance estimator tunables. The physical
// constants are average adult face measurements; the focal length is the
// camera calibration in pixels.
type DistanceConfig struct {
	FaceWidthCM    float64       // real face width matched against the bbox estimate
	EyeDistCM      float64       // real inter-pupillary distance
	FocalPx        float64       // camera focal length in pixels
	SmoothingAlpha float64       // EMA weight for the newest combined estimate
	TooCloseCM     float64       // proximity threshold
	SustainAfter   time.Duration // continuous proximity this long is a condition
}

// DistanceAnalyzer estimates the face-to-camera distance from the landmark
// set using two pinhole-model estimators and reports sustained proximity.
// Not safe for concurrent use.
type DistanceAnalyzer struct {
	cfg DistanceConfig

	smoothed     float64 // EMA of the combined estimate, 0 until the first sample
	sustainedFor time.Duration

	lastTS time.Time
	gapped bool

	last models.DistanceSnapshot
}

func NewDistanceAnalyzer(cfg DistanceConfig) *DistanceAnalyzer {
	return &DistanceAnalyzer{cfg: cfg}
}

// estimateBBox applies the pinhole model to the landmark bounding-box width.
func (a *DistanceAnalyzer) estimateBBox(set *landmarks.Set, frameWidth int) float64 {
	bboxPx := set.BBoxWidthPx(frameWidth)
	if bboxPx <= 0 {
		return 0
	}
	return a.cfg.FaceWidthCM * a.cfg.FocalPx / bboxPx
}

// estimateEyes applies the pinhole model to the pixel distance between the
// two eye centers, each the centroid of that eye's six contour points.
func (a *DistanceAnalyzer) estimateEyes(set *landmarks.Set, frameWidth, frameHeight int) float64 {
	left := geometry.Centroid2(set.PixelPoints(landmarks.LeftEye[:], frameWidth, frameHeight))
	right := geometry.Centroid2(set.PixelPoints(landmarks.RightEye[:], frameWidth, frameHeight))
	eyePx := geometry.Dist2(left, right)
	if eyePx <= 0 {
		return 0
	}
	return a.cfg.EyeDistCM * a.cfg.FocalPx / eyePx
}

// Update processes one frame. A nil set pauses the proximity timer and
// returns the previous snapshot unchanged; the EMA is never fed during gaps.
func (a *DistanceAnalyzer) Update(set *landmarks.Set, frameWidth, frameHeight int, now time.Time) models.DistanceSnapshot {
	if set == nil {
		a.gapped = true
		return a.last
	}

	var dt time.Duration
	if !a.lastTS.IsZero() && !a.gapped {
		dt = now.Sub(a.lastTS)
	}
	a.lastTS = now
	a.gapped = false

	rawBBox := a.estimateBBox(set, frameWidth)
	rawEyes := a.estimateEyes(set, frameWidth, frameHeight)

	// Mean of whichever estimators produced a value this frame. Degenerate
	// geometry (zero pixel span) drops that estimator for the frame.
	var combined float64
	switch {
	case rawBBox > 0 && rawEyes > 0:
		combined = (rawBBox + rawEyes) / 2
	case rawBBox > 0:
		combined = rawBBox
	case rawEyes > 0:
		combined = rawEyes
	default:
		// No usable estimate; treat like a gap for the timer.
		a.gapped = true
		return a.last
	}

	if a.smoothed == 0 {
		a.smoothed = combined
	} else {
		a.smoothed = a.cfg.SmoothingAlpha*combined + (1-a.cfg.SmoothingAlpha)*a.smoothed
	}

	if a.smoothed < a.cfg.TooCloseCM {
		a.sustainedFor += dt
	} else {
		a.sustainedFor = 0
	}

	snap := models.DistanceSnapshot{
		RawBBoxCM:        rawBBox,
		RawEyeCM:         rawEyes,
		DistanceCM:       a.smoothed,
		TooClose:         a.sustainedFor >= a.cfg.SustainAfter,
		SustainedSeconds: a.sustainedFor.Seconds(),
	}
	a.last = snap
	return snap
}

// Reset clears all accumulated state for a fresh session.
func (a *DistanceAnalyzer) Reset() {
	a.smoothed = 0
	a.sustainedFor = 0
	a.lastTS = time.Time{}
	a.gapped = false
	a.last = models.DistanceSnapshot{}
}
