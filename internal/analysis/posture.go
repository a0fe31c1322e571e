package analysis

import (
	"time"

	"FATIGUE_MONITOR/go-backend/internal/geometry"
	"FATIGUE_MONITOR/go-backend/internal/landmarks"
	"FATIGUE_MONITOR/go-backend/internal/models"
)

// PostureConfig holds the posture analyzer tunables. Angles are degrees.
type PostureConfig struct {
	HeadDownDeg       float64       // pitch above this is head-down
	HeadUpDeg         float64       // pitch below this (negative) is head-up
	SustainAfter      time.Duration // continuous bad posture this long is a condition
	FailureResetAfter int           // consecutive solve failures before sustain resets
}

// PostureAnalyzer estimates head pitch/yaw/roll by fitting the canonical
// face model to six landmark points and tracks sustained head-down and
// head-up posture. Not safe for concurrent use.
type PostureAnalyzer struct {
	cfg PostureConfig

	state        string
	sustainedFor time.Duration
	failures     int // consecutive solve failures with a face present

	lastTS time.Time
	gapped bool

	last models.PostureSnapshot
}

func NewPostureAnalyzer(cfg PostureConfig) *PostureAnalyzer {
	return &PostureAnalyzer{
		cfg:   cfg,
		state: models.PostureUnknown,
		last:  models.PostureSnapshot{State: models.PostureUnknown},
	}
}

func (a *PostureAnalyzer) classify(pitch float64) string {
	switch {
	case pitch > a.cfg.HeadDownDeg:
		return models.PostureHeadDown
	case pitch < a.cfg.HeadUpDeg:
		return models.PostureHeadUp
	default:
		return models.PostureNormal
	}
}

// Update processes one frame. A nil set pauses the sustain timer and returns
// the previous snapshot. A failed pose solve with a face present carries the
// last pose forward; after FailureResetAfter consecutive failures the sustain
// state resets to unknown rather than ride a stale pose into an alert.
func (a *PostureAnalyzer) Update(set *landmarks.Set, frameWidth, frameHeight int, now time.Time) models.PostureSnapshot {
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

	pts := set.PixelPoints(landmarks.PosePoints[:], frameWidth, frameHeight)
	// Focal length approximated by the frame width, principal point at the
	// frame center. Good enough for pitch thresholds of several degrees.
	focal := float64(frameWidth)
	cx := float64(frameWidth) / 2
	cy := float64(frameHeight) / 2

	var observed [6]geometry.Point2
	copy(observed[:], pts)

	rvec, _, ok := solvePnP(observed, focal, cx, cy)
	if !ok {
		a.failures++
		if a.failures >= a.cfg.FailureResetAfter {
			a.state = models.PostureUnknown
			a.sustainedFor = 0
			a.last.State = models.PostureUnknown
			a.last.Sustained = false
			a.last.SustainedSeconds = 0
		}
		// Carry the last pose; the sustain timer does not advance on
		// frames without a solve.
		a.gapped = true
		a.last.SolveOK = false
		return a.last
	}
	a.failures = 0

	pitch, yaw, roll := eulerAngles(rvec)
	state := a.classify(pitch)

	if state == a.state && state != models.PostureNormal && state != models.PostureUnknown {
		a.sustainedFor += dt
	} else if state != a.state {
		a.sustainedFor = 0
	}
	a.state = state

	snap := models.PostureSnapshot{
		Pitch:            pitch,
		Yaw:              yaw,
		Roll:             roll,
		State:            state,
		Sustained:        state != models.PostureNormal && state != models.PostureUnknown && a.sustainedFor >= a.cfg.SustainAfter,
		SustainedSeconds: a.sustainedFor.Seconds(),
		SolveOK:          true,
	}
	a.last = snap
	return snap
}

// Reset clears all accumulated state for a fresh session.
func (a *PostureAnalyzer) Reset() {
	a.state = models.PostureUnknown
	a.sustainedFor = 0
	a.failures = 0
	a.lastTS = time.Time{}
	a.gapped = false
	a.last = models.PostureSnapshot{State: models.PostureUnknown}
}
