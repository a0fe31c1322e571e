// Package analysis turns per-frame landmark sets into smoothed, stateful
// fatigue, distance and posture metrics. All window and timer logic is
// wall-clock based: the analyzers never assume a fixed frame rate.
package analysis

import (
	"time"

	"FATIGUE_MONITOR/go-backend/internal/geometry"
	"FATIGUE_MONITOR/go-backend/internal/landmarks"
	"FATIGUE_MONITOR/go-backend/internal/models"
)

// Fatigue grades derived from PERCLOS, closed-eye duration and blink rate.
const (
	FatigueNone     = 0
	FatigueMild     = 1
	FatigueModerate = 2
	FatigueSevere   = 3
)

// FatigueConfig holds the fatigue analyzer tunables.
type FatigueConfig struct {
	EARThreshold     float64       // avg EAR below this counts as eyes closed
	PerclosThreshold float64       // PERCLOS above this is a fatigue condition
	PerclosWindow    time.Duration // trailing window for PERCLOS and blink rate
	MicrosleepAfter  time.Duration // continuous closure this long is a microsleep
	BlinkRateLow     int           // blinks/min below this is abnormal
	BlinkRateHigh    int           // blinks/min above this is abnormal
}

// FatigueAnalyzer computes EAR, blink statistics, PERCLOS and microsleep
// state from the eye landmark subsets. It is not safe for concurrent use;
// the pipeline calls Update from a single goroutine.
type FatigueAnalyzer struct {
	cfg FatigueConfig

	perclos *StateWindow
	blinks  *EventWindow

	blinking   bool
	closedFor  time.Duration
	blinkTotal int

	lastTS     time.Time
	gapped     bool // last frame had no usable landmark set
	started    time.Time
	sawFrame   bool // any frame observed yet
	microslept bool // current closure already crossed the microsleep threshold

	last models.FatigueSnapshot
}

func NewFatigueAnalyzer(cfg FatigueConfig) *FatigueAnalyzer {
	return &FatigueAnalyzer{
		cfg:     cfg,
		perclos: NewStateWindow(cfg.PerclosWindow),
		blinks:  NewEventWindow(cfg.PerclosWindow),
	}
}

// EAR computes the eye aspect ratio over six eye points ordered
// p1 outer corner, p2/p3 upper lid, p4 inner corner, p5/p6 lower lid:
//
//	EAR = (|p2-p6| + |p3-p5|) / (2 * |p1-p4|)
//
// A zero horizontal distance yields 0 rather than a division error.
func EAR(eye [6]geometry.Point2) float64 {
	v1 := geometry.Dist2(eye[1], eye[5])
	v2 := geometry.Dist2(eye[2], eye[4])
	h := geometry.Dist2(eye[0], eye[3])
	if h == 0 {
		return 0
	}
	return (v1 + v2) / (2 * h)
}

// eyePoints selects one eye's contour in pixel coordinates. EAR must be
// measured in pixel space: normalized coordinates divide X by the frame
// width and Y by the height, which skews the ratio on non-square frames.
func eyePoints(set *landmarks.Set, indices [6]int, frameWidth, frameHeight int) [6]geometry.Point2 {
	var out [6]geometry.Point2
	for i, idx := range indices {
		out[i] = set.PixelPoint(idx, frameWidth, frameHeight)
	}
	return out
}

// Update processes one frame. A nil set means no face was detected this
// frame: the frame is skipped entirely. No open/closed sample is recorded,
// the closed-duration timer pauses, and previously accumulated window
// contents and blink totals are preserved.
func (a *FatigueAnalyzer) Update(set *landmarks.Set, frameWidth, frameHeight int, now time.Time) models.FatigueSnapshot {
	if !a.sawFrame {
		a.started = now
		a.sawFrame = true
	}

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

	left := EAR(eyePoints(set, landmarks.LeftEye, frameWidth, frameHeight))
	right := EAR(eyePoints(set, landmarks.RightEye, frameWidth, frameHeight))
	avg := (left + right) / 2
	closed := avg < a.cfg.EARThreshold

	// Blink state machine. A closure that lasts past the microsleep
	// threshold is reported as a microsleep and is not counted as a blink
	// when the eyes reopen.
	switch {
	case closed && !a.blinking:
		a.blinking = true
		a.closedFor = 0
		a.microslept = false
	case closed && a.blinking:
		a.closedFor += dt
	case !closed && a.blinking:
		a.blinking = false
		if a.closedFor < a.cfg.MicrosleepAfter {
			a.blinkTotal++
			a.blinks.Add(now)
		}
		a.closedFor = 0
		a.microslept = false
	}
	if a.blinking && a.closedFor >= a.cfg.MicrosleepAfter {
		a.microslept = true
	}

	a.perclos.Add(now, closed, dt)
	perclos := a.perclos.ClosedFraction()

	rate := a.blinks.Count(now)
	rateValid := now.Sub(a.started) >= a.cfg.PerclosWindow
	rateLow := rateValid && rate < a.cfg.BlinkRateLow
	rateHigh := rateValid && rate > a.cfg.BlinkRateHigh

	snap := models.FatigueSnapshot{
		EARLeft:          left,
		EARRight:         right,
		EARAvg:           avg,
		EyesClosed:       closed,
		IsBlinking:       a.blinking,
		BlinkCountTotal:  a.blinkTotal,
		BlinkRatePerMin:  rate,
		BlinkRateValid:   rateValid,
		BlinkRateLow:     rateLow,
		BlinkRateHigh:    rateHigh,
		Perclos:          perclos,
		PerclosHigh:      perclos > a.cfg.PerclosThreshold,
		ClosedSeconds:    a.closedFor.Seconds(),
		MicrosleepActive: a.microslept,
	}
	snap.FatigueLevel = a.grade(snap)
	a.last = snap
	return snap
}

// grade maps the metrics onto the 0-3 fatigue scale: severe on a microsleep
// or PERCLOS above 20%, moderate on PERCLOS above the configured threshold
// or a closure past one second, mild on PERCLOS above 10% or an abnormal
// blink rate.
func (a *FatigueAnalyzer) grade(s models.FatigueSnapshot) int {
	switch {
	case s.MicrosleepActive || s.Perclos > 0.20:
		return FatigueSevere
	case s.Perclos > a.cfg.PerclosThreshold || s.ClosedSeconds > 1.0:
		return FatigueModerate
	case s.Perclos > 0.10 || s.BlinkRateLow || s.BlinkRateHigh:
		return FatigueMild
	default:
		return FatigueNone
	}
}

// Reset clears all accumulated state for a fresh session.
func (a *FatigueAnalyzer) Reset() {
	a.perclos = NewStateWindow(a.cfg.PerclosWindow)
	a.blinks = NewEventWindow(a.cfg.PerclosWindow)
	a.blinking = false
	a.closedFor = 0
	a.blinkTotal = 0
	a.lastTS = time.Time{}
	a.gapped = false
	a.sawFrame = false
	a.microslept = false
	a.last = models.FatigueSnapshot{}
}
