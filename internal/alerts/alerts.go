// Package alerts maps analyzer output onto alert conditions and dispatches
// them to the configured notification channels with per-condition cooldowns.
package alerts

import (
	"time"

	"FATIGUE_MONITOR/go-backend/internal/models"
)

// Alert condition types. One cooldown state machine exists per condition.
const (
	CondFatigueLowBlink    = "FATIGUE_LOW_BLINK"
	CondFatigueHighBlink   = "FATIGUE_HIGH_BLINK"
	CondFatigueHighPerclos = "FATIGUE_HIGH_PERCLOS"
	CondFatigueMicrosleep  = "FATIGUE_MICROSLEEP"
	CondDistanceTooClose   = "DISTANCE_TOO_CLOSE"
	CondPostureHeadDown    = "POSTURE_HEAD_DOWN"
	CondPostureHeadUp      = "POSTURE_HEAD_UP"
)

// Alert severities.
const (
	SeverityInfo     = "INFO"
	SeverityWarning  = "WARNING"
	SeverityCritical = "CRITICAL"
)

// severityRank orders dispatch within a frame, highest first.
var severityRank = map[string]int{
	SeverityCritical: 3,
	SeverityWarning:  2,
	SeverityInfo:     1,
}

// conditionMeta fixes the severity and spoken message for each condition.
var conditionMeta = map[string]struct {
	severity string
	message  string
}{
	CondFatigueMicrosleep:  {SeverityCritical, "Microsleep detected. Take a break."},
	CondFatigueHighPerclos: {SeverityWarning, "Your eyes are closing too often. You look tired."},
	CondFatigueLowBlink:    {SeverityInfo, "You are blinking less than usual. Rest your eyes."},
	CondFatigueHighBlink:   {SeverityInfo, "You are blinking a lot. Your eyes may be strained."},
	CondDistanceTooClose:   {SeverityWarning, "You are sitting too close to the screen."},
	CondPostureHeadDown:    {SeverityWarning, "Head down for too long. Straighten your neck."},
	CondPostureHeadUp:      {SeverityWarning, "Head tilted up for too long. Adjust your monitor."},
}

// NewAlert builds the dispatch payload for a condition.
func NewAlert(condition string, now time.Time) models.Alert {
	meta := conditionMeta[condition]
	return models.Alert{
		Condition: condition,
		Severity:  meta.severity,
		Message:   meta.message,
		Timestamp: now,
	}
}

// Notifier is one alert delivery channel. Implementations must not block
// the caller: long work (speech, pin patterns) runs on their own goroutines
// and a delivery already in progress is skipped, not queued.
type Notifier interface {
	Notify(alert models.Alert) error
}
