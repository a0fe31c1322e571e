package alerts

import (
	"log"
	"sort"
	"time"

	"FATIGUE_MONITOR/go-backend/internal/models"
)

// Coordinator evaluates each frame's snapshot against the alert conditions
// and dispatches due alerts to every registered channel. Each condition has
// its own cooldown clock; a condition that stays true re-fires only after
// the cooldown elapses. Not safe for concurrent use; the pipeline calls
// Evaluate from its single loop goroutine.
type Coordinator struct {
	cooldown  time.Duration
	notifiers []Notifier

	lastFired map[string]time.Time
}

func NewCoordinator(cooldown time.Duration, notifiers ...Notifier) *Coordinator {
	return &Coordinator{
		cooldown:  cooldown,
		notifiers: notifiers,
		lastFired: make(map[string]time.Time),
	}
}

// activeConditions derives the condition set from one snapshot.
func activeConditions(s *models.MetricSnapshot) []string {
	var out []string
	if s.Fatigue.MicrosleepActive {
		out = append(out, CondFatigueMicrosleep)
	}
	if s.Fatigue.PerclosHigh {
		out = append(out, CondFatigueHighPerclos)
	}
	if s.Fatigue.BlinkRateLow {
		out = append(out, CondFatigueLowBlink)
	}
	if s.Fatigue.BlinkRateHigh {
		out = append(out, CondFatigueHighBlink)
	}
	if s.Distance.TooClose {
		out = append(out, CondDistanceTooClose)
	}
	if s.Posture.Sustained {
		switch s.Posture.State {
		case models.PostureHeadDown:
			out = append(out, CondPostureHeadDown)
		case models.PostureHeadUp:
			out = append(out, CondPostureHeadUp)
		}
	}
	return out
}

// Evaluate records the active conditions on the snapshot, dispatches the
// ones outside their cooldown (highest severity first) and returns the
// alerts that were dispatched this frame.
func (c *Coordinator) Evaluate(s *models.MetricSnapshot, now time.Time) []models.Alert {
	active := activeConditions(s)
	s.ActiveAlerts = active

	var due []models.Alert
	for _, cond := range active {
		if last, ok := c.lastFired[cond]; ok && now.Sub(last) < c.cooldown {
			continue
		}
		c.lastFired[cond] = now
		due = append(due, NewAlert(cond, now))
	}
	if len(due) == 0 {
		return nil
	}

	sort.SliceStable(due, func(i, j int) bool {
		return severityRank[due[i].Severity] > severityRank[due[j].Severity]
	})

	for _, alert := range due {
		c.dispatch(alert)
	}
	return due
}

// dispatch fans one alert out to every channel. A failing channel is logged
// and never prevents delivery to the others.
func (c *Coordinator) dispatch(alert models.Alert) {
	for _, n := range c.notifiers {
		if err := n.Notify(alert); err != nil {
			log.Printf("alert channel %T failed for %s: %v", n, alert.Condition, err)
		}
	}
}

// Reset clears all cooldown state for a fresh session.
func (c *Coordinator) Reset() {
	c.lastFired = make(map[string]time.Time)
}
