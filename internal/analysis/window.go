package analysis

import "time"

// stateSample is one duration-weighted observation in a StateWindow. dt is
// the wall-clock interval the sample covers (the time since the previous
// counted sample); samples recorded immediately after a gap carry dt = 0 so
// time the analyzer could not observe is never attributed to either state.
type stateSample struct {
	t      time.Time
	closed bool
	dt     time.Duration
}

// StateWindow is a sliding window of duration-weighted boolean samples used
// for PERCLOS. Eviction is strictly by timestamp against the trailing span,
// never by sample count, so the result is stable under variable frame rates.
type StateWindow struct {
	span    time.Duration
	samples []stateSample
}

func NewStateWindow(span time.Duration) *StateWindow {
	return &StateWindow{span: span}
}

// Add records a sample at t covering dt of observed time. Samples must be
// added in non-decreasing timestamp order.
func (w *StateWindow) Add(t time.Time, closed bool, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	w.samples = append(w.samples, stateSample{t: t, closed: closed, dt: dt})
	w.evict(t)
}

func (w *StateWindow) evict(now time.Time) {
	cutoff := now.Add(-w.span)
	i := 0
	for i < len(w.samples) && w.samples[i].t.Before(cutoff) {
		i++
	}
	if i > 0 {
		w.samples = w.samples[i:]
	}
}

// ClosedFraction returns observed closed time divided by total observed time
// within the window. Returns 0 when nothing has been observed.
func (w *StateWindow) ClosedFraction() float64 {
	var closed, total time.Duration
	for _, s := range w.samples {
		total += s.dt
		if s.closed {
			closed += s.dt
		}
	}
	if total == 0 {
		return 0
	}
	return closed.Seconds() / total.Seconds()
}

// Len reports the number of retained samples.
func (w *StateWindow) Len() int {
	return len(w.samples)
}

// EventWindow counts discrete events (blinks) in a trailing span.
type EventWindow struct {
	span   time.Duration
	events []time.Time
}

func NewEventWindow(span time.Duration) *EventWindow {
	return &EventWindow{span: span}
}

// Add records an event at t. Events must arrive in non-decreasing order.
func (w *EventWindow) Add(t time.Time) {
	w.events = append(w.events, t)
	w.evict(t)
}

// Count returns the number of events within the trailing span ending at now.
func (w *EventWindow) Count(now time.Time) int {
	w.evict(now)
	return len(w.events)
}

func (w *EventWindow) evict(now time.Time) {
	cutoff := now.Add(-w.span)
	i := 0
	for i < len(w.events) && w.events[i].Before(cutoff) {
		i++
	}
	if i > 0 {
		w.events = w.events[i:]
	}
}
