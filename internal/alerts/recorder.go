package alerts

import (
	"FATIGUE_MONITOR/go-backend/internal/database"
	"FATIGUE_MONITOR/go-backend/internal/models"
)

// Recorder persists every dispatched alert to the alert_events table, tagged
// with the current session.
type Recorder struct {
	sessionID string
}

func NewRecorder(sessionID string) *Recorder {
	return &Recorder{sessionID: sessionID}
}

func (r *Recorder) Notify(alert models.Alert) error {
	return database.InsertAlertEvent(r.sessionID, alert)
}
