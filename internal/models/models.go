package models

import "time"

// FatigueSnapshot is the fatigue analyzer's per-frame output.
type FatigueSnapshot struct {
	EARLeft          float64 `json:"ear_left"`
	EARRight         float64 `json:"ear_right"`
	EARAvg           float64 `json:"ear_avg"`
	EyesClosed       bool    `json:"eyes_closed"`
	IsBlinking       bool    `json:"is_blinking"`
	BlinkCountTotal  int     `json:"blink_count_total"`
	BlinkRatePerMin  int     `json:"blink_rate_per_min"`
	BlinkRateValid   bool    `json:"blink_rate_valid"`
	BlinkRateLow     bool    `json:"blink_rate_low"`
	BlinkRateHigh    bool    `json:"blink_rate_high"`
	Perclos          float64 `json:"perclos"`
	PerclosHigh      bool    `json:"perclos_high"`
	ClosedSeconds    float64 `json:"closed_seconds"`
	MicrosleepActive bool    `json:"microsleep_active"`
	FatigueLevel     int     `json:"fatigue_level"`
}

// DistanceSnapshot is the distance estimator's per-frame output. Distances
// are in centimetres; zero means no estimate is available yet.
type DistanceSnapshot struct {
	RawBBoxCM        float64 `json:"raw_bbox_cm"`
	RawEyeCM         float64 `json:"raw_eye_cm"`
	DistanceCM       float64 `json:"distance_cm"`
	TooClose         bool    `json:"too_close"`
	SustainedSeconds float64 `json:"sustained_seconds"`
}

// Posture states reported by the posture analyzer.
const (
	PostureNormal   = "normal"
	PostureHeadDown = "head_down"
	PostureHeadUp   = "head_up"
	PostureUnknown  = "unknown"
)

// PostureSnapshot is the posture analyzer's per-frame output. Angles are in
// degrees; positive pitch means the head is tilted down.
type PostureSnapshot struct {
	Pitch            float64 `json:"pitch"`
	Yaw              float64 `json:"yaw"`
	Roll             float64 `json:"roll"`
	State            string  `json:"state"`
	Sustained        bool    `json:"sustained"`
	SustainedSeconds float64 `json:"sustained_seconds"`
	SolveOK          bool    `json:"solve_ok"`
}

// MetricSnapshot is the full per-frame snapshot handed to the presentation
// layer. ActiveAlerts lists the condition types currently above threshold,
// whether or not they are inside an alert cooldown.
type MetricSnapshot struct {
	Timestamp    time.Time        `json:"timestamp"`
	FaceDetected bool             `json:"face_detected"`
	Fatigue      FatigueSnapshot  `json:"fatigue"`
	Distance     DistanceSnapshot `json:"distance"`
	Posture      PostureSnapshot  `json:"posture"`
	ActiveAlerts []string         `json:"active_alerts"`
	HealthScore  int              `json:"health_score"`
}

// Alert is the structured payload dispatched to every alert channel.
type Alert struct {
	Condition string    `json:"condition"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// AlertEvent is a persisted alert row.
type AlertEvent struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Condition string    `json:"condition"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is one monitoring run, from process start to shutdown.
type Session struct {
	ID        string     `json:"id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `json:"status"`
}
