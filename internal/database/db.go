package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"FATIGUE_MONITOR/go-backend/internal/models"
)

var DB *sql.DB

func InitDB(path string) error {
	var err error
	DB, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	if err = DB.Ping(); err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = createTables(); err != nil {
		return err
	}

	log.Println("SQLite database initialized")
	return nil
}

func createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		start_time DATETIME DEFAULT CURRENT_TIMESTAMP,
		end_time DATETIME,
		status TEXT DEFAULT 'active'
	);

	CREATE TABLE IF NOT EXISTS alert_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		condition TEXT NOT NULL,
		severity TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);

	CREATE INDEX IF NOT EXISTS idx_alert_events_session ON alert_events(session_id);
	CREATE INDEX IF NOT EXISTS idx_alert_events_created ON alert_events(created_at);
	`

	_, err := DB.Exec(schema)
	return err
}

// CreateSession inserts a new active session row.
func CreateSession(id string, start time.Time) error {
	_, err := DB.Exec(
		`INSERT INTO sessions (id, start_time, status) VALUES (?, ?, 'active')`,
		id, start,
	)
	return err
}

// EndSession marks a session completed.
func EndSession(id string, end time.Time) error {
	_, err := DB.Exec(
		`UPDATE sessions SET end_time = ?, status = 'completed' WHERE id = ?`,
		end, id,
	)
	return err
}

// InsertAlertEvent persists one dispatched alert.
func InsertAlertEvent(sessionID string, alert models.Alert) error {
	_, err := DB.Exec(
		`INSERT INTO alert_events (session_id, condition, severity, message, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sessionID, alert.Condition, alert.Severity, alert.Message, alert.Timestamp,
	)
	return err
}

// RecentSessions returns the newest monitoring sessions, most recent first.
func RecentSessions(limit int) ([]models.Session, error) {
	rows, err := DB.Query(
		`SELECT id, start_time, end_time, status
		 FROM sessions ORDER BY start_time DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var s models.Session
		var end sql.NullTime
		if err := rows.Scan(&s.ID, &s.StartTime, &end, &s.Status); err != nil {
			return nil, err
		}
		if end.Valid {
			s.EndTime = &end.Time
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// RecentAlerts returns the newest persisted alerts, most recent first.
func RecentAlerts(limit int) ([]models.AlertEvent, error) {
	rows, err := DB.Query(
		`SELECT id, session_id, condition, severity, message, created_at
		 FROM alert_events ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.AlertEvent{}
	for rows.Next() {
		var e models.AlertEvent
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Condition, &e.Severity, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("DB closed")
	}
}
