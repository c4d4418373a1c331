package store

import (
	"fmt"
	"time"

	"github.com/quietstack/studypulse/internal/session"
)

// InsertSession persists a completed session and returns its row id.
func (db *DB) InsertSession(rec session.Record) (int64, error) {
	if rec.DurationMinutes <= 0 {
		return 0, fmt.Errorf("session duration must be positive, got %d", rec.DurationMinutes)
	}

	res, err := db.conn.Exec(`
		INSERT INTO sessions (started_at_ms, duration_min, tag_title, tag_color,
			focus_score, noise_level, light_level, phone_pickups, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartTime.UnixMilli(), rec.DurationMinutes, rec.TagTitle, rec.TagColor,
		rec.FocusScore, rec.AvgNoiseLevel, rec.AvgLightLevel, rec.PhonePickups, rec.Notes)
	if err != nil {
		return 0, fmt.Errorf("inserting session: %w", err)
	}
	return res.LastInsertId()
}

// ListSessionsSince returns all sessions started at or after the lower
// bound, oldest first. Finer range filtering is the analyzer's job.
func (db *DB) ListSessionsSince(lowerBound time.Time) ([]session.Record, error) {
	rows, err := db.conn.Query(`
		SELECT id, started_at_ms, duration_min, tag_title, tag_color,
			focus_score, noise_level, light_level, phone_pickups, notes
		FROM sessions
		WHERE started_at_ms >= ?
		ORDER BY started_at_ms ASC`,
		lowerBound.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var records []session.Record
	for rows.Next() {
		var rec session.Record
		var startedMs int64
		if err := rows.Scan(&rec.ID, &startedMs, &rec.DurationMinutes,
			&rec.TagTitle, &rec.TagColor, &rec.FocusScore,
			&rec.AvgNoiseLevel, &rec.AvgLightLevel, &rec.PhonePickups, &rec.Notes); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		rec.StartTime = time.UnixMilli(startedMs)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteSession removes a session by id. Deleting a missing id is an error
// so the CLI can report it.
func (db *DB) DeleteSession(id int64) error {
	res, err := db.conn.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting session %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no session with id %d", id)
	}
	return nil
}
