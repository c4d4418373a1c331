package store

import (
	"fmt"
	"time"

	"github.com/quietstack/studypulse/internal/session"
)

// dayKey formats a day for calendar event lookup.
const dayKey = "2006-01-02"

// InsertEvent persists a calendar busy block under its start day.
func (db *DB) InsertEvent(ev session.CalendarEvent) (int64, error) {
	if ev.End.Before(ev.Start) {
		return 0, fmt.Errorf("event %q ends before it starts", ev.Title)
	}

	res, err := db.conn.Exec(`
		INSERT INTO calendar_events (day, start_ms, end_ms, title)
		VALUES (?, ?, ?, ?)`,
		ev.Start.Format(dayKey), ev.Start.UnixMilli(), ev.End.UnixMilli(), ev.Title)
	if err != nil {
		return 0, fmt.Errorf("inserting event: %w", err)
	}
	return res.LastInsertId()
}

// ListEventsForDay returns the busy blocks for one target day, ordered by
// start time.
func (db *DB) ListEventsForDay(day time.Time) ([]session.CalendarEvent, error) {
	rows, err := db.conn.Query(`
		SELECT start_ms, end_ms, title
		FROM calendar_events
		WHERE day = ?
		ORDER BY start_ms ASC`,
		day.Format(dayKey))
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []session.CalendarEvent
	for rows.Next() {
		var startMs, endMs int64
		var ev session.CalendarEvent
		if err := rows.Scan(&startMs, &endMs, &ev.Title); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		ev.Start = time.UnixMilli(startMs)
		ev.End = time.UnixMilli(endMs)
		events = append(events, ev)
	}
	return events, rows.Err()
}
