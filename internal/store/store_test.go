package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietstack/studypulse/internal/session"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertAndListSessions(t *testing.T) {
	db := openTestDB(t)

	start := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.Local)
	id, err := db.InsertSession(session.Record{
		StartTime:       start,
		DurationMinutes: 45,
		TagTitle:        "Physics",
		TagColor:        "#42a5f5",
		FocusScore:      82.5,
		AvgNoiseLevel:   40,
		AvgLightLevel:   310,
		PhonePickups:    2,
		Notes:           "momentum chapter",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	records, err := db.ListSessionsSince(time.Unix(0, 0))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, start.UnixMilli(), rec.StartTime.UnixMilli())
	assert.Equal(t, 45, rec.DurationMinutes)
	assert.Equal(t, "Physics", rec.TagTitle)
	assert.Equal(t, 82.5, rec.FocusScore)
	assert.Equal(t, 2, rec.PhonePickups)
	assert.Equal(t, "momentum chapter", rec.Notes)
}

func TestListSessionsSince_LowerBound(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		_, err := db.InsertSession(session.Record{
			StartTime:       base.AddDate(0, 0, i),
			DurationMinutes: 30,
			FocusScore:      70,
		})
		require.NoError(t, err)
	}

	records, err := db.ListSessionsSince(base.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Oldest first.
	require.True(t, records[0].StartTime.Before(records[1].StartTime))
}

func TestInsertSession_RejectsNonPositiveDuration(t *testing.T) {
	db := openTestDB(t)

	_, err := db.InsertSession(session.Record{
		StartTime:       time.Now(),
		DurationMinutes: 0,
	})
	assert.Error(t, err)
}

func TestDeleteSession(t *testing.T) {
	db := openTestDB(t)

	id, err := db.InsertSession(session.Record{
		StartTime:       time.Now(),
		DurationMinutes: 25,
	})
	require.NoError(t, err)

	require.NoError(t, db.DeleteSession(id))

	records, err := db.ListSessionsSince(time.Unix(0, 0))
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.Error(t, db.DeleteSession(id), "double delete should report missing id")
}

func TestCalendarEvents(t *testing.T) {
	db := openTestDB(t)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	_, err := db.InsertEvent(session.CalendarEvent{
		Start: day.Add(14 * time.Hour),
		End:   day.Add(15 * time.Hour),
		Title: "Tutoring",
	})
	require.NoError(t, err)
	_, err = db.InsertEvent(session.CalendarEvent{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(10 * time.Hour),
		Title: "Lecture",
	})
	require.NoError(t, err)
	_, err = db.InsertEvent(session.CalendarEvent{
		Start: day.AddDate(0, 0, 1).Add(9 * time.Hour),
		End:   day.AddDate(0, 0, 1).Add(10 * time.Hour),
		Title: "Other day",
	})
	require.NoError(t, err)

	events, err := db.ListEventsForDay(day)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Ordered by start time, scoped to the requested day.
	assert.Equal(t, "Lecture", events[0].Title)
	assert.Equal(t, "Tutoring", events[1].Title)
}

func TestInsertEvent_RejectsInvertedBounds(t *testing.T) {
	db := openTestDB(t)

	now := time.Now()
	_, err := db.InsertEvent(session.CalendarEvent{
		Start: now,
		End:   now.Add(-time.Hour),
		Title: "Backwards",
	})
	assert.Error(t, err)
}
