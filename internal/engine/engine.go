// Package engine coordinates schedule computation off the interactive
// path: a short-lived memo keyed by the input snapshot, deduplication of
// concurrent identical computations, and last-write-wins async delivery.
package engine

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/quietstack/studypulse/internal/planner"
)

// memoTTL is how long a computed schedule stays valid for identical input.
const memoTTL = 5 * time.Minute

// Engine caches and coordinates schedule computation. Computations are
// pure functions of their input, so entries are invalidated only by key
// mismatch or TTL expiry, never by partial update.
type Engine struct {
	group singleflight.Group

	mu   sync.Mutex
	memo map[string]memoEntry
	gen  uint64

	// now is the clock, injectable for tests.
	now func() time.Time
}

type memoEntry struct {
	sched planner.Schedule
	at    time.Time
}

// New creates an engine with an empty memo.
func New() *Engine {
	return &Engine{
		memo: make(map[string]memoEntry),
		now:  time.Now,
	}
}

// Plan computes (or returns the memoized) schedule for the input.
// Concurrent calls with the same input share one computation.
func (e *Engine) Plan(in planner.Input) planner.Schedule {
	key := planKey(in)

	e.mu.Lock()
	if entry, ok := e.memo[key]; ok && e.now().Sub(entry.at) < memoTTL {
		e.mu.Unlock()
		return entry.sched
	}
	e.mu.Unlock()

	v, _, _ := e.group.Do(key, func() (any, error) {
		sched := planner.BuildSchedule(in)
		e.mu.Lock()
		e.memo[key] = memoEntry{sched: sched, at: e.now()}
		e.mu.Unlock()
		return sched, nil
	})

	return v.(planner.Schedule)
}

// PlanAsync computes the schedule on a background goroutine and delivers
// it via deliver. Only the most recently requested computation's callback
// fires: a request superseded by a newer one is silently discarded, which
// is the engine's cancellation policy.
func (e *Engine) PlanAsync(in planner.Input, deliver func(planner.Schedule)) {
	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.mu.Unlock()

	go func() {
		sched := e.Plan(in)
		if e.latestGen(gen) {
			deliver(sched)
		}
	}()
}

// latestGen reports whether gen is still the most recent async request.
func (e *Engine) latestGen(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return gen == e.gen
}

// planKey hashes the planner input (session snapshot, events, preferences,
// date, and target) into a memo key.
func planKey(in planner.Input) string {
	h := fnv.New64a()

	fmt.Fprintf(h, "%s|%.2f|%+v|", in.Date.Format("2006-01-02"), in.TargetStudyHours, in.Prefs)
	for _, rec := range in.History {
		fmt.Fprintf(h, "r%d:%d:%d:%.1f;", rec.ID, rec.StartTime.UnixMilli(), rec.DurationMinutes, rec.FocusScore)
	}
	for _, ev := range in.Events {
		fmt.Fprintf(h, "e%d:%d:%s;", ev.Start.UnixMilli(), ev.End.UnixMilli(), ev.Title)
	}

	return fmt.Sprintf("%x", h.Sum64())
}

// Key exposes the memo key for an input, used by callers that want to
// correlate async results.
func Key(in planner.Input) string {
	return planKey(in)
}
