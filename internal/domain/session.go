package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used for session dates
const DateLayout = "2006-01-02"

// SessionEntry records minutes practiced against one exercise.
// The entry references the exercise; it does not own it.
type SessionEntry struct {
	exercise         *Exercise
	minutesPracticed int
	averageTempoBpm  *int
	notes            *string
}

// NewSessionEntry creates an entry. tempo and notes are optional (nil when absent).
func NewSessionEntry(exercise *Exercise, minutesPracticed int, averageTempoBpm *int, notes *string) (SessionEntry, error) {
	if exercise == nil {
		return SessionEntry{}, invalidArg("exercise", "must not be nil")
	}
	if minutesPracticed <= 0 {
		return SessionEntry{}, invalidArg("minutesPracticed", "must be > 0")
	}
	if averageTempoBpm != nil && *averageTempoBpm <= 0 {
		return SessionEntry{}, invalidArg("averageTempoBpm", "must be > 0 when provided")
	}

	entry := SessionEntry{
		exercise:         exercise,
		minutesPracticed: minutesPracticed,
	}
	if averageTempoBpm != nil {
		tempo := *averageTempoBpm
		entry.averageTempoBpm = &tempo
	}
	if notes != nil {
		n := *notes
		entry.notes = &n
	}
	return entry, nil
}

// Exercise returns the exercise practiced
func (e SessionEntry) Exercise() *Exercise { return e.exercise }

// MinutesPracticed returns the minutes spent
func (e SessionEntry) MinutesPracticed() int { return e.minutesPracticed }

// AverageTempoBpm returns the recorded tempo, if any
func (e SessionEntry) AverageTempoBpm() (int, bool) {
	if e.averageTempoBpm == nil {
		return 0, false
	}
	return *e.averageTempoBpm, true
}

// Notes returns the entry notes, if any
func (e SessionEntry) Notes() (string, bool) {
	if e.notes == nil {
		return "", false
	}
	return *e.notes, true
}

// Session is a dated practice session holding an append-only list of entries
type Session struct {
	date    time.Time
	entries []SessionEntry
}

// NewSession creates an empty session for the calendar date of date.
// The time of day and location are discarded.
func NewSession(date time.Time) (*Session, error) {
	if date.IsZero() {
		return nil, invalidArg("date", "must not be zero")
	}
	return &Session{date: CalendarDate(date)}, nil
}

// Today creates an empty session for the current local date
func Today() *Session {
	s, _ := NewSession(time.Now())
	return s
}

// CalendarDate truncates t to midnight UTC of its own calendar day
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-8601 calendar date ("2025-01-01")
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Date returns the session date
func (s *Session) Date() time.Time { return s.date }

// DateString returns the session date as "YYYY-MM-DD"
func (s *Session) DateString() string { return s.date.Format(DateLayout) }

// AddEntry appends an entry. Entries are never deduplicated or reordered.
func (s *Session) AddEntry(entry *SessionEntry) error {
	if entry == nil {
		return invalidArg("entry", "must not be nil")
	}
	s.entries = append(s.entries, *entry)
	return nil
}

// Entries returns a read-only view of the entries in insertion order
func (s *Session) Entries() Entries {
	return Entries{items: s.entries[:len(s.entries):len(s.entries)]}
}

// TotalMinutes sums minutes practiced across all entries
func (s *Session) TotalMinutes() int {
	total := 0
	for _, e := range s.entries {
		total += e.minutesPracticed
	}
	return total
}

// IsEmpty reports whether the session has no entries
func (s *Session) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries is a read-only view over a session's entries. It has no mutating
// methods; All returns a copy so changes never reach the session.
type Entries struct {
	items []SessionEntry
}

// Len returns the number of entries
func (v Entries) Len() int { return len(v.items) }

// At returns the entry at index i. It panics if i is out of range.
func (v Entries) At(i int) SessionEntry { return v.items[i] }

// All returns a copy of the entries in insertion order
func (v Entries) All() []SessionEntry {
	out := make([]SessionEntry, len(v.items))
	copy(out, v.items)
	return out
}
