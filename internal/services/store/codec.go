// Package store persists practice sessions as JSON documents on disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tygara/practicetracker/internal/domain"
)

// Placeholder exercise fields. Exercise identity is not persisted, so every
// loaded entry is attached to a synthesized scale exercise.
const (
	PlaceholderName  = "Loaded Exercise"
	placeholderScale = "Major"
	placeholderKey   = "C"
	placeholderTempo = 60
)

// storedEntry is the on-disk shape of a session entry
type storedEntry struct {
	MinutesPracticed int     `json:"minutesPracticed"`
	AverageTempoBpm  *int    `json:"averageTempoBpm"`
	Notes            *string `json:"notes"`
}

// storedSession is the on-disk shape of a session
type storedSession struct {
	Date    *string       `json:"date"`
	Entries []storedEntry `json:"entries"`
}

// JSONStore encodes sessions to and from the session file format:
//
//	{"date": "YYYY-MM-DD", "entries": [{"minutesPracticed": 20, "averageTempoBpm": 90, "notes": "..."}]}
type JSONStore struct {
	logger *slog.Logger
}

// NewJSONStore creates a new JSON session store
func NewJSONStore(logger *slog.Logger) *JSONStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONStore{logger: logger}
}

// Encode serializes a session. Only the entry scalars are written.
func (s *JSONStore) Encode(session *domain.Session) ([]byte, error) {
	if session == nil {
		return nil, &domain.InvalidArgumentError{Field: "session", Message: "must not be nil"}
	}

	date := session.DateString()
	stored := storedSession{
		Date:    &date,
		Entries: make([]storedEntry, 0, session.Entries().Len()),
	}

	for _, entry := range session.Entries().All() {
		se := storedEntry{MinutesPracticed: entry.MinutesPracticed()}
		if tempo, ok := entry.AverageTempoBpm(); ok {
			se.AverageTempoBpm = &tempo
		}
		if notes, ok := entry.Notes(); ok {
			se.Notes = &notes
		}
		stored.Entries = append(stored.Entries, se)
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	return data, nil
}

// Decode reconstructs a session from a document produced by Encode.
// Stored minutes <= 0 are coerced to 1.
func (s *JSONStore) Decode(data []byte) (*domain.Session, error) {
	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, &domain.ValidationError{Message: "invalid JSON format", Err: err}
	}

	if stored.Date == nil {
		return nil, &domain.ValidationError{Message: "missing date"}
	}
	date, err := domain.ParseDate(*stored.Date)
	if err != nil {
		return nil, &domain.ValidationError{Message: "invalid date", Err: err}
	}

	session, err := domain.NewSession(date)
	if err != nil {
		return nil, &domain.ValidationError{Message: "invalid date", Err: err}
	}

	for i, se := range stored.Entries {
		minutes := se.MinutesPracticed
		if minutes <= 0 {
			minutes = 1
		}

		placeholder := PlaceholderExercise(minutes)
		entry, err := domain.NewSessionEntry(&placeholder, minutes, se.AverageTempoBpm, se.Notes)
		if err != nil {
			return nil, &domain.ValidationError{Message: fmt.Sprintf("invalid entry %d", i), Err: err}
		}
		if err := session.AddEntry(&entry); err != nil {
			return nil, &domain.ValidationError{Message: fmt.Sprintf("invalid entry %d", i), Err: err}
		}
	}

	return session, nil
}

// Save writes the whole session file at path, replacing any existing content
func (s *JSONStore) Save(session *domain.Session, path string) error {
	data, err := s.Encode(session)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		s.logger.Error("failed to write session", "path", path, "error", err)
		return &domain.IOFailureError{Op: "write", Path: path, Err: err}
	}

	s.logger.Debug("session saved", "path", path, "date", session.DateString(), "entries", session.Entries().Len())
	return nil
}

// Load reads a session file. Read failures are IOFailure errors; content
// failures are Validation errors.
func (s *JSONStore) Load(path string) (*domain.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.IOFailureError{Op: "read", Path: path, Err: err}
	}

	session, err := s.Decode(data)
	if err != nil {
		s.logger.Warn("invalid session file", "path", path, "error", err)
		return nil, err
	}

	s.logger.Debug("session loaded", "path", path, "date", session.DateString(), "entries", session.Entries().Len())
	return session, nil
}

// PlaceholderExercise returns the synthesized exercise attached to loaded
// entries. minutes is clamped to at least 1.
func PlaceholderExercise(minutes int) domain.Exercise {
	ex, err := domain.NewScale(PlaceholderName, max(1, minutes), placeholderScale, placeholderKey, placeholderTempo)
	if err != nil {
		// Unreachable: every field is a valid constant
		panic(fmt.Sprintf("placeholder exercise: %v", err))
	}
	return ex
}

// IsPlaceholder reports whether ex was synthesized by Decode rather than
// defined by the user
func IsPlaceholder(ex *domain.Exercise) bool {
	if ex == nil {
		return false
	}
	detail, ok := ex.Scale()
	return ok &&
		ex.Name() == PlaceholderName &&
		detail.ScaleName == placeholderScale &&
		detail.Key == placeholderKey &&
		detail.TargetTempoBpm == placeholderTempo
}

// IsNotExist reports whether err is an IOFailure caused by a missing file
func IsNotExist(err error) bool {
	var ioErr *domain.IOFailureError
	return errors.As(err, &ioErr) && errors.Is(ioErr.Err, os.ErrNotExist)
}
