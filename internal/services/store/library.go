package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tygara/practicetracker/internal/domain"
)

// Record is a session together with the file it lives in
type Record struct {
	Path    string
	Session *domain.Session
}

// Label returns a one-line description, e.g. "2025-01-01 - 20 min - 2 entries"
func (r Record) Label() string {
	n := r.Session.Entries().Len()
	noun := "entries"
	if n == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("%s - %d min - %d %s", r.Session.DateString(), r.Session.TotalMinutes(), n, noun)
}

// Name returns the file name of the record
func (r Record) Name() string {
	return filepath.Base(r.Path)
}

// Library manages a directory of session files, one session per file
type Library struct {
	dir    string
	store  *JSONStore
	logger *slog.Logger
}

// NewLibrary creates a library rooted at dir. The directory is created on
// first write.
func NewLibrary(dir string, store *JSONStore, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	if store == nil {
		store = NewJSONStore(logger)
	}
	return &Library{
		dir:    dir,
		store:  store,
		logger: logger,
	}
}

// Dir returns the library directory
func (l *Library) Dir() string {
	return l.dir
}

// Create saves a new session under a fresh file name "<date>_<id>.json"
func (l *Library) Create(session *domain.Session) (Record, error) {
	if session == nil {
		return Record{}, &domain.InvalidArgumentError{Field: "session", Message: "must not be nil"}
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return Record{}, &domain.IOFailureError{Op: "mkdir", Path: l.dir, Err: err}
	}

	id := strings.Split(uuid.NewString(), "-")[0]
	path := filepath.Join(l.dir, fmt.Sprintf("%s_%s.json", session.DateString(), id))

	if err := l.store.Save(session, path); err != nil {
		return Record{}, err
	}

	l.logger.Info("session created", "path", path, "date", session.DateString())
	return Record{Path: path, Session: session}, nil
}

// Update rewrites the record's file with its current session state
func (l *Library) Update(r Record) error {
	if r.Session == nil {
		return &domain.InvalidArgumentError{Field: "session", Message: "must not be nil"}
	}
	return l.store.Save(r.Session, r.Path)
}

// Load reads the session stored at path
func (l *Library) Load(path string) (Record, error) {
	session, err := l.store.Load(path)
	if err != nil {
		return Record{}, err
	}
	return Record{Path: path, Session: session}, nil
}

// AddEntry appends entry to the session stored at path and rewrites the
// file. The returned record reflects the file after the write.
func (l *Library) AddEntry(path string, entry *domain.SessionEntry) (Record, error) {
	session, err := l.store.Load(path)
	if err != nil {
		return Record{}, err
	}
	if err := session.AddEntry(entry); err != nil {
		return Record{}, err
	}
	if err := l.store.Save(session, path); err != nil {
		return Record{}, err
	}

	l.logger.Info("entry added", "path", path, "minutes", entry.MinutesPracticed(), "total", session.TotalMinutes())
	return Record{Path: path, Session: session}, nil
}

// List loads every *.json file in the directory, ordered by date then file
// name. Files that cannot be read or parsed are skipped and logged.
// A missing directory yields an empty list.
func (l *Library) List() ([]Record, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, &domain.IOFailureError{Op: "list", Path: l.dir, Err: err}
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(l.dir, entry.Name())
		session, err := l.store.Load(path)
		if err != nil {
			l.logger.Warn("skipping session file", "path", path, "error", err)
			continue
		}
		records = append(records, Record{Path: path, Session: session})
	}

	sort.SliceStable(records, func(i, j int) bool {
		di, dj := records[i].Session.Date(), records[j].Session.Date()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return records[i].Name() < records[j].Name()
	})

	return records, nil
}

// Delete removes a session file
func (l *Library) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return &domain.IOFailureError{Op: "delete", Path: path, Err: err}
	}
	l.logger.Info("session deleted", "path", path)
	return nil
}
