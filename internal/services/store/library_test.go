package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tygara/practicetracker/internal/domain"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	st := newTestStore()
	return NewLibrary(filepath.Join(t.TempDir(), "sessions"), st, st.logger)
}

func TestLibrary_ListMissingDir(t *testing.T) {
	records, err := newTestLibrary(t).List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLibrary_CreateAndList(t *testing.T) {
	lib := newTestLibrary(t)

	later := newSession(t, "2025-02-01")
	addEntry(t, later, 30, nil, nil)
	earlier := newSession(t, "2025-01-01")
	addEntry(t, earlier, 15, nil, nil)
	addEntry(t, earlier, 10, intPtr(80), strPtr("slow"))

	r1, err := lib.Create(later)
	require.NoError(t, err)
	r2, err := lib.Create(earlier)
	require.NoError(t, err)

	assert.NotEqual(t, r1.Path, r2.Path)
	assert.True(t, strings.HasPrefix(r1.Name(), "2025-02-01_"))
	assert.Equal(t, ".json", filepath.Ext(r1.Path))
	assert.FileExists(t, r1.Path)

	records, err := lib.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2025-01-01", records[0].Session.DateString())
	assert.Equal(t, "2025-02-01", records[1].Session.DateString())
	assert.Equal(t, 25, records[0].Session.TotalMinutes())
	assert.Equal(t, "2025-01-01 - 25 min - 2 entries", records[0].Label())
	assert.Equal(t, "2025-02-01 - 30 min - 1 entry", records[1].Label())
}

func TestLibrary_SameDateGetsDistinctFiles(t *testing.T) {
	lib := newTestLibrary(t)

	r1, err := lib.Create(newSession(t, "2025-01-01"))
	require.NoError(t, err)
	r2, err := lib.Create(newSession(t, "2025-01-01"))
	require.NoError(t, err)

	assert.NotEqual(t, r1.Path, r2.Path)

	records, err := lib.List()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLibrary_ListSkipsInvalidFiles(t *testing.T) {
	lib := newTestLibrary(t)
	_, err := lib.Create(newSession(t, "2025-01-01"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(lib.Dir(), "broken.json"), []byte("{not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(lib.Dir(), "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(lib.Dir(), "nested.json"), 0755))

	records, err := lib.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLibrary_Update(t *testing.T) {
	lib := newTestLibrary(t)
	rec, err := lib.Create(newSession(t, "2025-01-01"))
	require.NoError(t, err)

	addEntry(t, rec.Session, 45, nil, strPtr("long run-through"))
	require.NoError(t, lib.Update(rec))

	records, err := lib.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 45, records[0].Session.TotalMinutes())

	err = lib.Update(Record{Path: rec.Path})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLibrary_AddEntry(t *testing.T) {
	lib := newTestLibrary(t)
	session := newSession(t, "2025-01-01")
	addEntry(t, session, 15, nil, nil)
	rec, err := lib.Create(session)
	require.NoError(t, err)

	ex, err := domain.NewSong("Repertoire", 20, "Blackbird", "The Beatles")
	require.NoError(t, err)
	entry, err := domain.NewSessionEntry(&ex, 10, intPtr(96), nil)
	require.NoError(t, err)

	updated, err := lib.AddEntry(rec.Path, &entry)
	require.NoError(t, err)
	assert.Equal(t, rec.Path, updated.Path)
	assert.Equal(t, 25, updated.Session.TotalMinutes())
	require.Equal(t, 2, updated.Session.Entries().Len())
	assert.Equal(t, "Song", updated.Session.Entries().At(1).Exercise().Category())

	reloaded, err := lib.store.Load(rec.Path)
	require.NoError(t, err)
	assert.Equal(t, 25, reloaded.TotalMinutes())
}

func TestLibrary_Load(t *testing.T) {
	lib := newTestLibrary(t)
	session := newSession(t, "2025-01-03")
	addEntry(t, session, 12, intPtr(88), nil)
	rec, err := lib.Create(session)
	require.NoError(t, err)

	loaded, err := lib.Load(rec.Path)
	require.NoError(t, err)
	assert.Equal(t, rec.Path, loaded.Path)
	assert.Equal(t, "2025-01-03", loaded.Session.DateString())
	assert.Equal(t, 12, loaded.Session.TotalMinutes())

	_, err = lib.Load(filepath.Join(lib.Dir(), "missing.json"))
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestLibrary_AddEntryErrors(t *testing.T) {
	lib := newTestLibrary(t)

	ex, err := domain.NewArpeggio("Arpeggios", 10, "Am7", 70)
	require.NoError(t, err)
	entry, err := domain.NewSessionEntry(&ex, 5, nil, nil)
	require.NoError(t, err)

	_, err = lib.AddEntry(filepath.Join(lib.Dir(), "missing.json"), &entry)
	assert.ErrorIs(t, err, domain.ErrIOFailure)

	rec, err := lib.Create(newSession(t, "2025-01-01"))
	require.NoError(t, err)
	_, err = lib.AddEntry(rec.Path, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLibrary_Delete(t *testing.T) {
	lib := newTestLibrary(t)
	rec, err := lib.Create(newSession(t, "2025-01-01"))
	require.NoError(t, err)

	require.NoError(t, lib.Delete(rec.Path))
	assert.NoFileExists(t, rec.Path)

	records, err := lib.List()
	require.NoError(t, err)
	assert.Empty(t, records)

	err = lib.Delete(rec.Path)
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestLibrary_CreateNil(t *testing.T) {
	_, err := newTestLibrary(t).Create(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
