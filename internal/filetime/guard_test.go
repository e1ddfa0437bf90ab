package filetime

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertFreshRequiresPriorRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unseen.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	g := &Guard{reads: make(map[string]map[string]time.Time), watched: make(map[string]bool)}

	err := g.AssertFresh("session-1", path)
	require.Error(t, err)
	assert.True(t, IsNotFreshError(err))
	assert.Contains(t, err.Error(), path)
}

func TestAssertFreshSucceedsAfterRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seen.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	g := &Guard{reads: make(map[string]map[string]time.Time), watched: make(map[string]bool)}
	g.NoteRead("session-1", path)

	assert.NoError(t, g.AssertFresh("session-1", path))
}

func TestAssertFreshFailsAfterExternalModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seen.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	g := &Guard{reads: make(map[string]map[string]time.Time), watched: make(map[string]bool)}
	g.NoteRead("session-1", path)
	require.NoError(t, g.AssertFresh("session-1", path))

	// Simulate an external modification landing after the recorded read.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	err := g.AssertFresh("session-1", path)
	require.Error(t, err)
	assert.True(t, IsNotFreshError(err))

	// A fresh read clears the staleness.
	g.NoteRead("session-1", path)
	assert.NoError(t, g.AssertFresh("session-1", path))
}

func TestAssertFreshIsPerSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seen.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	g := &Guard{reads: make(map[string]map[string]time.Time), watched: make(map[string]bool)}
	g.NoteRead("session-1", path)

	assert.NoError(t, g.AssertFresh("session-1", path))
	assert.Error(t, g.AssertFresh("session-2", path))
}

func TestRemovePrunesSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seen.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	g := &Guard{reads: make(map[string]map[string]time.Time), watched: make(map[string]bool)}
	g.NoteRead("session-1", path)
	require.NoError(t, g.AssertFresh("session-1", path))

	g.Remove("session-1")
	assert.Error(t, g.AssertFresh("session-1", path))
}

func TestNonexistentFileIsNotStale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.txt")

	g := &Guard{reads: make(map[string]map[string]time.Time), watched: make(map[string]bool)}
	g.NoteRead("session-1", path)

	assert.NoError(t, g.AssertFresh("session-1", path))
}
