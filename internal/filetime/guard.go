package filetime

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/relaycore/agentcore/internal/logging"
)

// NotFreshError is returned when a write/edit tool targets a path that
// either was never read in this session or changed on disk since it was.
type NotFreshError struct {
	SessionID string
	Path      string
	Reason    string
}

func (e *NotFreshError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// IsNotFreshError reports whether err is a read-before-write violation.
func IsNotFreshError(err error) bool {
	_, ok := err.(*NotFreshError)
	return ok
}

// Guard tracks, per session, the last time each absolute file path was read
// and enforces that writes/edits only proceed against a path read since its
// last on-disk modification.
type Guard struct {
	mu      sync.RWMutex
	reads   map[string]map[string]time.Time // sessionID -> absPath -> readAt
	watcher *fsnotify.Watcher
	watched map[string]bool // watched directories
	closeCh chan struct{}
}

// NewGuard creates a Guard. If the underlying filesystem watcher cannot be
// created, the guard still works correctly (AssertFresh falls back entirely
// to stat comparison); the watcher is an early-invalidation optimization,
// not the source of truth.
func NewGuard() *Guard {
	g := &Guard{
		reads:   make(map[string]map[string]time.Time),
		watched: make(map[string]bool),
		closeCh: make(chan struct{}),
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Warn().Err(err).Msg("filetime: fsnotify unavailable, falling back to stat-only checks")
		return g
	}
	g.watcher = w
	go g.run()
	return g
}

func (g *Guard) run() {
	for {
		select {
		case <-g.closeCh:
			return
		case ev, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				g.invalidate(ev.Name)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn().Err(err).Msg("filetime: watcher error")
		}
	}
}

// invalidate drops the recorded read time for path across all sessions,
// forcing a fresh NoteRead before the next write/edit succeeds.
func (g *Guard) invalidate(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, byPath := range g.reads {
		delete(byPath, abs)
	}
}

// NoteRead records that sessionID read path at the current time.
func (g *Guard) NoteRead(sessionID, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	g.mu.Lock()
	if g.reads[sessionID] == nil {
		g.reads[sessionID] = make(map[string]time.Time)
	}
	g.reads[sessionID][abs] = time.Now()
	g.mu.Unlock()

	g.watch(abs)
}

// watch adds path's parent directory to the fsnotify watcher, if available.
// Watching the directory (rather than the file) survives editors that
// replace a file via rename instead of writing in place.
func (g *Guard) watch(path string) {
	if g.watcher == nil {
		return
	}

	dir := filepath.Dir(path)

	g.mu.Lock()
	already := g.watched[dir]
	if !already {
		g.watched[dir] = true
	}
	g.mu.Unlock()

	if already {
		return
	}

	if err := g.watcher.Add(dir); err != nil {
		logging.Debug().Err(err).Str("dir", dir).Msg("filetime: failed to watch directory")
	}
}

// AssertFresh fails unless path was read during this session and its
// on-disk modification time is no later than the recorded read time.
func (g *Guard) AssertFresh(sessionID, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	g.mu.RLock()
	readAt, ok := g.reads[sessionID][abs]
	g.mu.RUnlock()

	if !ok {
		return &NotFreshError{
			SessionID: sessionID,
			Path:      path,
			Reason:    "must be read with the read tool before it can be written or edited",
		}
	}

	info, err := os.Stat(abs)
	if err != nil {
		// A missing file (e.g. the write tool creating something new) is not
		// a staleness violation; callers that require an existing file will
		// fail on their own read/open.
		return nil
	}

	if info.ModTime().After(readAt) {
		return &NotFreshError{
			SessionID: sessionID,
			Path:      path,
			Reason:    "has changed on disk since it was last read; read it again before writing",
		}
	}

	return nil
}

// Remove purges all recorded reads for sessionID, called when a session is
// removed.
func (g *Guard) Remove(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.reads, sessionID)
}

// Close stops the underlying filesystem watcher.
func (g *Guard) Close() error {
	if g.watcher == nil {
		return nil
	}
	select {
	case <-g.closeCh:
	default:
		close(g.closeCh)
	}
	return g.watcher.Close()
}
