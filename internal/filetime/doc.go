// Package filetime enforces the read-before-write invariant: a tool may only
// write or edit a file that this session has read since its last on-disk
// modification.
//
// Guard keeps a per-session map of path -> last-read timestamp. AssertFresh
// compares that timestamp against the file's current mtime; any external
// modification observed after the recorded read invalidates it. An fsnotify
// watch on each noted path gives early invalidation as soon as a write
// happens, rather than waiting for the next stat to disagree - the stat
// comparison remains the source of truth, the watcher only trims the window
// during which a write tool could race past a change it never saw.
package filetime
