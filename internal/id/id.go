// Package id generates monotonic, lexicographically sortable identifiers.
//
// Each identifier has the shape <prefix>_<26-char ULID>. The ULID's time
// component makes IDs of the same kind sort chronologically by default
// (ascending); a descending variant bit-inverts the ULID so newest-first
// listing falls out of a plain lexicographic sort, with no secondary sort
// key needed.
package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Kind identifies the entity a generated ID belongs to. The prefix makes
// IDs self-describing in logs and storage keys without a schema lookup.
type Kind string

const (
	KindSession    Kind = "ses"
	KindMessage    Kind = "msg"
	KindPart       Kind = "prt"
	KindPermission Kind = "per"
	KindShare      Kind = "shr"
)

// Direction controls whether an ID of a given kind sorts oldest-first
// (Ascending) or newest-first (Descending).
type Direction int

const (
	Ascending Direction = iota
	Descending
)

var (
	mu sync.Mutex
	// ulid.Monotonic guarantees strictly increasing values for calls that
	// land in the same millisecond by incrementing the entropy bits,
	// satisfying the "two calls in the same millisecond must differ"
	// requirement without us tracking a separate counter.
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// Next returns a fresh ID of the given kind and direction.
func Next(kind Kind, dir Direction) string {
	mu.Lock()
	u, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	mu.Unlock()
	if err != nil {
		// entropy.MonotonicRead only errors on overflow after ~2^80 calls
		// within one millisecond; fall back to a fresh non-monotonic read.
		u = ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	}
	if dir == Descending {
		u = invert(u)
	}
	return string(kind) + "_" + u.String()
}

// invert bit-complements a ULID so that ascending-sorted complements are
// descending-sorted originals: a > b implies invert(a) < invert(b).
func invert(u ulid.ULID) ulid.ULID {
	var out ulid.ULID
	for i := range u {
		out[i] = ^u[i]
	}
	return out
}

// NextSession returns a new session ID (descending — newest sorts first).
func NextSession() string { return Next(KindSession, Descending) }

// NextMessage returns a new message ID (ascending — turn order sorts naturally).
func NextMessage() string { return Next(KindMessage, Ascending) }

// NextPart returns a new part ID (ascending, ordered within its message).
func NextPart() string { return Next(KindPart, Ascending) }

// NextPermission returns a new permission-request ID.
func NextPermission() string { return Next(KindPermission, Ascending) }

// NextShare returns a new opaque share token.
func NextShare() string { return Next(KindShare, Ascending) }
