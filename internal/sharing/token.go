// Package sharing allocates and resolves opaque share tokens for sessions.
package sharing

import (
	"context"
	"fmt"
	"time"

	"github.com/relaycore/agentcore/internal/id"
	"github.com/relaycore/agentcore/internal/storage"
)

// Record is the persisted payload at storage key share/<shareID>.
type Record struct {
	SessionID string `json:"sessionID"`
	CreatedAt int64  `json:"createdAt"`
}

// Manager allocates share tokens and persists them through Storage so a
// token survives process restarts and resolves without touching the
// owning session record.
type Manager struct {
	storage *storage.Storage
	baseURL string
}

// NewManager creates a share token manager backed by the given store.
func NewManager(store *storage.Storage, baseURL string) *Manager {
	if baseURL == "" {
		baseURL = "https://agentcore.dev/share"
	}
	return &Manager{storage: store, baseURL: baseURL}
}

// Share allocates a fresh opaque token for sessionID and persists the
// share/<token> record. Calling Share again for the same session mints a
// new token; callers that want idempotency should check the session's
// existing share field first.
func (m *Manager) Share(ctx context.Context, sessionID string) (token string, url string, err error) {
	token = id.NextShare()
	rec := &Record{SessionID: sessionID, CreatedAt: time.Now().UnixMilli()}
	if err := m.storage.Put(ctx, []string{"share", token}, rec); err != nil {
		return "", "", fmt.Errorf("failed to persist share token: %w", err)
	}
	return token, fmt.Sprintf("%s/%s", m.baseURL, token), nil
}

// Unshare removes the share/<token> record. A session that was never
// shared yields a no-op, not an error.
func (m *Manager) Unshare(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.storage.Delete(ctx, []string{"share", token})
}

// Resolve looks up the session a share token was allocated for. Per spec
// §9 open question (ii), remove wins over share. Removing a session does not
// delete its share record, so a token whose owning session was removed still
// resolves here to that session's ID; storage.ErrNotFound is returned only for
// a token that was never allocated or has been unshared.
func (m *Manager) Resolve(ctx context.Context, token string) (*Record, error) {
	var rec Record
	if err := m.storage.Get(ctx, []string{"share", token}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
