package sharing

import (
	"context"
	"sync"
	"testing"

	"github.com/relaycore/agentcore/internal/storage"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(storage.New(t.TempDir()), "")
}

func TestNewManagerDefaultURL(t *testing.T) {
	m := newTestManager(t)
	if m.baseURL != "https://agentcore.dev/share" {
		t.Errorf("expected default base URL, got %s", m.baseURL)
	}
}

func TestNewManagerCustomURL(t *testing.T) {
	custom := "https://custom.example.com/share"
	m := NewManager(storage.New(t.TempDir()), custom)
	if m.baseURL != custom {
		t.Errorf("expected %s, got %s", custom, m.baseURL)
	}
}

func TestShareAndResolve(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	token, url, err := m.Share(ctx, "session-1")
	if err != nil {
		t.Fatalf("Share failed: %v", err)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
	if url == "" {
		t.Error("expected non-empty URL")
	}

	rec, err := m.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if rec.SessionID != "session-1" {
		t.Errorf("expected session-1, got %s", rec.SessionID)
	}
	if rec.CreatedAt == 0 {
		t.Error("expected non-zero created time")
	}
}

func TestResolveNotFound(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Resolve(context.Background(), "nonexistent-token"); err == nil {
		t.Error("expected error for nonexistent token")
	}
}

func TestUnshare(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	token, _, err := m.Share(ctx, "session-1")
	if err != nil {
		t.Fatalf("Share failed: %v", err)
	}

	if err := m.Unshare(ctx, token); err != nil {
		t.Fatalf("Unshare failed: %v", err)
	}

	if _, err := m.Resolve(ctx, token); err == nil {
		t.Error("expected token to be gone after Unshare")
	}
}

func TestUnshareEmptyTokenIsNoop(t *testing.T) {
	m := newTestManager(t)
	if err := m.Unshare(context.Background(), ""); err != nil {
		t.Errorf("expected no error unsharing empty token, got %v", err)
	}
}

func TestTokenUniqueness(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	tokens := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, _, err := m.Share(ctx, "session")
		if err != nil {
			t.Fatalf("Share failed: %v", err)
		}
		if tokens[token] {
			t.Errorf("duplicate token: %s", token)
		}
		tokens[token] = true
	}
}

func TestURLFormat(t *testing.T) {
	custom := "https://example.com/s"
	m := NewManager(storage.New(t.TempDir()), custom)

	_, url, err := m.Share(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("Share failed: %v", err)
	}
	prefix := custom + "/"
	if len(url) <= len(prefix) || url[:len(prefix)] != prefix {
		t.Errorf("expected URL to start with %s, got %s", prefix, url)
	}
}

func TestConcurrentShare(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, _, err := m.Share(ctx, "session")
			if err != nil {
				t.Errorf("Share failed: %v", err)
				return
			}
			if _, err := m.Resolve(ctx, token); err != nil {
				t.Errorf("Resolve failed: %v", err)
			}
		}(i)
	}
	wg.Wait()
}
