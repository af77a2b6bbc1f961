package session

import (
	"context"
	"testing"
	"time"

	"github.com/dvillegas/postres-backend/pkg/config"
)

type memoryStore struct {
	data map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}}
}

func (m *memoryStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.data[key] = value.(string)
	return nil
}

func (m *memoryStore) Get(ctx context.Context, key string) (string, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", ErrNotFound
}

func (m *memoryStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *memoryStore) SessionKey(sessionID string) string {
	return "test:session:" + sessionID
}

func testConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:     "super-secret",
		Issuer:     "postres",
		CookieName: "postres_session",
		TTL:        time.Hour,
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	mgr, err := NewManager(newMemoryStore(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, token, err := mgr.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	got, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if got != id {
		t.Fatalf("expected session id %s, got %s", id, got)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	mgr, _ := NewManager(newMemoryStore(), testConfig())
	_, token, err := mgr.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	other := testConfig()
	other.Secret = "a-different-secret"
	otherMgr, _ := NewManager(newMemoryStore(), other)
	if _, err := otherMgr.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := mgr.Verify(""); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty value, got %v", err)
	}
}

func TestLoadSaveDelete(t *testing.T) {
	type state struct {
		Usuario string `json:"usuario"`
	}

	mgr, _ := NewManager(newMemoryStore(), testConfig())
	ctx := context.Background()

	if err := mgr.Load(ctx, "missing", &state{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mgr.Save(ctx, "abc", state{Usuario: "Ana"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	var got state
	if err := mgr.Load(ctx, "abc", &got); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Usuario != "Ana" {
		t.Fatalf("unexpected state %+v", got)
	}

	if err := mgr.Delete(ctx, "abc"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := mgr.Load(ctx, "abc", &got); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCookieShape(t *testing.T) {
	mgr, _ := NewManager(newMemoryStore(), testConfig())
	cookie := mgr.Cookie("token-value")
	if cookie.Name != "postres_session" || cookie.Value != "token-value" {
		t.Fatalf("unexpected cookie %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be http-only")
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("unexpected max age %d", cookie.MaxAge)
	}
}
