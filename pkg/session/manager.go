package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"

	"github.com/dvillegas/postres-backend/pkg/config"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrNotFound     = errors.New("session not found")
)

// Store is the persistence surface the manager needs; pkg/redis.Client
// satisfies it.
type Store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SessionKey(sessionID string) string
}

// Manager issues signed session cookies and persists per-visitor state in
// Redis. The cookie carries only a JWT whose subject is the session id; all
// state lives server-side.
type Manager struct {
	store Store
	cfg   config.SessionConfig
}

// NewManager constructs a session manager backed by the provided store.
func NewManager(store Store, cfg config.SessionConfig) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{store: store, cfg: cfg}, nil
}

// Issue mints a fresh session id and its signed cookie value.
func (m *Manager) Issue() (string, string, error) {
	sessionID := uuid.NewString()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    m.cfg.Issuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", "", fmt.Errorf("signing session token: %w", err)
	}
	return sessionID, token, nil
}

// Verify validates the cookie value and returns the session id it names.
func (m *Manager) Verify(tokenValue string) (string, error) {
	if strings.TrimSpace(tokenValue) == "" {
		return "", ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(tokenValue, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	}, jwt.WithIssuer(m.cfg.Issuer))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Load unmarshals the stored session state into dest.
func (m *Manager) Load(ctx context.Context, sessionID string, dest any) error {
	raw, err := m.store.Get(ctx, m.store.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

// Save marshals the session state and refreshes its TTL.
func (m *Manager) Save(ctx context.Context, sessionID string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding session state: %w", err)
	}
	return m.store.Set(ctx, m.store.SessionKey(sessionID), string(raw), m.cfg.TTL)
}

// Delete drops the stored state for the session.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.store.Del(ctx, m.store.SessionKey(sessionID))
}

// Cookie wraps the signed token in the configured cookie.
func (m *Manager) Cookie(tokenValue string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    tokenValue,
		Path:     "/",
		MaxAge:   int(m.cfg.TTL / time.Second),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CookieName reports the configured cookie name.
func (m *Manager) CookieName() string {
	return m.cfg.CookieName
}
