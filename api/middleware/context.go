package middleware

import (
	"context"

	"github.com/dvillegas/postres-backend/internal/cart"
)

type contextKey string

const ctxSession contextKey = "session"

// State is what a visitor's session holds: the logged-in user's display name
// (empty while anonymous) and the shopping cart.
type State struct {
	Usuario string    `json:"usuario,omitempty"`
	Carrito cart.Cart `json:"carrito,omitempty"`
}

// Session is the per-request view of the visitor's session. Handlers mutate
// State and call Touch; the session middleware persists touched sessions
// after the handler returns.
type Session struct {
	ID    string
	State State

	dirty bool
}

// Touch marks the session for persistence at the end of the request.
func (s *Session) Touch() {
	if s != nil {
		s.dirty = true
	}
}

// SessionFromContext returns the request's session, or nil outside the
// session middleware.
func SessionFromContext(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}
	if s, ok := ctx.Value(ctxSession).(*Session); ok {
		return s
	}
	return nil
}

// WithSession injects the session into the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSession, s)
}
