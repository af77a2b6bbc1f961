package middleware

import (
	"errors"
	"net/http"

	"github.com/dvillegas/postres-backend/pkg/logger"
	"github.com/dvillegas/postres-backend/pkg/session"
)

// Sessions resolves the visitor's session from the signed cookie, loading its
// state from the store. Requests without a valid cookie get a fresh session
// and a Set-Cookie. Sessions a handler touched are saved after it returns;
// concurrent requests on one session are last-write-wins.
func Sessions(mgr *session.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess := &Session{}
			if cookie, err := r.Cookie(mgr.CookieName()); err == nil {
				if id, err := mgr.Verify(cookie.Value); err == nil {
					sess.ID = id
					if err := mgr.Load(ctx, id, &sess.State); err != nil && !errors.Is(err, session.ErrNotFound) {
						if logg != nil {
							logg.Error(ctx, "session.load", err)
						}
					}
				}
			}

			if sess.ID == "" {
				id, token, err := mgr.Issue()
				if err != nil {
					if logg != nil {
						logg.Error(ctx, "session.issue", err)
					}
					next.ServeHTTP(w, r)
					return
				}
				sess.ID = id
				http.SetCookie(w, mgr.Cookie(token))
			}

			if logg != nil {
				ctx = logg.WithSessionID(ctx, sess.ID)
				if sess.State.Usuario != "" {
					ctx = logg.WithUsuario(ctx, sess.State.Usuario)
				}
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, sess)))

			if sess.dirty {
				if err := mgr.Save(ctx, sess.ID, sess.State); err != nil && logg != nil {
					logg.Error(ctx, "session.save", err)
				}
			}
		})
	}
}
