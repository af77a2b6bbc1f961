package controllers

import (
	"net/http"

	"github.com/dvillegas/postres-backend/api/middleware"
	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/internal/auth"
	"github.com/dvillegas/postres-backend/pkg/logger"
)

// LoginForm renders the login page.
func LoginForm(rn *responses.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rn.HTML(r.Context(), w, http.StatusOK, "login.html", map[string]any{})
	}
}

// LoginSubmit checks the submitted credentials. Success stores the display
// name in the session and redirects to the welcome page; failures re-render
// the form with the matching message.
func LoginSubmit(svc auth.Service, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rn.HTML(r.Context(), w, http.StatusOK, "login.html", map[string]any{
				"Error": auth.MsgUsuarioInvalido,
			})
			return
		}

		res, msg, err := svc.Login(r.Context(), r.FormValue("usuario"), r.FormValue("password"))
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		if msg != "" {
			rn.HTML(r.Context(), w, http.StatusOK, "login.html", map[string]any{
				"Error": msg,
			})
			return
		}

		if sess := middleware.SessionFromContext(r.Context()); sess != nil {
			sess.State.Usuario = res.Nombre
			sess.Touch()
		}
		responses.Redirect(w, r, "/bienvenido")
	}
}
