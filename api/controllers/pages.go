package controllers

import (
	"net/http"

	"github.com/dvillegas/postres-backend/api/middleware"
	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/api/validators"
)

// Index renders the storefront home.
func Index(rn *responses.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rn.HTML(r.Context(), w, http.StatusOK, "index.html", nil)
	}
}

// Nosotros renders the static about page.
func Nosotros(rn *responses.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rn.HTML(r.Context(), w, http.StatusOK, "nosotros.html", nil)
	}
}

// Contacto shows the contact form; a POST only flips the "sent" flag, nothing
// is persisted.
func Contacto(rn *responses.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mensajeEnviado := false
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			mensajeEnviado = true
		}
		rn.HTML(r.Context(), w, http.StatusOK, "contacto.html", map[string]any{
			"MensajeEnviado": mensajeEnviado,
		})
	}
}

// Bienvenido greets the logged-in user, falling back to a generic name for
// anonymous visitors.
func Bienvenido(rn *responses.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nombre := "Usuario"
		if sess := middleware.SessionFromContext(r.Context()); sess != nil && sess.State.Usuario != "" {
			nombre = sess.State.Usuario
		}
		rn.HTML(r.Context(), w, http.StatusOK, "bienvenido.html", map[string]any{
			"Nombre": nombre,
		})
	}
}

// ProductoDetalle renders a detail view entirely from query parameters; the
// caller supplies every field and no catalog lookup happens.
func ProductoDetalle(rn *responses.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		titulo := validators.SanitizeString(q.Get("titulo"), 0)
		if titulo == "" {
			titulo = "Sin título"
		}
		descripcion := validators.SanitizeString(q.Get("descripcion"), 0)
		if descripcion == "" {
			descripcion = "Sin descripción"
		}
		rn.HTML(r.Context(), w, http.StatusOK, "producto_detalle.html", map[string]any{
			"Titulo":      titulo,
			"Descripcion": descripcion,
			"Imagen":      q.Get("imagen"),
			"Precio":      q.Get("precio"),
		})
	}
}

// CompraRealizada renders the order confirmation page.
func CompraRealizada(rn *responses.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rn.HTML(r.Context(), w, http.StatusOK, "compra_realizada.html", map[string]any{
			"Comprador": "Cliente",
		})
	}
}
