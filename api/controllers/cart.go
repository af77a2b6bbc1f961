package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dvillegas/postres-backend/api/middleware"
	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/api/validators"
	"github.com/dvillegas/postres-backend/internal/cart"
	"github.com/dvillegas/postres-backend/pkg/logger"
)

type cartAdjustRequest struct {
	Titulo string `json:"titulo" form:"titulo"`
	Accion string `json:"accion" form:"accion"`
}

// CartAdd puts one unit of the submitted product in the session cart. A
// malformed price counts as zero rather than failing; the body is the plain
// "OK" the storefront scripts expect.
func CartAdd(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		titulo := validators.SanitizeString(r.FormValue("titulo"), 0)
		precio, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("precio")))
		if err != nil {
			precio = decimal.Zero
		}

		sess := middleware.SessionFromContext(r.Context())
		if sess != nil {
			sess.State.Carrito = sess.State.Carrito.Add(titulo, precio, r.FormValue("imagen"))
			sess.Touch()
		} else if logg != nil {
			logg.Warn(r.Context(), "cart.add without session")
		}

		responses.WriteText(w, http.StatusOK, "OK")
	}
}

// CartView renders the cart page.
func CartView(rn *responses.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		carrito := cart.Cart{}
		if sess := middleware.SessionFromContext(r.Context()); sess != nil {
			carrito = sess.State.Carrito
		}
		rn.HTML(r.Context(), w, http.StatusOK, "carrito.html", map[string]any{
			"Carrito": carrito,
			"Total":   carrito.Total(),
		})
	}
}

// CartRemoveItem drops the titled line and returns to the cart view. A title
// that is not in the cart is a silent no-op.
func CartRemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titulo := chi.URLParam(r, "titulo")
		if sess := middleware.SessionFromContext(r.Context()); sess != nil {
			sess.State.Carrito = sess.State.Carrito.Remove(titulo)
			sess.Touch()
		}
		responses.Redirect(w, r, "/carrito")
	}
}

// CartAdjust bumps a line's quantity up or down. Asynchronous callers
// (X-Requested-With marker or a JSON body) get the structured result; plain
// form posts are sent back to the cart view.
func CartAdjust(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isJSON := strings.Contains(r.Header.Get("Content-Type"), "application/json")
		isAJAX := r.Header.Get("X-Requested-With") == "XMLHttpRequest" || isJSON

		var req cartAdjustRequest
		if isJSON {
			if err := validators.DecodeJSONBody(r, &req); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		} else {
			_ = r.ParseForm()
			req.Titulo = r.FormValue("titulo")
			req.Accion = r.FormValue("accion")
		}

		result := cart.AdjustResult{}
		if sess := middleware.SessionFromContext(r.Context()); sess != nil {
			sess.State.Carrito, result = sess.State.Carrito.Adjust(req.Titulo, cart.Accion(req.Accion))
			sess.Touch()
		}

		if isAJAX {
			responses.WriteJSON(w, http.StatusOK, map[string]any{
				"ok":       true,
				"cantidad": result.Cantidad,
				"removed":  result.Removed,
			})
			return
		}
		responses.Redirect(w, r, "/carrito")
	}
}

// CartClear empties the session cart.
func CartClear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess := middleware.SessionFromContext(r.Context()); sess != nil {
			sess.State.Carrito = sess.State.Carrito.Clear()
			sess.Touch()
		}
		responses.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}
