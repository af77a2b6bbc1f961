package controllers

import (
	"net/http"

	"github.com/dvillegas/postres-backend/api/middleware"
	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/api/validators"
	"github.com/dvillegas/postres-backend/internal/cart"
	"github.com/dvillegas/postres-backend/internal/checkout"
	"github.com/dvillegas/postres-backend/pkg/logger"
)

type checkoutRequest struct {
	Nombre    string `form:"nombre" validate:"required"`
	Correo    string `form:"correo"`
	Telefono  string `form:"telefono"`
	Direccion string `form:"direccion"`
}

// CheckoutSubmit persists the purchase (buyer, sale and line items in one
// transaction), clears the cart and lands on the confirmation page. An empty
// cart still records a zero-total sale.
func CheckoutSubmit(svc checkout.Service, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())
		carrito := cart.Cart{}
		usuario := ""
		if sess != nil {
			carrito = sess.State.Carrito
			usuario = sess.State.Usuario
		}

		var req checkoutRequest
		if err := validators.DecodeForm(r, &req); err != nil {
			rn.HTML(r.Context(), w, http.StatusOK, "carrito.html", map[string]any{
				"Carrito": carrito,
				"Total":   carrito.Total(),
				"Error":   msgFormulario,
			})
			return
		}

		_, err := svc.Execute(r.Context(), checkout.Input{
			Nombre:    req.Nombre,
			Correo:    req.Correo,
			Telefono:  req.Telefono,
			Direccion: req.Direccion,
		}, carrito, usuario)
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}

		if sess != nil {
			sess.State.Carrito = sess.State.Carrito.Clear()
			sess.Touch()
		}
		responses.Redirect(w, r, "/compra_realizada")
	}
}
