package controllers

import (
	"net/http"

	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/api/validators"
	"github.com/dvillegas/postres-backend/internal/sales"
	"github.com/dvillegas/postres-backend/pkg/logger"
)

// VentasList renders recorded sales with their buyer, newest first.
func VentasList(repo sales.Repository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ventas, err := repo.List(r.Context())
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		rn.HTML(r.Context(), w, http.StatusOK, "ventas.html", map[string]any{
			"Ventas": ventas,
		})
	}
}

// VentaDetalle renders the line items of one sale.
func VentaDetalle(repo sales.Repository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseParamInt64(r, "id_venta")
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		detalle, err := repo.DetalleByVenta(r.Context(), id)
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		rn.HTML(r.Context(), w, http.StatusOK, "detalle_venta.html", map[string]any{
			"IDVenta": id,
			"Detalle": detalle,
		})
	}
}
