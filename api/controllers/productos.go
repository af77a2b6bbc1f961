package controllers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvillegas/postres-backend/api/middleware"
	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/api/validators"
	"github.com/dvillegas/postres-backend/internal/catalog"
	"github.com/dvillegas/postres-backend/pkg/db/models"
	"github.com/dvillegas/postres-backend/pkg/logger"
)

type productoRequest struct {
	Nombre           string          `form:"nombre" validate:"required"`
	Descripcion      string          `form:"descripcion"`
	Imagen           string          `form:"imagen"`
	Precio           decimal.Decimal `form:"precio"`
	Stock            int             `form:"stock"`
	FechaVencimiento *time.Time      `form:"fecha"`
}

// msgFormulario is the inline message shown when a submitted form fails
// validation and the page is rendered again.
const msgFormulario = "Revisa los datos del formulario."

// creadoPor stamps rows with the session user, "admin" when anonymous.
func creadoPor(r *http.Request) string {
	if sess := middleware.SessionFromContext(r.Context()); sess != nil && sess.State.Usuario != "" {
		return sess.State.Usuario
	}
	return "admin"
}

// ProductoList renders the public catalog listing.
func ProductoList(productos catalog.ProductoRepository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := productos.List(r.Context())
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		rn.HTML(r.Context(), w, http.StatusOK, "producto.html", map[string]any{
			"Productos": rows,
		})
	}
}

// GestionProductos renders the product admin list.
func GestionProductos(productos catalog.ProductoRepository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := productos.List(r.Context())
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		rn.HTML(r.Context(), w, http.StatusOK, "gestion_productos.html", map[string]any{
			"Productos": rows,
		})
	}
}

// ProductoCreate shows the create form on GET and inserts on POST.
func ProductoCreate(productos catalog.ProductoRepository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			rn.HTML(r.Context(), w, http.StatusOK, "agregar_producto.html", map[string]any{})
			return
		}

		var req productoRequest
		if err := validators.DecodeForm(r, &req); err != nil {
			rn.HTML(r.Context(), w, http.StatusOK, "agregar_producto.html", map[string]any{
				"Error": msgFormulario,
			})
			return
		}

		producto := models.Producto{
			Nombre:           req.Nombre,
			Descripcion:      req.Descripcion,
			Imagen:           req.Imagen,
			Precio:           req.Precio,
			Stock:            req.Stock,
			FechaVencimiento: req.FechaVencimiento,
			CreadoPor:        creadoPor(r),
		}
		if err := productos.Create(r.Context(), &producto); err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		responses.Redirect(w, r, "/gestion_productos")
	}
}

// ProductoEdit loads the row into the form on GET and overwrites the
// editable fields on POST. A missing id renders the form empty rather than
// erroring.
func ProductoEdit(productos catalog.ProductoRepository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseParamInt64(r, "id")
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}

		if r.Method == http.MethodGet {
			producto, err := productos.FindByID(r.Context(), id)
			if err != nil {
				rn.Error(r.Context(), logg, w, err)
				return
			}
			rn.HTML(r.Context(), w, http.StatusOK, "editar_producto.html", map[string]any{
				"Producto": producto,
			})
			return
		}

		var req productoRequest
		if err := validators.DecodeForm(r, &req); err != nil {
			producto, ferr := productos.FindByID(r.Context(), id)
			if ferr != nil {
				rn.Error(r.Context(), logg, w, ferr)
				return
			}
			rn.HTML(r.Context(), w, http.StatusOK, "editar_producto.html", map[string]any{
				"Producto": producto,
				"Error":    msgFormulario,
			})
			return
		}

		producto := models.Producto{
			ID:               id,
			Nombre:           req.Nombre,
			Descripcion:      req.Descripcion,
			Imagen:           req.Imagen,
			Precio:           req.Precio,
			Stock:            req.Stock,
			FechaVencimiento: req.FechaVencimiento,
		}
		if err := productos.Update(r.Context(), &producto); err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		responses.Redirect(w, r, "/gestion_productos")
	}
}

// ProductoDelete hard-deletes the row; unknown ids are silent no-ops.
func ProductoDelete(productos catalog.ProductoRepository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseParamInt64(r, "id")
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		if err := productos.Delete(r.Context(), id); err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		responses.Redirect(w, r, "/gestion_productos")
	}
}
