package controllers

import (
	"net/http"

	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/api/validators"
	"github.com/dvillegas/postres-backend/internal/catalog"
	"github.com/dvillegas/postres-backend/pkg/db/models"
	"github.com/dvillegas/postres-backend/pkg/logger"
)

type proveedorRequest struct {
	Nombre       string `form:"nombre" validate:"required"`
	Telefono     string `form:"telefono"`
	Correo       string `form:"correo" validate:"omitempty,email"`
	Direccion    string `form:"direccion"`
	TipoProducto string `form:"tipo"`
}

// ProveedorList renders the supplier admin list.
func ProveedorList(proveedores catalog.ProveedorRepository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := proveedores.List(r.Context())
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		rn.HTML(r.Context(), w, http.StatusOK, "proveedor.html", map[string]any{
			"Proveedores": rows,
		})
	}
}

// ProveedorCreate shows the create form on GET and inserts on POST.
func ProveedorCreate(proveedores catalog.ProveedorRepository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			rn.HTML(r.Context(), w, http.StatusOK, "agregar_proveedor.html", map[string]any{})
			return
		}

		var req proveedorRequest
		if err := validators.DecodeForm(r, &req); err != nil {
			rn.HTML(r.Context(), w, http.StatusOK, "agregar_proveedor.html", map[string]any{
				"Error": msgFormulario,
			})
			return
		}

		proveedor := models.Proveedor{
			Nombre:       req.Nombre,
			Telefono:     req.Telefono,
			Correo:       req.Correo,
			Direccion:    req.Direccion,
			TipoProducto: req.TipoProducto,
			CreadoPor:    creadoPor(r),
		}
		if err := proveedores.Create(r.Context(), &proveedor); err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		responses.Redirect(w, r, "/proveedor")
	}
}

// ProveedorEdit loads the row on GET and overwrites the editable fields on
// POST.
func ProveedorEdit(proveedores catalog.ProveedorRepository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseParamInt64(r, "id")
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}

		if r.Method == http.MethodGet {
			proveedor, err := proveedores.FindByID(r.Context(), id)
			if err != nil {
				rn.Error(r.Context(), logg, w, err)
				return
			}
			rn.HTML(r.Context(), w, http.StatusOK, "editar_proveedor.html", map[string]any{
				"Proveedor": proveedor,
			})
			return
		}

		var req proveedorRequest
		if err := validators.DecodeForm(r, &req); err != nil {
			proveedor, ferr := proveedores.FindByID(r.Context(), id)
			if ferr != nil {
				rn.Error(r.Context(), logg, w, ferr)
				return
			}
			rn.HTML(r.Context(), w, http.StatusOK, "editar_proveedor.html", map[string]any{
				"Proveedor": proveedor,
				"Error":     msgFormulario,
			})
			return
		}

		proveedor := models.Proveedor{
			ID:           id,
			Nombre:       req.Nombre,
			Telefono:     req.Telefono,
			Correo:       req.Correo,
			Direccion:    req.Direccion,
			TipoProducto: req.TipoProducto,
		}
		if err := proveedores.Update(r.Context(), &proveedor); err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		responses.Redirect(w, r, "/proveedor")
	}
}

// ProveedorDelete hard-deletes the row; unknown ids are silent no-ops.
func ProveedorDelete(proveedores catalog.ProveedorRepository, rn *responses.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseParamInt64(r, "id")
		if err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		if err := proveedores.Delete(r.Context(), id); err != nil {
			rn.Error(r.Context(), logg, w, err)
			return
		}
		responses.Redirect(w, r, "/proveedor")
	}
}
