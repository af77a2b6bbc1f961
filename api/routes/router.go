package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dvillegas/postres-backend/api/controllers"
	"github.com/dvillegas/postres-backend/api/middleware"
	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/internal/auth"
	"github.com/dvillegas/postres-backend/internal/catalog"
	checkoutsvc "github.com/dvillegas/postres-backend/internal/checkout"
	"github.com/dvillegas/postres-backend/internal/sales"
	"github.com/dvillegas/postres-backend/pkg/config"
	"github.com/dvillegas/postres-backend/pkg/db"
	"github.com/dvillegas/postres-backend/pkg/logger"
	"github.com/dvillegas/postres-backend/pkg/metrics"
	"github.com/dvillegas/postres-backend/pkg/redis"
	"github.com/dvillegas/postres-backend/pkg/session"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Cfg         *config.Config
	Logg        *logger.Logger
	Renderer    *responses.Renderer
	Sessions    *session.Manager
	HTTPMetrics *metrics.HTTPMetrics

	DBPinger    db.Pinger
	RedisPinger redis.Pinger

	AuthService     auth.Service
	CheckoutService checkoutsvc.Service
	Productos       catalog.ProductoRepository
	Proveedores     catalog.ProveedorRepository
	Ventas          sales.Repository
}

// NewRouter builds the full route table.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(d.Logg),
		middleware.RequestID(d.Logg),
		middleware.Logging(d.Logg),
		middleware.Metrics(d.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Cfg))
		r.Get("/ready", controllers.HealthReady(d.Cfg, d.DBPinger, d.RedisPinger, d.Logg))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Sessions(d.Sessions, d.Logg))

		r.Get("/", controllers.Index(d.Renderer))
		r.Get("/nosotros", controllers.Nosotros(d.Renderer))
		r.Get("/contacto", controllers.Contacto(d.Renderer))
		r.Post("/contacto", controllers.Contacto(d.Renderer))

		r.Get("/login", controllers.LoginForm(d.Renderer))
		r.Post("/login", controllers.LoginSubmit(d.AuthService, d.Renderer, d.Logg))
		r.Get("/bienvenido", controllers.Bienvenido(d.Renderer))

		r.Get("/producto", controllers.ProductoList(d.Productos, d.Renderer, d.Logg))
		r.Get("/producto_detalle", controllers.ProductoDetalle(d.Renderer))

		r.Post("/agregar_carrito", controllers.CartAdd(d.Logg))
		r.Get("/carrito", controllers.CartView(d.Renderer))
		r.Get("/eliminar_item/{titulo}", controllers.CartRemoveItem())
		r.Post("/actualizar_cantidad", controllers.CartAdjust(d.Logg))
		r.Post("/vaciar_carrito", controllers.CartClear())

		r.Post("/guardar_compra", controllers.CheckoutSubmit(d.CheckoutService, d.Renderer, d.Logg))
		r.Get("/compra_realizada", controllers.CompraRealizada(d.Renderer))

		r.Get("/gestion_productos", controllers.GestionProductos(d.Productos, d.Renderer, d.Logg))
		r.Get("/producto/agregar", controllers.ProductoCreate(d.Productos, d.Renderer, d.Logg))
		r.Post("/producto/agregar", controllers.ProductoCreate(d.Productos, d.Renderer, d.Logg))
		r.Get("/producto/editar/{id}", controllers.ProductoEdit(d.Productos, d.Renderer, d.Logg))
		r.Post("/producto/editar/{id}", controllers.ProductoEdit(d.Productos, d.Renderer, d.Logg))
		r.Get("/producto/eliminar/{id}", controllers.ProductoDelete(d.Productos, d.Renderer, d.Logg))

		r.Get("/proveedor", controllers.ProveedorList(d.Proveedores, d.Renderer, d.Logg))
		r.Get("/proveedor/agregar", controllers.ProveedorCreate(d.Proveedores, d.Renderer, d.Logg))
		r.Post("/proveedor/agregar", controllers.ProveedorCreate(d.Proveedores, d.Renderer, d.Logg))
		r.Get("/proveedor/editar/{id}", controllers.ProveedorEdit(d.Proveedores, d.Renderer, d.Logg))
		r.Post("/proveedor/editar/{id}", controllers.ProveedorEdit(d.Proveedores, d.Renderer, d.Logg))
		r.Get("/proveedor/eliminar/{id}", controllers.ProveedorDelete(d.Proveedores, d.Renderer, d.Logg))

		r.Get("/ventas", controllers.VentasList(d.Ventas, d.Renderer, d.Logg))
		r.Get("/ventas/detalle/{id_venta}", controllers.VentaDetalle(d.Ventas, d.Renderer, d.Logg))
	})

	return r
}
