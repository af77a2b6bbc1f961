package checkout

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dvillegas/postres-backend/internal/cart"
	"github.com/dvillegas/postres-backend/internal/catalog"
	"github.com/dvillegas/postres-backend/pkg/db/models"
	"github.com/dvillegas/postres-backend/pkg/logger"
)

// ventaDate keeps the calendar day of now in its own zone. Truncating
// against the epoch would shift the date on servers away from UTC.
func ventaDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Input carries the contact fields submitted with the purchase form.
type Input struct {
	Nombre    string
	Correo    string
	Telefono  string
	Direccion string
}

// Service converts a session cart into persisted comprador, venta, and
// venta_detalle rows.
type Service interface {
	Execute(ctx context.Context, input Input, carrito cart.Cart, usuario string) (*models.Venta, error)
}

type service struct {
	tx        txRunner
	repo      Repository
	productos catalog.ProductoRepository
	logg      *logger.Logger
}

// NewService builds the checkout service.
func NewService(tx txRunner, repo Repository, productos catalog.ProductoRepository, logg *logger.Logger) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if repo == nil {
		return nil, fmt.Errorf("checkout repository required")
	}
	if productos == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{tx: tx, repo: repo, productos: productos, logg: logg}, nil
}

// Execute runs the whole purchase in one transaction: a failure on any insert
// rolls back the comprador and venta rows written before it. An empty cart is
// allowed and produces a zero-total venta with no detail rows.
func (s *service) Execute(ctx context.Context, input Input, carrito cart.Cart, usuario string) (*models.Venta, error) {
	if usuario == "" {
		usuario = "admin"
	}

	var result *models.Venta
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		productos := s.productos.WithTx(tx)

		comprador := &models.Comprador{
			Nombre:    input.Nombre,
			Correo:    input.Correo,
			Telefono:  input.Telefono,
			Direccion: input.Direccion,
			CreadoPor: usuario,
		}
		if err := repo.CreateComprador(ctx, comprador); err != nil {
			return fmt.Errorf("saving comprador: %w", err)
		}

		venta := &models.Venta{
			CompradorID: comprador.ID,
			FechaVenta:  ventaDate(time.Now()),
			Total:       carrito.Total(),
			CreadoPor:   usuario,
		}
		if err := repo.CreateVenta(ctx, venta); err != nil {
			return fmt.Errorf("saving venta: %w", err)
		}

		detalles := make([]models.VentaDetalle, 0, len(carrito))
		for _, line := range carrito {
			productoID, err := productos.FindIDByNombre(ctx, line.Titulo)
			if err != nil {
				return fmt.Errorf("resolving producto %q: %w", line.Titulo, err)
			}
			if productoID == nil && s.logg != nil {
				lctx := s.logg.WithField(ctx, "producto", line.Titulo)
				s.logg.Warn(lctx, "cart line matches no catalog row, detail saved without product reference")
			}
			detalles = append(detalles, models.VentaDetalle{
				VentaID:        venta.ID,
				ProductoID:     productoID,
				Cantidad:       line.Cantidad,
				PrecioUnitario: line.Precio,
				Subtotal:       line.Subtotal(),
				CreadoPor:      usuario,
			})
		}
		if err := repo.CreateDetalles(ctx, detalles); err != nil {
			return fmt.Errorf("saving venta detalle: %w", err)
		}

		result = venta
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
