package checkout

import (
	"context"

	"gorm.io/gorm"

	"github.com/dvillegas/postres-backend/internal/repo"
	"github.com/dvillegas/postres-backend/pkg/db/models"
)

// Repository writes the three tables a purchase touches.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateComprador(ctx context.Context, comprador *models.Comprador) error
	CreateVenta(ctx context.Context, venta *models.Venta) error
	CreateDetalles(ctx context.Context, detalles []models.VentaDetalle) error
}

type repository struct {
	repo.Base
}

// NewRepository builds a checkout repository backed by the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) CreateComprador(ctx context.Context, comprador *models.Comprador) error {
	return r.DB(ctx).Create(comprador).Error
}

func (r *repository) CreateVenta(ctx context.Context, venta *models.Venta) error {
	return r.DB(ctx).Omit("Detalles").Create(venta).Error
}

func (r *repository) CreateDetalles(ctx context.Context, detalles []models.VentaDetalle) error {
	if len(detalles) == 0 {
		return nil
	}
	return r.DB(ctx).Create(&detalles).Error
}
