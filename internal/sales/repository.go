package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dvillegas/postres-backend/internal/repo"
)

// VentaResumen is one row of the sales listing, joined with the buyer name.
type VentaResumen struct {
	ID        int64           `gorm:"column:id"`
	Comprador string          `gorm:"column:comprador"`
	Fecha     time.Time       `gorm:"column:fecha"`
	Total     decimal.Decimal `gorm:"column:total"`
	CreadoPor string          `gorm:"column:usuario_creacion"`
	CreadoEn  time.Time       `gorm:"column:fecha_creacion"`
}

// DetalleLinea is one line of a sale's detail view, joined with the product
// name. Producto is empty when the detail row lost its catalog reference.
type DetalleLinea struct {
	Producto string          `gorm:"column:producto"`
	Cantidad int             `gorm:"column:cantidad"`
	Precio   decimal.Decimal `gorm:"column:precio"`
	Subtotal decimal.Decimal `gorm:"column:subtotal"`
}

// Repository reads the sales review screens.
type Repository interface {
	List(ctx context.Context) ([]VentaResumen, error)
	DetalleByVenta(ctx context.Context, ventaID int64) ([]DetalleLinea, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a sales repository on the provided connection.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) List(ctx context.Context) ([]VentaResumen, error) {
	var ventas []VentaResumen
	err := r.DB(ctx).
		Table("venta AS v").
		Select(`v.id_venta AS id,
			c.nombre AS comprador,
			v.fecha_venta AS fecha,
			v.total AS total,
			v.usuario_d_creacion AS usuario_creacion,
			v.fecha_hora_creacion AS fecha_creacion`).
		Joins("INNER JOIN comprador c ON v.id_comprador = c.id_comprador").
		Order("v.id_venta DESC").
		Scan(&ventas).Error
	return ventas, err
}

func (r *repository) DetalleByVenta(ctx context.Context, ventaID int64) ([]DetalleLinea, error) {
	var detalle []DetalleLinea
	err := r.DB(ctx).
		Table("venta_detalle AS d").
		Select(`COALESCE(p.nombre_producto, '') AS producto,
			d.cantidad AS cantidad,
			d.precio_unitario AS precio,
			d.subtotal AS subtotal`).
		Joins("LEFT JOIN producto p ON d.id_producto = p.id_producto").
		Where("d.id_venta = ?", ventaID).
		Order("d.id_venta_detalle").
		Scan(&detalle).Error
	return detalle, err
}
