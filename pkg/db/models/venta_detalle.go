package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaDetalle is one cart line frozen at checkout time. ProductoID is
// resolved by name when the sale is written and stays NULL when no catalog
// row matched.
type VentaDetalle struct {
	ID             int64           `gorm:"column:id_venta_detalle;primaryKey;autoIncrement"`
	VentaID        int64           `gorm:"column:id_venta;not null"`
	ProductoID     *int64          `gorm:"column:id_producto"`
	Cantidad       int             `gorm:"column:cantidad;not null"`
	PrecioUnitario decimal.Decimal `gorm:"column:precio_unitario;type:numeric(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null"`
	CreadoPor      string          `gorm:"column:usuario_d_creacion;not null"`
	CreadoEn       time.Time       `gorm:"column:fecha_hora_creacion;autoCreateTime"`
}

func (VentaDetalle) TableName() string { return "venta_detalle" }
