package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta is a sale header owned by a Comprador.
type Venta struct {
	ID          int64           `gorm:"column:id_venta;primaryKey;autoIncrement"`
	CompradorID int64           `gorm:"column:id_comprador;not null"`
	FechaVenta  time.Time       `gorm:"column:fecha_venta;type:date;not null"`
	Total       decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null"`
	CreadoPor   string          `gorm:"column:usuario_d_creacion;not null"`
	CreadoEn    time.Time       `gorm:"column:fecha_hora_creacion;autoCreateTime"`

	Detalles []VentaDetalle `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "venta" }
