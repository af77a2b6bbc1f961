package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a catalog item managed through the admin screens.
type Producto struct {
	ID               int64           `gorm:"column:id_producto;primaryKey;autoIncrement"`
	Nombre           string          `gorm:"column:nombre_producto;not null"`
	Descripcion      string          `gorm:"column:descripcion"`
	Imagen           string          `gorm:"column:imagen"`
	Precio           decimal.Decimal `gorm:"column:precio;type:numeric(10,2);not null"`
	Stock            int             `gorm:"column:stock;not null;default:0"`
	FechaVencimiento *time.Time      `gorm:"column:fecha_vencimiento;type:date"`
	CreadoPor        string          `gorm:"column:usuario_d_creacion;not null"`
	CreadoEn         time.Time       `gorm:"column:fecha_hora_creacion;autoCreateTime"`
}

func (Producto) TableName() string { return "producto" }
