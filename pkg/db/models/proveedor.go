package models

import "time"

// Proveedor is a supplier row; it has no modeled relation to Producto.
type Proveedor struct {
	ID           int64     `gorm:"column:id_proveedor;primaryKey;autoIncrement"`
	Nombre       string    `gorm:"column:nombre;not null"`
	Telefono     string    `gorm:"column:telefono"`
	Correo       string    `gorm:"column:correo"`
	Direccion    string    `gorm:"column:direccion"`
	TipoProducto string    `gorm:"column:tipo_producto"`
	CreadoPor    string    `gorm:"column:usuario_d_creacion;not null"`
	CreadoEn     time.Time `gorm:"column:fecha_hora_creacion;autoCreateTime"`
}

func (Proveedor) TableName() string { return "proveedor" }
