package models

import "time"

// Comprador captures the contact info submitted at checkout. A fresh row is
// written per purchase; buyers are never deduplicated.
type Comprador struct {
	ID        int64     `gorm:"column:id_comprador;primaryKey;autoIncrement"`
	Nombre    string    `gorm:"column:nombre;not null"`
	Correo    string    `gorm:"column:correo"`
	Telefono  string    `gorm:"column:telefono"`
	Direccion string    `gorm:"column:direccion"`
	CreadoPor string    `gorm:"column:usuario_d_creacion;not null"`
	CreadoEn  time.Time `gorm:"column:fecha_hora_creacion;autoCreateTime"`
}

func (Comprador) TableName() string { return "comprador" }
