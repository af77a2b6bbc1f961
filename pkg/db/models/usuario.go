package models

// Usuario is a backoffice login row. Credentials are stored in plaintext,
// matching the legacy schema this app inherits.
type Usuario struct {
	ID         int64  `gorm:"column:id_usuario;primaryKey;autoIncrement"`
	Nombre     string `gorm:"column:nombre;not null"`
	Contrasena string `gorm:"column:contrasena;not null"`
}

func (Usuario) TableName() string { return "usuario" }
