package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	producto := `
CREATE TABLE IF NOT EXISTS producto (
  id_producto INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre_producto TEXT NOT NULL,
  descripcion TEXT,
  imagen TEXT,
  precio NUMERIC NOT NULL DEFAULT 0,
  stock INTEGER NOT NULL DEFAULT 0,
  fecha_vencimiento DATE,
  usuario_d_creacion TEXT NOT NULL,
  fecha_hora_creacion DATETIME
);`
	proveedor := `
CREATE TABLE IF NOT EXISTS proveedor (
  id_proveedor INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL,
  telefono TEXT,
  correo TEXT,
  direccion TEXT,
  tipo_producto TEXT,
  usuario_d_creacion TEXT NOT NULL,
  fecha_hora_creacion DATETIME
);`
	require.NoError(t, db.Exec(producto).Error)
	require.NoError(t, db.Exec(proveedor).Error)

	return db
}
