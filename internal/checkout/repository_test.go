package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dvillegas/postres-backend/internal/cart"
	"github.com/dvillegas/postres-backend/internal/catalog"
	"github.com/dvillegas/postres-backend/pkg/db/models"
)

func setupCheckoutTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS producto (
  id_producto INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre_producto TEXT NOT NULL,
  descripcion TEXT,
  imagen TEXT,
  precio NUMERIC NOT NULL DEFAULT 0,
  stock INTEGER NOT NULL DEFAULT 0,
  fecha_vencimiento DATE,
  usuario_d_creacion TEXT NOT NULL,
  fecha_hora_creacion DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS comprador (
  id_comprador INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL,
  correo TEXT,
  telefono TEXT,
  direccion TEXT,
  usuario_d_creacion TEXT NOT NULL,
  fecha_hora_creacion DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS venta (
  id_venta INTEGER PRIMARY KEY AUTOINCREMENT,
  id_comprador INTEGER NOT NULL,
  fecha_venta DATE NOT NULL,
  total NUMERIC NOT NULL DEFAULT 0,
  usuario_d_creacion TEXT NOT NULL,
  fecha_hora_creacion DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS venta_detalle (
  id_venta_detalle INTEGER PRIMARY KEY AUTOINCREMENT,
  id_venta INTEGER NOT NULL,
  id_producto INTEGER,
  cantidad INTEGER NOT NULL,
  precio_unitario NUMERIC NOT NULL,
  subtotal NUMERIC NOT NULL,
  usuario_d_creacion TEXT NOT NULL,
  fecha_hora_creacion DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func TestExecuteAgainstDatabase(t *testing.T) {
	db := setupCheckoutTestDB(t)
	productos := catalog.NewProductoRepository(db)
	ctx := context.Background()

	require.NoError(t, productos.Create(ctx, &models.Producto{
		Nombre:    "Torta",
		Precio:    precio("5"),
		CreadoPor: "admin",
	}))

	svc, err := NewService(gormTxRunner{db: db}, NewRepository(db), productos, nil)
	require.NoError(t, err)

	carrito := cart.Cart{}.Add("Torta", precio("5"), "")
	carrito, _ = carrito.Adjust("Torta", cart.AccionSumar)
	carrito = carrito.Add("Flan", precio("3"), "")

	venta, err := svc.Execute(ctx, Input{Nombre: "Ana", Direccion: "Calle 1"}, carrito, "Ana")
	require.NoError(t, err)
	require.NotZero(t, venta.ID)

	var detalles []models.VentaDetalle
	require.NoError(t, db.Where("id_venta = ?", venta.ID).Order("id_venta_detalle").Find(&detalles).Error)
	require.Len(t, detalles, 2)
	assert.NotNil(t, detalles[0].ProductoID)
	assert.Nil(t, detalles[1].ProductoID)
	assert.True(t, detalles[0].Subtotal.Equal(precio("10")))
	assert.True(t, detalles[1].Subtotal.Equal(precio("3")))

	var stored models.Venta
	require.NoError(t, db.First(&stored, "id_venta = ?", venta.ID).Error)
	assert.True(t, stored.Total.Equal(precio("13")))
}

func TestExecuteRollsBackOnResolveFailure(t *testing.T) {
	db := setupCheckoutTestDB(t)
	ctx := context.Background()

	boom := errors.New("lookup failed")
	svc, err := NewService(gormTxRunner{db: db}, NewRepository(db), failingProductos{err: boom}, nil)
	require.NoError(t, err)

	carrito := cart.Cart{}.Add("Torta", precio("5"), "")
	_, err = svc.Execute(ctx, Input{Nombre: "Ana"}, carrito, "Ana")
	require.ErrorIs(t, err, boom)

	var compradores int64
	require.NoError(t, db.Model(&models.Comprador{}).Count(&compradores).Error)
	assert.Zero(t, compradores, "comprador insert should have been rolled back")

	var ventas int64
	require.NoError(t, db.Model(&models.Venta{}).Count(&ventas).Error)
	assert.Zero(t, ventas, "venta insert should have been rolled back")
}

type failingProductos struct {
	err error
}

func (f failingProductos) WithTx(tx *gorm.DB) catalog.ProductoRepository { return f }

func (f failingProductos) List(ctx context.Context) ([]models.Producto, error) { return nil, nil }

func (f failingProductos) FindByID(ctx context.Context, id int64) (*models.Producto, error) {
	return nil, nil
}

func (f failingProductos) FindIDByNombre(ctx context.Context, nombre string) (*int64, error) {
	return nil, f.err
}

func (f failingProductos) Create(ctx context.Context, producto *models.Producto) error { return nil }
func (f failingProductos) Update(ctx context.Context, producto *models.Producto) error { return nil }
func (f failingProductos) Delete(ctx context.Context, id int64) error                  { return nil }
