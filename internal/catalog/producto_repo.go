package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dvillegas/postres-backend/internal/repo"
	"github.com/dvillegas/postres-backend/pkg/db/models"
)

// ProductoRepository is the persistence surface for catalog items.
type ProductoRepository interface {
	WithTx(tx *gorm.DB) ProductoRepository
	List(ctx context.Context) ([]models.Producto, error)
	FindByID(ctx context.Context, id int64) (*models.Producto, error)
	FindIDByNombre(ctx context.Context, nombre string) (*int64, error)
	Create(ctx context.Context, producto *models.Producto) error
	Update(ctx context.Context, producto *models.Producto) error
	Delete(ctx context.Context, id int64) error
}

type productoRepository struct {
	repo.Base
}

// NewProductoRepository builds a product repository on the provided connection.
func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepository{Base: repo.NewBase(db)}
}

func (r *productoRepository) WithTx(tx *gorm.DB) ProductoRepository {
	if tx == nil {
		return r
	}
	return &productoRepository{Base: repo.NewBase(tx)}
}

func (r *productoRepository) List(ctx context.Context) ([]models.Producto, error) {
	var productos []models.Producto
	err := r.DB(ctx).Order("id_producto").Find(&productos).Error
	return productos, err
}

// FindByID returns (nil, nil) for a missing row; the edit form renders empty
// instead of failing.
func (r *productoRepository) FindByID(ctx context.Context, id int64) (*models.Producto, error) {
	var producto models.Producto
	err := r.DB(ctx).Where("id_producto = ?", id).First(&producto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &producto, nil
}

// FindIDByNombre resolves a catalog id by exact product name, taking the
// lowest id when several rows share the name. Returns (nil, nil) when the
// name matches nothing.
func (r *productoRepository) FindIDByNombre(ctx context.Context, nombre string) (*int64, error) {
	var producto models.Producto
	err := r.DB(ctx).
		Where("nombre_producto = ?", nombre).
		Order("id_producto").
		First(&producto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &producto.ID, nil
}

func (r *productoRepository) Create(ctx context.Context, producto *models.Producto) error {
	return r.DB(ctx).Create(producto).Error
}

func (r *productoRepository) Update(ctx context.Context, producto *models.Producto) error {
	return r.DB(ctx).Model(&models.Producto{}).
		Where("id_producto = ?", producto.ID).
		Updates(map[string]any{
			"nombre_producto":   producto.Nombre,
			"descripcion":       producto.Descripcion,
			"imagen":            producto.Imagen,
			"precio":            producto.Precio,
			"stock":             producto.Stock,
			"fecha_vencimiento": producto.FechaVencimiento,
		}).Error
}

// Delete is a hard delete; removing a missing id is a silent no-op.
func (r *productoRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id_producto = ?", id).Delete(&models.Producto{}).Error
}
