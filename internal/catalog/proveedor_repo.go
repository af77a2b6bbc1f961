package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dvillegas/postres-backend/internal/repo"
	"github.com/dvillegas/postres-backend/pkg/db/models"
)

// ProveedorRepository is the persistence surface for suppliers.
type ProveedorRepository interface {
	WithTx(tx *gorm.DB) ProveedorRepository
	List(ctx context.Context) ([]models.Proveedor, error)
	FindByID(ctx context.Context, id int64) (*models.Proveedor, error)
	Create(ctx context.Context, proveedor *models.Proveedor) error
	Update(ctx context.Context, proveedor *models.Proveedor) error
	Delete(ctx context.Context, id int64) error
}

type proveedorRepository struct {
	repo.Base
}

// NewProveedorRepository builds a supplier repository on the provided connection.
func NewProveedorRepository(db *gorm.DB) ProveedorRepository {
	return &proveedorRepository{Base: repo.NewBase(db)}
}

func (r *proveedorRepository) WithTx(tx *gorm.DB) ProveedorRepository {
	if tx == nil {
		return r
	}
	return &proveedorRepository{Base: repo.NewBase(tx)}
}

func (r *proveedorRepository) List(ctx context.Context) ([]models.Proveedor, error) {
	var proveedores []models.Proveedor
	err := r.DB(ctx).Order("id_proveedor").Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepository) FindByID(ctx context.Context, id int64) (*models.Proveedor, error) {
	var proveedor models.Proveedor
	err := r.DB(ctx).Where("id_proveedor = ?", id).First(&proveedor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &proveedor, nil
}

func (r *proveedorRepository) Create(ctx context.Context, proveedor *models.Proveedor) error {
	return r.DB(ctx).Create(proveedor).Error
}

func (r *proveedorRepository) Update(ctx context.Context, proveedor *models.Proveedor) error {
	return r.DB(ctx).Model(&models.Proveedor{}).
		Where("id_proveedor = ?", proveedor.ID).
		Updates(map[string]any{
			"nombre":        proveedor.Nombre,
			"telefono":      proveedor.Telefono,
			"correo":        proveedor.Correo,
			"direccion":     proveedor.Direccion,
			"tipo_producto": proveedor.TipoProducto,
		}).Error
}

func (r *proveedorRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id_proveedor = ?", id).Delete(&models.Proveedor{}).Error
}
