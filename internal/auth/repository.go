package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dvillegas/postres-backend/internal/repo"
	"github.com/dvillegas/postres-backend/pkg/db/models"
)

// UsuarioRepository looks up backoffice login rows.
type UsuarioRepository interface {
	FindByCredentials(ctx context.Context, id int64, contrasena string) (*models.Usuario, error)
}

type usuarioRepository struct {
	repo.Base
}

// NewUsuarioRepository builds a usuario repository on the provided connection.
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{Base: repo.NewBase(db)}
}

// FindByCredentials matches the exact id/password pair; (nil, nil) when no
// row matches.
func (r *usuarioRepository) FindByCredentials(ctx context.Context, id int64, contrasena string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.DB(ctx).
		Where("id_usuario = ? AND contrasena = ?", id, contrasena).
		First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}
