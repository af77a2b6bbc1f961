package auth

import (
	"context"
	"strconv"
	"strings"
)

// Login outcomes shown verbatim on the login form.
const (
	MsgUsuarioInvalido = "Usuario inválido"
	MsgCredenciales    = "Usuario o contraseña incorrectos"
)

// Result carries the display name of an authenticated user.
type Result struct {
	Nombre string
}

// Service authenticates backoffice users.
type Service interface {
	Login(ctx context.Context, usuario, contrasena string) (*Result, string, error)
}

type service struct {
	usuarios UsuarioRepository
}

// NewService wires the login flow over the usuario repository.
func NewService(usuarios UsuarioRepository) Service {
	return &service{usuarios: usuarios}
}

// Login validates the submitted credentials. The second return value is a
// user-facing failure message in Spanish; it is empty on success. A non-nil
// error means the lookup itself failed.
func (s *service) Login(ctx context.Context, usuario, contrasena string) (*Result, string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(usuario), 10, 64)
	if err != nil {
		return nil, MsgUsuarioInvalido, nil
	}

	row, err := s.usuarios.FindByCredentials(ctx, id, contrasena)
	if err != nil {
		return nil, "", err
	}
	if row == nil {
		return nil, MsgCredenciales, nil
	}
	return &Result{Nombre: row.Nombre}, "", nil
}
