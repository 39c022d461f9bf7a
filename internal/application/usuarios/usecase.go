// Package usuarios administra las cuentas de acceso desde la pantalla de
// gestión del admin: listado, alta con validación local y baja por id.
package usuarios

import (
	"context"
	"fmt"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// API puerto hacia los endpoints de usuarios.
type API interface {
	ListarUsuarios(ctx context.Context) ([]entity.Usuario, error)
	CrearUsuario(ctx context.Context, in dto.CrearUsuarioRequest) error
	EliminarUsuario(ctx context.Context, idUsuario int) (string, error)
}

// NuevoUsuario datos del formulario de alta. Todos los campos son
// obligatorios salvo el teléfono.
type NuevoUsuario struct {
	Nombres    string
	Apellidos  string
	Correo     string
	Telefono   string
	Rol        string // "ADMIN" | "TECNICO"
	Contrasena string
}

// UseCase casos de uso de gestión de usuarios.
type UseCase struct {
	api API
}

// New construye el caso de uso.
func New(api API) *UseCase {
	return &UseCase{api: api}
}

// Listar cuentas registradas.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Usuario, error) {
	usuarios, err := uc.api.ListarUsuarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("usuarios: listar: %w", err)
	}
	return usuarios, nil
}

// Crear da de alta la cuenta. Un campo obligatorio vacío bloquea la acción
// local sin tocar la red; el teléfono puede quedar vacío.
func (uc *UseCase) Crear(ctx context.Context, n NuevoUsuario) error {
	if n.Nombres == "" || n.Apellidos == "" || n.Correo == "" || n.Rol == "" || n.Contrasena == "" {
		return domain.ErrValidacion
	}
	in := dto.CrearUsuarioRequest{
		Nombres:    n.Nombres,
		Apellidos:  n.Apellidos,
		Correo:     n.Correo,
		Telefono:   n.Telefono,
		Rol:        n.Rol,
		Contrasena: n.Contrasena,
	}
	if err := uc.api.CrearUsuario(ctx, in); err != nil {
		return fmt.Errorf("usuarios: crear: %w", err)
	}
	return nil
}

// Eliminar da de baja la cuenta. La confirmación es de la pantalla; aquí solo
// se ejecuta.
func (uc *UseCase) Eliminar(ctx context.Context, idUsuario int) (string, error) {
	if idUsuario <= 0 {
		return "", domain.ErrValidacion
	}
	msg, err := uc.api.EliminarUsuario(ctx, idUsuario)
	if err != nil {
		return "", fmt.Errorf("usuarios: eliminar %d: %w", idUsuario, err)
	}
	return msg, nil
}
