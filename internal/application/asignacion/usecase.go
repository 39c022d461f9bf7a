// Package asignacion asigna técnicos a los servicios del catálogo.
package asignacion

import (
	"context"
	"fmt"

	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// API puerto hacia los endpoints de asignación.
type API interface {
	ListarUsuarios(ctx context.Context) ([]entity.Usuario, error)
	AsignadosPorServicio(ctx context.Context, idServicio int) ([]entity.Usuario, error)
	AsignarTecnico(ctx context.Context, idServicio, idUsuario int) (string, error)
}

// UseCase casos de uso de asignación de técnicos.
type UseCase struct {
	api API
}

// New construye el caso de uso.
func New(api API) *UseCase {
	return &UseCase{api: api}
}

// Tecnicos usuarios de tipo técnico disponibles para asignar.
func (uc *UseCase) Tecnicos(ctx context.Context) ([]entity.Usuario, error) {
	usuarios, err := uc.api.ListarUsuarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("asignacion: listar usuarios: %w", err)
	}
	var tecnicos []entity.Usuario
	for _, u := range usuarios {
		if u.TipoUsuario == "TECNICO" {
			tecnicos = append(tecnicos, u)
		}
	}
	return tecnicos, nil
}

// Asignados técnicos ya asignados al servicio.
func (uc *UseCase) Asignados(ctx context.Context, idServicio int) ([]entity.Usuario, error) {
	usuarios, err := uc.api.AsignadosPorServicio(ctx, idServicio)
	if err != nil {
		return nil, fmt.Errorf("asignacion: asignados de %d: %w", idServicio, err)
	}
	return usuarios, nil
}

// Asignar liga técnico y servicio. Faltar cualquiera de los dos es falla de
// validación local: se bloquea la acción sin tocar la red.
func (uc *UseCase) Asignar(ctx context.Context, idServicio, idUsuario int) (string, error) {
	if idServicio <= 0 || idUsuario <= 0 {
		return "", domain.ErrValidacion
	}
	msg, err := uc.api.AsignarTecnico(ctx, idServicio, idUsuario)
	if err != nil {
		return "", fmt.Errorf("asignacion: asignar: %w", err)
	}
	return msg, nil
}
