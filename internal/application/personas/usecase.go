// Package personas registra clientes frecuentes. La consulta al Registro
// Civil sigue el mismo patrón que la ANT: dato externo autoritativo con
// digitación manual como fallback cuando no hay match.
package personas

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// API puerto hacia los endpoints de personas.
type API interface {
	ListarPersonas(ctx context.Context) ([]entity.Persona, error)
	ConsultarRegistroCivil(ctx context.Context, cedula string) (nombres, apellidos string, encontrada bool, err error)
	CrearPersona(ctx context.Context, in dto.CrearPersonaRequest) error
}

// UseCase casos de uso de clientes frecuentes.
type UseCase struct {
	api API
}

// New construye el caso de uso.
func New(api API) *UseCase {
	return &UseCase{api: api}
}

// Listar clientes registrados.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Persona, error) {
	personas, err := uc.api.ListarPersonas(ctx)
	if err != nil {
		return nil, fmt.Errorf("personas: listar: %w", err)
	}
	return personas, nil
}

// ConsultarRegistroCivil pre-llena nombres y apellidos desde el Registro
// Civil. Cédula de menos de 10 dígitos falla local; sin match devuelve
// encontrada=false sin error y el operador digita a mano.
func (uc *UseCase) ConsultarRegistroCivil(ctx context.Context, cedula string) (nombres, apellidos string, encontrada bool, err error) {
	if utf8.RuneCountInString(cedula) < 10 {
		return "", "", false, domain.ErrValidacion
	}
	nombres, apellidos, encontrada, err = uc.api.ConsultarRegistroCivil(ctx, cedula)
	if err != nil {
		return "", "", false, fmt.Errorf("personas: consultar registro civil: %w", err)
	}
	return nombres, apellidos, encontrada, nil
}

// Crear registra (o actualiza) la persona. El registro es mutable y no tiene
// ruta de borrado.
func (uc *UseCase) Crear(ctx context.Context, p entity.Persona) error {
	if p.Cedula == "" || p.Nombres == "" {
		return domain.ErrValidacion
	}
	in := dto.CrearPersonaRequest{
		Cedula:    p.Cedula,
		Nombres:   p.Nombres,
		Apellidos: p.Apellidos,
		Telefono:  p.Telefono,
		Direccion: p.Direccion,
		Email:     p.Email,
	}
	if err := uc.api.CrearPersona(ctx, in); err != nil {
		return fmt.Errorf("personas: crear: %w", err)
	}
	return nil
}
