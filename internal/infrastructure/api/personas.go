package api

import (
	"context"
	"net/http"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

func mapPersona(d dto.PersonaDTO) entity.Persona {
	return entity.Persona{
		ID:        d.ID,
		Cedula:    d.Cedula,
		Nombres:   d.Nombres,
		Apellidos: d.Apellidos,
		Telefono:  d.Telefono,
		Direccion: d.Direccion,
		Email:     d.Email,
	}
}

// ListarPersonas GET /personas/listar.
func (c *Client) ListarPersonas(ctx context.Context) ([]entity.Persona, error) {
	var out dto.PersonasResponse
	if err := c.getJSON(ctx, c.endpoint("personas", "listar"), &out); err != nil {
		return nil, err
	}
	personas := make([]entity.Persona, 0, len(out.Personas))
	for _, p := range out.Personas {
		personas = append(personas, mapPersona(p))
	}
	return personas, nil
}

// BuscarPersonas GET /proformadir/buscar/{texto}: autocompletado por cédula.
func (c *Client) BuscarPersonas(ctx context.Context, texto string) ([]entity.Persona, error) {
	var out dto.BuscarPersonasResponse
	if err := c.getJSON(ctx, c.endpoint("proformadir", "buscar", texto), &out); err != nil {
		return nil, err
	}
	personas := make([]entity.Persona, 0, len(out.Resultados))
	for _, p := range out.Resultados {
		personas = append(personas, mapPersona(p))
	}
	return personas, nil
}

// ConsultarRegistroCivil GET /personas/consultar/cedula/{cedula}.
// Sin match devuelve encontrada=false sin error: el caller cae a digitación manual.
func (c *Client) ConsultarRegistroCivil(ctx context.Context, cedula string) (nombres, apellidos string, encontrada bool, err error) {
	var out dto.RegistroCivilResponse
	if err := c.getJSON(ctx, c.endpoint("personas", "consultar", "cedula", cedula), &out); err != nil {
		return "", "", false, err
	}
	if !out.Ok {
		return "", "", false, nil
	}
	return out.Nombres, out.Apellidos, true, nil
}

// CrearPersona POST /personas/crear.
func (c *Client) CrearPersona(ctx context.Context, in dto.CrearPersonaRequest) error {
	var out dto.Envelope
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("personas", "crear"), in, &out); err != nil {
		return err
	}
	if !out.Ok {
		return &Error{Status: http.StatusOK, Mensaje: out.Msg}
	}
	return nil
}
