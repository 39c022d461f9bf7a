package api

import (
	"context"
	"strconv"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// Servicios GET /tickets/services. El backend responde el array pelado.
func (c *Client) Servicios(ctx context.Context) ([]entity.Servicio, error) {
	var out []dto.ServicioDTO
	if err := c.getJSON(ctx, c.endpoint("tickets", "services"), &out); err != nil {
		return nil, err
	}
	servicios := make([]entity.Servicio, 0, len(out))
	for _, s := range out {
		servicios = append(servicios, entity.Servicio{ID: s.ID, Nombre: s.Nombre})
	}
	return servicios, nil
}

// Subservicios GET /tickets/subservices/{id}.
func (c *Client) Subservicios(ctx context.Context, idServicio int) ([]entity.Subservicio, error) {
	var out []dto.SubservicioDTO
	if err := c.getJSON(ctx, c.endpoint("tickets", "subservices", strconv.Itoa(idServicio)), &out); err != nil {
		return nil, err
	}
	subs := make([]entity.Subservicio, 0, len(out))
	for _, s := range out {
		subs = append(subs, entity.Subservicio{ID: s.ID, IDServicio: idServicio, Nombre: s.Nombre})
	}
	return subs, nil
}

// Establecimientos GET /factura/listar-establecimientos.
func (c *Client) Establecimientos(ctx context.Context) ([]entity.Establecimiento, error) {
	var out dto.EstablecimientosResponse
	if err := c.getJSON(ctx, c.endpoint("factura", "listar-establecimientos"), &out); err != nil {
		return nil, err
	}
	ests := make([]entity.Establecimiento, 0, len(out.Establecimientos))
	for _, e := range out.Establecimientos {
		ests = append(ests, entity.Establecimiento{
			ID:                 e.ID,
			RazonSocial:        e.RazonSocial,
			CodEstablecimiento: e.CodEstablecimiento,
			CodPuntoEmision:    e.CodPuntoEmision,
		})
	}
	return ests, nil
}
