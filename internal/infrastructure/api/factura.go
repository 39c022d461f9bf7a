package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// FacturasPendientes GET /factura/listar-pendientes.
func (c *Client) FacturasPendientes(ctx context.Context) ([]entity.FacturaPendiente, error) {
	var out dto.FacturasPendientesResponse
	if err := c.getJSON(ctx, c.endpoint("factura", "listar-pendientes"), &out); err != nil {
		return nil, err
	}
	if !out.Ok {
		return nil, nil
	}
	facturas := make([]entity.FacturaPendiente, 0, len(out.Facturas))
	for _, f := range out.Facturas {
		facturas = append(facturas, entity.FacturaPendiente{
			ID:                 f.ID,
			RazonSocial:        f.RazonSocial,
			Identificacion:     f.Identificacion,
			TipoIdentificacion: f.TipoIdentificacion,
			Servicio:           f.Servicio,
			Subservicio:        f.Subservicio,
			Subtotal:           f.Subtotal,
			IVA:                f.IVA,
			Total:              f.Total,
		})
	}
	return facturas, nil
}

// TraerFactura GET /factura/traerfactura/{id}: cabecera más detalles de la
// factura pendiente, tal como viajan (el use case arma el borrador).
func (c *Client) TraerFactura(ctx context.Context, idFactura int) (*dto.TraerFacturaResponse, error) {
	var out dto.TraerFacturaResponse
	if err := c.getJSON(ctx, c.endpoint("factura", "traerfactura", strconv.Itoa(idFactura)), &out); err != nil {
		return nil, err
	}
	if !out.Ok {
		return nil, &Error{Status: http.StatusOK, Mensaje: out.Msg}
	}
	return &out, nil
}

// FinalizarFactura PUT /factura/finalizar/{id}: emite la factura con los
// totales ya calculados. Tras el ok la copia local queda de solo lectura.
func (c *Client) FinalizarFactura(ctx context.Context, idFactura int, in dto.FinalizarFacturaRequest) error {
	var out dto.Envelope
	if err := c.sendJSON(ctx, http.MethodPut, c.endpoint("factura", "finalizar", strconv.Itoa(idFactura)), in, &out); err != nil {
		return err
	}
	if !out.Ok {
		return &Error{Status: http.StatusOK, Mensaje: out.Msg}
	}
	return nil
}

// CrearProforma POST /proformadir: proforma directa en un solo paso.
func (c *Client) CrearProforma(ctx context.Context, in dto.CrearProformaRequest) error {
	var out dto.Envelope
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("proformadir"), in, &out); err != nil {
		return err
	}
	if !out.Ok && out.Msg != "" {
		return &Error{Status: http.StatusOK, Mensaje: out.Msg}
	}
	return nil
}
