package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// layouts de fecha que se han visto en las respuestas del backend.
var layoutsFecha = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseFecha intenta cada layout conocido; cadena vacía o irreconocible → nil.
func parseFecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range layoutsFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func mapOrden(d dto.OrdenDTO) entity.Orden {
	return entity.Orden{
		ID:            d.ID,
		NombreCliente: d.NombreCliente,
		Placa:         d.Placa,
		Servicio:      d.Servicio,
		Subservicio:   d.Subservicio,
		Estado:        entity.EstadoOrden(d.Estado),
		FechaInicio:   parseFecha(d.FechaInicio),
		FechaFin:      parseFecha(d.FechaFin),
	}
}

// ListarOrdenes GET /orden/{estado}: la lista reflejada del estado autoritativo
// del servidor. ok:false se trata como lista vacía, igual que la app.
func (c *Client) ListarOrdenes(ctx context.Context, estado entity.EstadoOrden) ([]entity.Orden, error) {
	var out dto.OrdenesResponse
	if err := c.getJSON(ctx, c.endpoint("orden", rutaLista(estado)), &out); err != nil {
		return nil, err
	}
	if !out.Ok {
		return nil, nil
	}
	ordenes := make([]entity.Orden, 0, len(out.Ordenes))
	for _, d := range out.Ordenes {
		ordenes = append(ordenes, mapOrden(d))
	}
	return ordenes, nil
}

// rutaLista las rutas de lista van en plural (asignadas, finalizadas)
// salvo en_proceso que queda tal cual.
func rutaLista(estado entity.EstadoOrden) string {
	switch estado {
	case entity.OrdenAsignada:
		return "asignadas"
	case entity.OrdenFinalizada:
		return "finalizadas"
	default:
		return string(entity.OrdenEnProceso)
	}
}

// OrdenesTecnico GET /tecnico/ordenes: pendientes del técnico autenticado.
func (c *Client) OrdenesTecnico(ctx context.Context) ([]entity.Orden, error) {
	var out dto.OrdenesResponse
	if err := c.getJSON(ctx, c.endpoint("tecnico", "ordenes"), &out); err != nil {
		return nil, err
	}
	ordenes := make([]entity.Orden, 0, len(out.Ordenes))
	for _, d := range out.Ordenes {
		ordenes = append(ordenes, mapOrden(d))
	}
	return ordenes, nil
}

// EliminarOrden DELETE /orden/asignadas/{id}. Devuelve el msg del servidor en
// éxito; en rechazo el error transporta el msg literal, sin interpretar.
func (c *Client) EliminarOrden(ctx context.Context, idOrden int) (string, error) {
	var out dto.Envelope
	err := c.sendJSON(ctx, http.MethodDelete, c.endpoint("orden", "asignadas", strconv.Itoa(idOrden)), nil, &out)
	if err != nil {
		return "", err
	}
	if !out.Ok {
		return "", &Error{Status: http.StatusOK, Mensaje: out.Msg}
	}
	return out.Msg, nil
}

// IniciarProceso PUT /{modulo}/iniciar/{id_orden}: arranca el sub-workflow del
// módulo (identificacion, historial, certificados, contratos).
func (c *Client) IniciarProceso(ctx context.Context, modulo string, idOrden int) error {
	var out dto.Envelope
	err := c.sendJSON(ctx, http.MethodPut, c.endpoint(modulo, "iniciar", strconv.Itoa(idOrden)), nil, &out)
	if err != nil {
		return err
	}
	if !out.Ok && out.Msg != "" {
		return fmt.Errorf("api: iniciar %s: %s", modulo, out.Msg)
	}
	return nil
}
