package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// ContactoCaso GET /identificacion/contacto/{id_orden}: persona del ticket.
// Sin persona devuelve nil sin error.
func (c *Client) ContactoCaso(ctx context.Context, idOrden int) (*entity.Persona, error) {
	var out dto.ContactoResponse
	if err := c.getJSON(ctx, c.endpoint("identificacion", "contacto", strconv.Itoa(idOrden)), &out); err != nil {
		return nil, err
	}
	if !out.Ok || out.Persona == nil {
		return nil, nil
	}
	p := mapPersona(*out.Persona)
	return &p, nil
}

// TraerCaso GET /identificacion/{id_orden}: el caso tal como está guardado.
func (c *Client) TraerCaso(ctx context.Context, idOrden int) (*dto.CasoResponse, error) {
	var out dto.CasoResponse
	if err := c.getJSON(ctx, c.endpoint("identificacion", strconv.Itoa(idOrden)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConsultarANT GET /identificacion/consultar/ant/{placa}: proxy del registro
// vehicular. ok:false o vehiculo nulo no es error (dispara el fallback manual).
func (c *Client) ConsultarANT(ctx context.Context, placa string) (*dto.ConsultaANTResponse, error) {
	var out dto.ConsultaANTResponse
	if err := c.getJSON(ctx, c.endpoint("identificacion", "consultar", "ant", placa), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GuardarCaso PUT /identificacion/{id_orden}: sobreescritura idempotente del
// borrador completo; el último guardado gana.
func (c *Client) GuardarCaso(ctx context.Context, idOrden int, in dto.GuardarCasoRequest) error {
	var out dto.Envelope
	if err := c.sendJSON(ctx, http.MethodPut, c.endpoint("identificacion", strconv.Itoa(idOrden)), in, &out); err != nil {
		return err
	}
	if !out.Ok && out.Msg != "" {
		return &Error{Status: http.StatusOK, Mensaje: out.Msg}
	}
	return nil
}

// FinalizarCaso PUT /identificacion/finalizar/{id_orden}: transición terminal.
func (c *Client) FinalizarCaso(ctx context.Context, idOrden int, conclusiones string) error {
	var out dto.Envelope
	in := dto.FinalizarCasoRequest{Conclusiones: conclusiones}
	if err := c.sendJSON(ctx, http.MethodPut, c.endpoint("identificacion", "finalizar", strconv.Itoa(idOrden)), in, &out); err != nil {
		return err
	}
	if !out.Ok && out.Msg != "" {
		return &Error{Status: http.StatusOK, Mensaje: out.Msg}
	}
	return nil
}

// SubirFoto POST multipart /identificacion/{id_orden}/foto/{tipo}.
// Cada subida es una operación aislada de un solo disparo: su fallo no
// revierte las demás ni bloquea Guardar/Finalizar.
func (c *Client) SubirFoto(ctx context.Context, idOrden int, tipo entity.TipoFoto, nombre string, contenido io.Reader, descripcion string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	parte, err := w.CreateFormFile("foto", nombre)
	if err != nil {
		return fmt.Errorf("api: armar multipart: %w", err)
	}
	if _, err := io.Copy(parte, contenido); err != nil {
		return fmt.Errorf("api: copiar foto: %w", err)
	}
	if err := w.WriteField("descripcion", descripcion); err != nil {
		return fmt.Errorf("api: campo descripcion: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("api: cerrar multipart: %w", err)
	}

	rawURL := c.endpoint("identificacion", strconv.Itoa(idOrden), "foto", string(tipo))
	return c.do(ctx, http.MethodPost, rawURL, &buf, w.FormDataContentType(), nil)
}

// GuardarDescripcionFoto PUT /identificacion/foto-detalle/{id}.
func (c *Client) GuardarDescripcionFoto(ctx context.Context, idFoto int, descripcion string) error {
	in := dto.DescripcionFotoRequest{Descripcion: descripcion}
	return c.sendJSON(ctx, http.MethodPut, c.endpoint("identificacion", "foto-detalle", strconv.Itoa(idFoto)), in, nil)
}

// URLPDF arma la URL firmada del PDF del caso. El render es del servidor; el
// cliente solo abre la URL.
func (c *Client) URLPDF(idOrden int) string {
	return c.endpoint("identificacion", "pdf", strconv.Itoa(idOrden)) + "?token=" + url.QueryEscape(c.token)
}
