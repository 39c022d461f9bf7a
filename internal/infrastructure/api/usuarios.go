package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
)

// CrearUsuario POST /usuarios: alta de una cuenta de acceso. En rechazo el
// backend responde con el campo error; do() lo rescata al *Error.
func (c *Client) CrearUsuario(ctx context.Context, in dto.CrearUsuarioRequest) error {
	var out dto.Envelope
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("usuarios"), in, &out); err != nil {
		return err
	}
	if !out.Ok && out.Msg != "" {
		return &Error{Status: http.StatusOK, Mensaje: out.Msg}
	}
	return nil
}

// EliminarUsuario DELETE /usuarios/{id}.
func (c *Client) EliminarUsuario(ctx context.Context, idUsuario int) (string, error) {
	var out dto.Envelope
	if err := c.sendJSON(ctx, http.MethodDelete, c.endpoint("usuarios", strconv.Itoa(idUsuario)), nil, &out); err != nil {
		return "", err
	}
	if !out.Ok && out.Msg != "" {
		return "", &Error{Status: http.StatusOK, Mensaje: out.Msg}
	}
	return out.Msg, nil
}
