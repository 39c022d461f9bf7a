package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// usuarioDTO entrada de GET /usuarios y de los listados de asignados.
type usuarioDTO struct {
	ID          int    `json:"id"`
	Nombres     string `json:"nombres"`
	Apellidos   string `json:"apellidos"`
	Correo      string `json:"correo"`
	Telefono    string `json:"telefono"`
	TipoUsuario string `json:"tipo_usuario"`
	TipoTecnico string `json:"tipo_tecnico"`
	Estado      int    `json:"estado"`
}

func mapUsuario(d usuarioDTO) entity.Usuario {
	return entity.Usuario{
		ID:          d.ID,
		Nombres:     d.Nombres,
		Apellidos:   d.Apellidos,
		Correo:      d.Correo,
		Telefono:    d.Telefono,
		TipoUsuario: d.TipoUsuario,
		TipoTecnico: d.TipoTecnico,
		Activo:      d.Estado == 1,
	}
}

// ListarUsuarios GET /usuarios.
func (c *Client) ListarUsuarios(ctx context.Context) ([]entity.Usuario, error) {
	var out []usuarioDTO
	if err := c.getJSON(ctx, c.endpoint("usuarios"), &out); err != nil {
		return nil, err
	}
	usuarios := make([]entity.Usuario, 0, len(out))
	for _, u := range out {
		usuarios = append(usuarios, mapUsuario(u))
	}
	return usuarios, nil
}

// AsignadosPorServicio GET /asginacion/servicio/{id}. El typo "asginacion"
// es del backend; la ruta se conserva tal cual.
func (c *Client) AsignadosPorServicio(ctx context.Context, idServicio int) ([]entity.Usuario, error) {
	var out []usuarioDTO
	if err := c.getJSON(ctx, c.endpoint("asginacion", "servicio", strconv.Itoa(idServicio)), &out); err != nil {
		return nil, err
	}
	usuarios := make([]entity.Usuario, 0, len(out))
	for _, u := range out {
		usuarios = append(usuarios, mapUsuario(u))
	}
	return usuarios, nil
}

// AsignarTecnico POST /asginacion/asignar. Devuelve el mensaje del servidor.
func (c *Client) AsignarTecnico(ctx context.Context, idServicio, idUsuario int) (string, error) {
	in := map[string]int{
		"id_usuario": idUsuario,
		"id_service": idServicio,
	}
	var out struct {
		dto.Envelope
		Mensaje string `json:"mensaje"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("asginacion", "asignar"), in, &out); err != nil {
		return "", err
	}
	return out.Mensaje, nil
}
