// Package session autentica al usuario y resuelve, una sola vez al login, el
// destino de navegación según su rol. El despacho es un mapeo puro rol/subtipo
// → destino, no condicionales regados en los puntos de llamada.
package session

import (
	"context"
	"fmt"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
	"github.com/pqautoexpert/suite360-movil/pkg/texto"
)

// Destino pantalla inicial a la que se enruta el usuario tras el login.
type Destino string

const (
	DestinoAdmin              Destino = "admin"
	DestinoHomeIdentificacion Destino = "home_identificacion"
	DestinoHomeDetailing      Destino = "home_detailing"
	DestinoHomeAutoservicios  Destino = "home_autoservicios"
	DestinoHomeGeneral        Destino = "home_general"
)

// Sesion identidad autenticada compartida en solo lectura por el resto de
// componentes. Ningún componente la muta después del login.
type Sesion struct {
	Token   string
	Usuario entity.Usuario
	Destino Destino
}

// AuthAPI puerto hacia el endpoint de login.
type AuthAPI interface {
	Login(ctx context.Context, usuario, password string) (*dto.LoginResponse, error)
}

// UseCase caso de uso de sesión.
type UseCase struct {
	api AuthAPI
}

// New construye el caso de uso.
func New(api AuthAPI) *UseCase {
	return &UseCase{api: api}
}

// Login autentica y resuelve el destino. Credenciales vacías fallan local,
// sin gastar la llamada.
func (uc *UseCase) Login(ctx context.Context, usuario, password string) (*Sesion, error) {
	if usuario == "" || password == "" {
		return nil, domain.ErrValidacion
	}
	resp, err := uc.api.Login(ctx, usuario, password)
	if err != nil {
		return nil, fmt.Errorf("session: login: %w", err)
	}
	if resp.Token == "" {
		return nil, domain.ErrSesionExpirada
	}
	u := entity.Usuario{
		ID:          resp.Usuario.ID,
		Nombres:     resp.Usuario.Nombres,
		Apellidos:   resp.Usuario.Apellidos,
		Correo:      resp.Usuario.Correo,
		Telefono:    resp.Usuario.Telefono,
		TipoUsuario: resp.Usuario.TipoUsuario,
		TipoTecnico: resp.Usuario.TipoTecnico,
		Activo:      resp.Usuario.Estado == 1,
	}
	return &Sesion{
		Token:   resp.Token,
		Usuario: u,
		Destino: DestinoParaUsuario(u.TipoUsuario, u.TipoTecnico),
	}, nil
}

// DestinoParaUsuario mapeo puro rol/subtipo → destino. El matching del tipo de
// técnico es por contención normalizada (el backend trae tildes y mayúsculas
// variables: "IDENTIFICACIÓN VEHICULAR").
func DestinoParaUsuario(tipoUsuario, tipoTecnico string) Destino {
	if texto.Igual(tipoUsuario, "ADMIN") {
		return DestinoAdmin
	}
	if texto.Igual(tipoUsuario, "TECNICO") {
		switch {
		case texto.Contiene(tipoTecnico, "identificacion vehicular"):
			return DestinoHomeIdentificacion
		case texto.Contiene(tipoTecnico, "detailing"):
			return DestinoHomeDetailing
		case texto.Contiene(tipoTecnico, "auto servicios"):
			return DestinoHomeAutoservicios
		}
		// Técnico sin subtipo reconocido: menú general
		return DestinoHomeGeneral
	}
	return DestinoHomeGeneral
}
