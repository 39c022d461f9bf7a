package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/application/session"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
)

type authAPIFake struct {
	resp    *dto.LoginResponse
	llamado bool
}

func (f *authAPIFake) Login(ctx context.Context, usuario, password string) (*dto.LoginResponse, error) {
	f.llamado = true
	return f.resp, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesVaciasFallaLocal(t *testing.T) {
	api := &authAPIFake{}
	uc := session.New(api)

	_, err := uc.Login(context.Background(), "", "secreto")
	assert.ErrorIs(t, err, domain.ErrValidacion)

	_, err = uc.Login(context.Background(), "usuario", "")
	assert.ErrorIs(t, err, domain.ErrValidacion)

	assert.False(t, api.llamado, "credenciales vacías no deben gastar la llamada")
}

func TestLogin_ExitoResuelveDestino(t *testing.T) {
	api := &authAPIFake{resp: &dto.LoginResponse{
		Token: "jwt-de-prueba",
		Usuario: dto.UsuarioDTO{
			ID:          4,
			Nombres:     "María",
			Apellidos:   "Lema",
			TipoUsuario: "TECNICO",
			TipoTecnico: "IDENTIFICACIÓN VEHICULAR",
			Estado:      1,
		},
	}}
	uc := session.New(api)

	sesion, err := uc.Login(context.Background(), "mlema", "secreto")
	require.NoError(t, err)

	assert.Equal(t, "jwt-de-prueba", sesion.Token)
	assert.Equal(t, "María", sesion.Usuario.Nombres)
	assert.True(t, sesion.Usuario.Activo)
	assert.Equal(t, session.DestinoHomeIdentificacion, sesion.Destino,
		"el destino se resuelve una sola vez al login")
}

func TestLogin_SinTokenEsSesionInvalida(t *testing.T) {
	api := &authAPIFake{resp: &dto.LoginResponse{Error: "credenciales incorrectas"}}
	uc := session.New(api)

	_, err := uc.Login(context.Background(), "usuario", "mala")
	assert.ErrorIs(t, err, domain.ErrSesionExpirada)
}

// ──────────────────────────────────────────────────────────────────────────────
// Despacho por rol
// ──────────────────────────────────────────────────────────────────────────────

// El matching del subtipo es por contención normalizada: el backend trae
// tildes y mayúsculas variables.
func TestDestinoParaUsuario(t *testing.T) {
	casos := []struct {
		tipoUsuario string
		tipoTecnico string
		destino     session.Destino
	}{
		{"ADMIN", "", session.DestinoAdmin},
		{"admin", "", session.DestinoAdmin},
		{"TECNICO", "IDENTIFICACIÓN VEHICULAR", session.DestinoHomeIdentificacion},
		{"TECNICO", "Tecnico de identificacion vehicular", session.DestinoHomeIdentificacion},
		{"TECNICO", "DETAILING", session.DestinoHomeDetailing},
		{"TECNICO", "AUTO SERVICIOS", session.DestinoHomeAutoservicios},
		{"TECNICO", "OTRA COSA", session.DestinoHomeGeneral},
		{"TECNICO", "", session.DestinoHomeGeneral},
		{"INVITADO", "", session.DestinoHomeGeneral},
	}
	for _, c := range casos {
		assert.Equal(t, c.destino, session.DestinoParaUsuario(c.tipoUsuario, c.tipoTecnico),
			"rol %q / subtipo %q", c.tipoUsuario, c.tipoTecnico)
	}
}
