package api

import (
	"context"
	"net/http"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
)

// Login autentica contra POST /auth/login. Se llama sobre el cliente sin
// sesión; el token devuelto alimenta ConToken.
func (c *Client) Login(ctx context.Context, usuario, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Usuario: usuario, Password: password}
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("auth", "login"), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
