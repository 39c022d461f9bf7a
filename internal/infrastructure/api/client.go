// Package api implementa el cliente HTTP hacia la API Suite360
// (JSON sobre HTTPS, autenticación Bearer). Es el único colaborador externo
// del núcleo: todos los puertos de application se satisfacen aquí.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/pqautoexpert/suite360-movil/pkg/config"
)

// Error falla de transporte o respuesta no-ok del servidor. Mensaje conserva
// el msg del backend tal cual llegó: se muestra al usuario sin interpretar.
type Error struct {
	Status  int
	Mensaje string
}

func (e *Error) Error() string {
	if e.Mensaje != "" {
		return e.Mensaje
	}
	return fmt.Sprintf("api: respuesta HTTP %d", e.Status)
}

// Client cliente autenticado de la API. El token es estado compartido de solo
// lectura: se fija al construir y no se muta (una sesión nueva crea otro Client).
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New construye el cliente sin sesión (solo sirve para Login).
func New(cfg config.APIConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ConToken deriva un cliente autenticado con el token de la sesión.
func (c *Client) ConToken(token string) *Client {
	return &Client{
		baseURL:    c.baseURL,
		token:      token,
		httpClient: c.httpClient,
	}
}

// Token devuelve el token de sesión (lo necesita la URL firmada del PDF).
func (c *Client) Token() string { return c.token }

// endpoint arma la URL final escapando cada segmento de path.
func (c *Client) endpoint(segmentos ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segmentos {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// do ejecuta la petición, valida el status y decodifica el cuerpo en out
// (out nil descarta el cuerpo). En status no-2xx intenta rescatar el msg del
// envelope para mostrarlo literal.
func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("api: armar petición: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env struct {
			Msg   string `json:"msg"`
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &env)
		msg := env.Msg
		if msg == "" {
			msg = env.Error
		}
		return &Error{Status: resp.StatusCode, Mensaje: msg}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decodificar respuesta de %s: %w", rawURL, err)
	}
	return nil
}

// getJSON GET con decodificación JSON.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	return c.do(ctx, http.MethodGet, rawURL, nil, "", out)
}

// sendJSON serializa el cuerpo y ejecuta method (POST/PUT/DELETE).
func (c *Client) sendJSON(ctx context.Context, method, rawURL string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar cuerpo: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, rawURL, body, "application/json", out)
}
