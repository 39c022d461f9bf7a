// Package token lee los claims del JWT de sesión que emite el backend.
// El cliente no conoce el secreto de firma (vive en el servidor), así que el
// token se decodifica sin verificar: solo interesa saber quién es el usuario
// y si la sesión ya expiró antes de gastar una llamada de red.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios del backend.
type Claims struct {
	jwt.RegisteredClaims
	IDUsuario   string `json:"id_usuario"`
	TipoUsuario string `json:"tipo_usuario"` // "ADMIN" | "TECNICO"
}

// Leer decodifica el token sin verificar la firma y devuelve los claims.
func Leer(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token: cadena vacía")
	}
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: decodificar claims: %w", err)
	}
	return claims, nil
}

// Expirado reporta si el claim exp ya pasó. Un token sin exp se trata como vigente.
func Expirado(c *Claims) bool {
	if c == nil {
		return true
	}
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(c.ExpiresAt.Time)
}
