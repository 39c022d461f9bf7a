// Package texto normaliza nombres de negocio (subservicios, tipos de técnico)
// para compararlos sin importar mayúsculas, espacios sobrantes ni tildes.
// El backend mezcla "Verificación de Series" y "verificacion de series";
// aquí ambos colapsan a la misma llave.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos descompone (NFD), elimina las marcas combinantes y recompone (NFC).
var quitarDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalizar devuelve el texto en minúsculas, sin espacios en los extremos y sin tildes.
func Normalizar(s string) string {
	limpio, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		// Entrada no normalizable: se compara tal cual viene
		limpio = s
	}
	return strings.ToLower(strings.TrimSpace(limpio))
}

// Contiene reporta si s contiene sub, ambos normalizados.
func Contiene(s, sub string) bool {
	return strings.Contains(Normalizar(s), Normalizar(sub))
}

// Igual reporta si a y b son iguales tras normalizar.
func Igual(a, b string) bool {
	return Normalizar(a) == Normalizar(b)
}
