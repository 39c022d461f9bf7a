package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrValidacion       = errors.New("entrada inválida")
	ErrNoEncontrado     = errors.New("recurso no encontrado")
	ErrIndiceInvalido   = errors.New("índice fuera de rango")
	ErrSesionExpirada   = errors.New("sesión expirada, vuelva a iniciar sesión")
	ErrCasoFinalizado   = errors.New("el caso ya fue finalizado")
	ErrCasoNoCargado    = errors.New("el caso aún no se ha cargado")
	ErrDocumentoEmitido = errors.New("la factura ya fue emitida")
)
