// Package ordenes observa el ciclo de vida de las órdenes de trabajo. Las
// transiciones asignada → en_proceso → finalizada las ejecuta el servidor; el
// cliente lista por estado, solicita eliminaciones y dispara los sub-workflows
// del subservicio al entrar en proceso.
package ordenes

import (
	"context"
	"fmt"
	"time"

	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
	"github.com/pqautoexpert/suite360-movil/pkg/texto"
)

// Modulo sub-workflow de campo que un subservicio dispara.
type Modulo string

const (
	ModuloIdentificacion Modulo = "identificacion"
	ModuloHistorial      Modulo = "historial"
	ModuloCertificados   Modulo = "certificados"
	ModuloContratos      Modulo = "contratos"
	ModuloDesconocido    Modulo = ""
)

// EliminacionRechazada el servidor rechazó eliminar la orden. Mensaje se
// muestra al usuario tal cual llegó, sin interpretar; la lista local no cambia.
type EliminacionRechazada struct {
	IDOrden int
	Mensaje string
}

func (e *EliminacionRechazada) Error() string {
	if e.Mensaje != "" {
		return e.Mensaje
	}
	return fmt.Sprintf("no se pudo eliminar la orden %d", e.IDOrden)
}

// API puerto hacia los endpoints de órdenes.
type API interface {
	ListarOrdenes(ctx context.Context, estado entity.EstadoOrden) ([]entity.Orden, error)
	OrdenesTecnico(ctx context.Context) ([]entity.Orden, error)
	EliminarOrden(ctx context.Context, idOrden int) (string, error)
	IniciarProceso(ctx context.Context, modulo string, idOrden int) error
}

// Tracker componente reutilizable detrás de las tres listas por estado.
type Tracker struct {
	api API
}

// NewTracker construye el tracker.
func NewTracker(api API) *Tracker {
	return &Tracker{api: api}
}

// Listar vista de lectura del estado dado, en el orden del servidor.
func (t *Tracker) Listar(ctx context.Context, estado entity.EstadoOrden) ([]entity.Orden, error) {
	ordenes, err := t.api.ListarOrdenes(ctx, estado)
	if err != nil {
		return nil, fmt.Errorf("ordenes: listar %s: %w", estado, err)
	}
	return ordenes, nil
}

// PendientesTecnico órdenes pendientes del técnico autenticado.
func (t *Tracker) PendientesTecnico(ctx context.Context) ([]entity.Orden, error) {
	ordenes, err := t.api.OrdenesTecnico(ctx)
	if err != nil {
		return nil, fmt.Errorf("ordenes: pendientes del técnico: %w", err)
	}
	return ordenes, nil
}

// SolicitarEliminacion pide al servidor eliminar una orden asignada (cascada
// a proforma y ticket del lado del servidor). Solo tiene sentido en estado
// asignada; el rechazo llega como EliminacionRechazada con el msg literal.
func (t *Tracker) SolicitarEliminacion(ctx context.Context, idOrden int) (string, error) {
	msg, err := t.api.EliminarOrden(ctx, idOrden)
	if err != nil {
		return "", &EliminacionRechazada{IDOrden: idOrden, Mensaje: err.Error()}
	}
	return msg, nil
}

// Iniciar dispara el sub-workflow del módulo para la orden (la orden pasa a
// en_proceso del lado del servidor).
func (t *Tracker) Iniciar(ctx context.Context, modulo Modulo, idOrden int) error {
	if modulo == ModuloDesconocido {
		return domain.ErrValidacion
	}
	if err := t.api.IniciarProceso(ctx, string(modulo), idOrden); err != nil {
		return fmt.Errorf("ordenes: iniciar %s para %d: %w", modulo, idOrden, err)
	}
	return nil
}

// ModuloParaSubservicio matching del nombre del subservicio (insensible a
// mayúsculas, espacios y tildes) al módulo que dispara.
func ModuloParaSubservicio(nombre string) Modulo {
	switch texto.Normalizar(nombre) {
	case "verificacion de series":
		return ModuloIdentificacion
	case "historial vehicular":
		return ModuloHistorial
	case "certificado unico vehicular":
		return ModuloCertificados
	case "constancia", "legalizacion de contratos":
		return ModuloContratos
	default:
		return ModuloDesconocido
	}
}

// FormatearFecha fecha local estilo es-EC, o "-" si no hay fecha.
func FormatearFecha(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04:05")
}
