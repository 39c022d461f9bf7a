package entity

import "time"

// EstadoOrden estado de una orden de trabajo. Las transiciones las ejecuta el
// servidor; el cliente solo las observa en cada refresco de lista.
type EstadoOrden string

const (
	OrdenAsignada   EstadoOrden = "asignada"
	OrdenEnProceso  EstadoOrden = "en_proceso"
	OrdenFinalizada EstadoOrden = "finalizada"
)

// Orden unidad de trabajo que enruta el servicio pedido por un cliente.
type Orden struct {
	ID            int
	NombreCliente string
	Placa         string
	Servicio      string
	Subservicio   string
	Estado        EstadoOrden
	FechaInicio   *time.Time
	FechaFin      *time.Time
}
