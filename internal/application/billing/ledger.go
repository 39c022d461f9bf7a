// Package billing contiene el núcleo de facturación: el ledger de líneas, la
// calculadora de totales y los casos de uso de proforma y factura.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// Ledger colección ordenada y mutable de líneas facturables. Vive dentro del
// borrador de un documento; las líneas no tienen identidad hasta el envío.
// Mono-hilo y síncrono: no se garantiza estabilidad de índices tras eliminar.
type Ledger struct {
	items []entity.ItemFactura
}

// NewLedger construye un ledger con las líneas iniciales (puede ser vacío).
func NewLedger(items ...entity.ItemFactura) *Ledger {
	l := &Ledger{items: make([]entity.ItemFactura, 0, len(items))}
	l.items = append(l.items, items...)
	return l
}

// validarItem reglas locales de una línea: descripción no vacía, cantidad ≥ 1,
// precio ≥ 0, descuento entre 0 y cantidad×precio. Una violación es falla de
// validación local (el caller re-solicita), no una excepción.
func validarItem(item entity.ItemFactura) error {
	if item.Descripcion == "" {
		return domain.ErrValidacion
	}
	if item.Cantidad < 1 {
		return domain.ErrValidacion
	}
	if item.Precio.IsNegative() {
		return domain.ErrValidacion
	}
	maxDescuento := decimal.NewFromInt(item.Cantidad).Mul(item.Precio)
	if item.Descuento.IsNegative() || item.Descuento.GreaterThan(maxDescuento) {
		return domain.ErrValidacion
	}
	return nil
}

// Agregar valida y agrega la línea al final.
func (l *Ledger) Agregar(item entity.ItemFactura) error {
	if err := validarItem(item); err != nil {
		return err
	}
	l.items = append(l.items, item)
	return nil
}

// Eliminar borra la línea en la posición dada; los índices siguientes corren.
func (l *Ledger) Eliminar(indice int) error {
	if indice < 0 || indice >= len(l.items) {
		return domain.ErrIndiceInvalido
	}
	l.items = append(l.items[:indice], l.items[indice+1:]...)
	return nil
}

// actualizar aplica el cambio de un solo campo. Nada se recalcula: el total de
// la línea es una vista derivada (ItemFactura.Base), no un campo almacenado.
func (l *Ledger) actualizar(indice int, cambio func(*entity.ItemFactura)) error {
	if indice < 0 || indice >= len(l.items) {
		return domain.ErrIndiceInvalido
	}
	cambio(&l.items[indice])
	return nil
}

// ActualizarDescripcion reemplaza la descripción de la línea.
func (l *Ledger) ActualizarDescripcion(indice int, v string) error {
	return l.actualizar(indice, func(i *entity.ItemFactura) { i.Descripcion = v })
}

// ActualizarServicio reemplaza el servicio de la línea.
func (l *Ledger) ActualizarServicio(indice int, v string) error {
	return l.actualizar(indice, func(i *entity.ItemFactura) { i.Servicio = v })
}

// ActualizarSubservicio reemplaza el subservicio de la línea.
func (l *Ledger) ActualizarSubservicio(indice int, v string) error {
	return l.actualizar(indice, func(i *entity.ItemFactura) { i.Subservicio = v })
}

// ActualizarCantidad reemplaza la cantidad de la línea.
func (l *Ledger) ActualizarCantidad(indice int, v int64) error {
	return l.actualizar(indice, func(i *entity.ItemFactura) { i.Cantidad = v })
}

// ActualizarPrecio reemplaza el precio unitario de la línea.
func (l *Ledger) ActualizarPrecio(indice int, v decimal.Decimal) error {
	return l.actualizar(indice, func(i *entity.ItemFactura) { i.Precio = v })
}

// ActualizarDescuento reemplaza el descuento de la línea.
func (l *Ledger) ActualizarDescuento(indice int, v decimal.Decimal) error {
	return l.actualizar(indice, func(i *entity.ItemFactura) { i.Descuento = v })
}

// Items devuelve una copia de las líneas (el ledger sigue siendo el dueño).
func (l *Ledger) Items() []entity.ItemFactura {
	out := make([]entity.ItemFactura, len(l.items))
	copy(out, l.items)
	return out
}

// Len cantidad de líneas.
func (l *Ledger) Len() int { return len(l.items) }

// Totales totales del ledger con el descuento de documento dado. Se recalcula
// en cada mutación desde las líneas; nunca se acumula estado.
func (l *Ledger) Totales(descuentoTotal decimal.Decimal) entity.Totales {
	return CalcularTotales(l.items, descuentoTotal)
}
