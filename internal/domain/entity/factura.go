package entity

import "github.com/shopspring/decimal"

// Formas de pago aceptadas al finalizar una factura.
const (
	PagoEfectivo      = "EFECTIVO"
	PagoTransferencia = "TRANSFERENCIA"
	PagoTarjeta       = "TARJETA"
)

// EstadoSRIAprobada estado que el backend espera al emitir la factura.
const EstadoSRIAprobada = "APROBADA"

// ItemFactura línea facturable dentro de un documento (proforma o factura).
// No tiene identidad propia hasta que el documento contenedor se envía.
type ItemFactura struct {
	Servicio    string
	Subservicio string
	Descripcion string
	Cantidad    int64
	Precio      decimal.Decimal
	Descuento   decimal.Decimal
}

// Base devuelve cantidad×precio − descuento. Es una vista derivada: el total
// de una línea nunca se guarda ni se asigna por separado.
func (i ItemFactura) Base() decimal.Decimal {
	return decimal.NewFromInt(i.Cantidad).Mul(i.Precio).Sub(i.Descuento)
}

// Totales resultado de la calculadora de facturación. Decimales exactos;
// el formateo a dos decimales es asunto de presentación.
type Totales struct {
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
}

// ClienteFactura datos de facturación del cliente del documento.
type ClienteFactura struct {
	Identificacion     string
	TipoIdentificacion string // "CEDULA", "RUC", ...
	RazonSocial        string
	Direccion          string
	Telefono           string
	Correo             string
}

// FacturaPendiente resumen de una factura generada pero aún no emitida.
type FacturaPendiente struct {
	ID                 int
	RazonSocial        string
	Identificacion     string
	TipoIdentificacion string
	Servicio           string
	Subservicio        string
	Subtotal           decimal.Decimal
	IVA                decimal.Decimal
	Total              decimal.Decimal
}
