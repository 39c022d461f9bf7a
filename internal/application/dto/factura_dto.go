package dto

import "github.com/shopspring/decimal"

// FacturaPendienteDTO entrada de GET /factura/listar-pendientes.
// Los montos llegan a veces como número y a veces como string; decimal.Decimal
// acepta ambos al deserializar.
type FacturaPendienteDTO struct {
	ID                 int             `json:"id_factura"`
	RazonSocial        string          `json:"razon_social"`
	Identificacion     string          `json:"identificacion"`
	TipoIdentificacion string          `json:"tipo_identificacion"`
	Servicio           string          `json:"servicio"`
	Subservicio        string          `json:"subservicio"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	IVA                decimal.Decimal `json:"iva"`
	Total              decimal.Decimal `json:"total"`
}

// FacturasPendientesResponse respuesta de GET /factura/listar-pendientes.
type FacturasPendientesResponse struct {
	Envelope
	Facturas []FacturaPendienteDTO `json:"facturas"`
}

// FacturaDTO cabecera de GET /factura/traerfactura/{id}.
type FacturaDTO struct {
	ID                 int             `json:"id_factura"`
	Identificacion     string          `json:"identificacion"`
	TipoIdentificacion string          `json:"tipo_identificacion"`
	RazonSocial        string          `json:"razon_social"`
	Direccion          string          `json:"direccion"`
	Telefono           string          `json:"telefono"`
	Correo             string          `json:"correo"`
	Observacion        string          `json:"observacion"`
	FormaPago          string          `json:"forma_pago"`
	Total              decimal.Decimal `json:"total"`
}

// DetalleFacturaDTO línea de detalle de GET /factura/traerfactura/{id}.
type DetalleFacturaDTO struct {
	Servicio    string          `json:"servicio"`
	Subservicio string          `json:"subservicio"`
	Descripcion string          `json:"descripcion"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	PrecioUnit  decimal.Decimal `json:"precio_unit"`
	Descuento   decimal.Decimal `json:"descuento"`
}

// TraerFacturaResponse respuesta completa de GET /factura/traerfactura/{id}.
type TraerFacturaResponse struct {
	Envelope
	Factura  FacturaDTO          `json:"factura"`
	Detalles []DetalleFacturaDTO `json:"detalles"`
}

// ItemFacturaDTO línea enviada al finalizar la factura.
type ItemFacturaDTO struct {
	Servicio    string          `json:"servicio"`
	Subservicio string          `json:"subservicio"`
	Descripcion string          `json:"descripcion"`
	Cantidad    int64           `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
	Descuento   decimal.Decimal `json:"descuento"`
}

// FinalizarFacturaRequest cuerpo de PUT /factura/finalizar/{id}. Los totales
// van ya calculados por la calculadora (partición 85/15 de la base).
type FinalizarFacturaRequest struct {
	IDEstablecimiento  *int             `json:"id_establecimiento"`
	Identificacion     string           `json:"identificacion"`
	TipoIdentificacion string           `json:"tipo_identificacion"`
	RazonSocial        string           `json:"razon_social"`
	Direccion          string           `json:"direccion"`
	Telefono           string           `json:"telefono"`
	Correo             string           `json:"correo"`
	Observacion        string           `json:"observacion"`
	FormaPago          string           `json:"forma_pago"`
	Subtotal           decimal.Decimal  `json:"subtotal"`
	IVA                decimal.Decimal  `json:"iva"`
	DescuentoTotal     decimal.Decimal  `json:"descuento_total"`
	Total              decimal.Decimal  `json:"total"`
	EstadoSRI          string           `json:"estado_sri"`
	Items              []ItemFacturaDTO `json:"items"`
}
