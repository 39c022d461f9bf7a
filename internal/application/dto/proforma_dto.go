package dto

import "github.com/shopspring/decimal"

// ItemProformaDTO línea de una proforma directa. El total viaja en el cuerpo
// pero siempre se deriva de cantidad×precio al armar el request.
type ItemProformaDTO struct {
	Descripcion    string          `json:"descripcion"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
}

// CrearProformaRequest cuerpo de POST /proformadir: cliente, vehículo,
// servicio seleccionado e ítems, todo en un solo paso.
type CrearProformaRequest struct {
	NombreCliente   string            `json:"nombre_cliente"`
	ApellidoCliente string            `json:"apellido_cliente"`
	TelefonoCliente string            `json:"telefono_cliente"`
	Direccion       string            `json:"direccion"`
	Placa           string            `json:"placa"`
	NumeroCedula    string            `json:"numero_cedula"`
	IDService       *int              `json:"id_service"`
	IDSubservice    *int              `json:"id_subservice"`
	Items           []ItemProformaDTO `json:"items"`
}
