package dto

// ServicioDTO entrada de GET /tickets/services (el backend devuelve el array pelado).
type ServicioDTO struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// SubservicioDTO entrada de GET /tickets/subservices/{id}.
type SubservicioDTO struct {
	ID         int    `json:"id"`
	IDServicio int    `json:"id_service"`
	Nombre     string `json:"nombre"`
}

// EstablecimientoDTO entrada de GET /factura/listar-establecimientos.
type EstablecimientoDTO struct {
	ID                 int    `json:"id"`
	RazonSocial        string `json:"razon_social"`
	CodEstablecimiento string `json:"cod_establecimiento"`
	CodPuntoEmision    string `json:"cod_punto_emision"`
}

// EstablecimientosResponse respuesta de GET /factura/listar-establecimientos.
type EstablecimientosResponse struct {
	Envelope
	Establecimientos []EstablecimientoDTO `json:"establecimientos"`
}
