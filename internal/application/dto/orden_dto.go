package dto

// OrdenDTO orden de trabajo tal como viaja en las listas por estado.
type OrdenDTO struct {
	ID            int    `json:"id_orden"`
	NombreCliente string `json:"nombre_cliente"`
	Placa         string `json:"placa"`
	Servicio      string `json:"servicio"`
	Subservicio   string `json:"subservicio"`
	Estado        string `json:"estado_orden"`
	FechaInicio   string `json:"fecha_inicio"`
	FechaFin      string `json:"fecha_fin"`
}

// OrdenesResponse respuesta de GET /orden/{asignadas|en_proceso|finalizadas}
// y de GET /tecnico/ordenes.
type OrdenesResponse struct {
	Envelope
	Ordenes []OrdenDTO `json:"ordenes"`
}
