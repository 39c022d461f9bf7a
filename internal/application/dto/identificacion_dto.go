package dto

import "encoding/json"

// ContactoResponse respuesta de GET /identificacion/contacto/{id_orden}:
// la persona que abrió el ticket, para pre-llenar la sección del solicitante.
type ContactoResponse struct {
	Envelope
	Persona *PersonaDTO `json:"persona"`
}

// FotoDetalleDTO foto ya subida, con su slot y descripción.
type FotoDetalleDTO struct {
	ID          int    `json:"id"`
	Tipo        string `json:"tipo"`
	Path        string `json:"path"`
	Descripcion string `json:"descripcion"`
}

// CasoResponse respuesta de GET /identificacion/{id_orden}.
// datos_vehiculo llega como string con JSON adentro (así lo guarda el
// backend); se decodifica en un segundo paso.
type CasoResponse struct {
	Envelope
	Placa         string           `json:"placa"`
	Cedula        string           `json:"cedula"`
	Observaciones string           `json:"observaciones"`
	Conclusiones  string           `json:"conclusiones"`
	DatosVehiculo string           `json:"datos_vehiculo"`
	FotosDetalle  []FotoDetalleDTO `json:"fotos_detalle"`
}

// VehiculoANTDTO vehículo devuelto por el proxy del registro (ANT).
type VehiculoANTDTO struct {
	Placa        string `json:"placa"`
	Marca        string `json:"marca"`
	Modelo       string `json:"modelo"`
	Anio         string `json:"anio"`
	PaisOrigen   string `json:"pais_origen"`
	NumeroMotor  string `json:"numero_motor"`
	NumeroChasis string `json:"numero_chasis"`
}

// PropietarioANTDTO propietario registrado del vehículo.
type PropietarioANTDTO struct {
	Cedula string `json:"cedula"`
}

// ConsultaANTResponse respuesta de GET /identificacion/consultar/ant/{placa}.
// ok:false o vehiculo nulo no es error: dispara el ingreso manual.
type ConsultaANTResponse struct {
	Envelope
	Vehiculo    *VehiculoANTDTO    `json:"vehiculo"`
	Propietario *PropietarioANTDTO `json:"propietario"`
}

// DatosCedulaDTO sección del solicitante dentro del guardado del caso.
type DatosCedulaDTO struct {
	Nombre          string `json:"nombre"`
	TelefonoManual  string `json:"telefono_manual"`
	DireccionManual string `json:"direccion_manual"`
}

// GuardarCasoRequest cuerpo de PUT /identificacion/{id_orden}: el borrador
// completo, reemplazo wholesale (el último guardado gana).
type GuardarCasoRequest struct {
	Placa         string          `json:"placa"`
	Cedula        string          `json:"cedula"`
	Observaciones string          `json:"observaciones"`
	DatosCedula   DatosCedulaDTO  `json:"datos_cedula"`
	DatosVehiculo json.RawMessage `json:"datos_vehiculo"`
}

// FinalizarCasoRequest cuerpo de PUT /identificacion/finalizar/{id_orden}.
type FinalizarCasoRequest struct {
	Conclusiones string `json:"conclusiones"`
}

// DescripcionFotoRequest cuerpo de PUT /identificacion/foto-detalle/{id}.
type DescripcionFotoRequest struct {
	Descripcion string `json:"descripcion"`
}
