package dto

// PersonaDTO persona tal como viaja por la API.
type PersonaDTO struct {
	ID        int    `json:"id"`
	Cedula    string `json:"cedula"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Email     string `json:"email"`
}

// PersonasResponse respuesta de GET /personas/listar.
type PersonasResponse struct {
	Envelope
	Personas []PersonaDTO `json:"personas"`
}

// BuscarPersonasResponse respuesta de GET /proformadir/buscar/{texto}.
type BuscarPersonasResponse struct {
	Envelope
	Resultados []PersonaDTO `json:"resultados"`
}

// RegistroCivilResponse respuesta de GET /personas/consultar/cedula/{cedula}.
// Sin match llega ok:false; no es un error, dispara el ingreso manual.
type RegistroCivilResponse struct {
	Envelope
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
}

// CrearPersonaRequest cuerpo de POST /personas/crear.
type CrearPersonaRequest struct {
	Cedula    string `json:"cedula"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Email     string `json:"email"`
}
