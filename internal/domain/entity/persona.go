package entity

// Persona registro de identidad llaveado por cédula.
// Se crea por digitación manual o pre-llenado desde el Registro Civil.
type Persona struct {
	ID        int
	Cedula    string
	Nombres   string
	Apellidos string
	Telefono  string
	Direccion string
	Email     string
}

// Usuario cuenta de acceso a la aplicación.
type Usuario struct {
	ID          int
	Nombres     string
	Apellidos   string
	Correo      string
	Telefono    string
	TipoUsuario string // "ADMIN" | "TECNICO"
	TipoTecnico string // ej. "IDENTIFICACIÓN VEHICULAR", "DETAILING", "AUTO SERVICIOS"
	Activo      bool
}
