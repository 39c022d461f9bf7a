package dto

// CrearUsuarioRequest cuerpo de POST /usuarios (alta de cuenta desde la
// pantalla de gestión del admin).
type CrearUsuarioRequest struct {
	Nombres    string `json:"nombres"`
	Apellidos  string `json:"apellidos"`
	Correo     string `json:"correo"`
	Telefono   string `json:"telefono"`
	Rol        string `json:"rol"` // "ADMIN" | "TECNICO"
	Contrasena string `json:"contrasena"`
}
