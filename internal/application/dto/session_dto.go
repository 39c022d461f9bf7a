package dto

// LoginRequest credenciales para POST /auth/login.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// UsuarioDTO usuario autenticado tal como lo devuelve el backend.
type UsuarioDTO struct {
	ID          int    `json:"id"`
	Nombres     string `json:"nombres"`
	Apellidos   string `json:"apellidos"`
	Correo      string `json:"correo"`
	Telefono    string `json:"telefono"`
	TipoUsuario string `json:"tipo_usuario"`
	TipoTecnico string `json:"tipo_tecnico"`
	Estado      int    `json:"estado"`
}

// LoginResponse respuesta de POST /auth/login.
type LoginResponse struct {
	Token   string     `json:"token"`
	Usuario UsuarioDTO `json:"usuario"`
	Error   string     `json:"error"`
}
