package dto

// CrearUsuarioCommand datos de entrada para crear un residente.
// Apartamento y teléfono son opcionales.
type CrearUsuarioCommand struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Apartamento string `json:"apartamento,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
}

// UsuarioResponse representación de salida de un residente.
type UsuarioResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Apartamento string `json:"apartamento,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
}
