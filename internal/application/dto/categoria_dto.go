package dto

// CrearCategoriaCommand datos de entrada para crear una categoría.
type CrearCategoriaCommand struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CategoriaResponse representación de salida de una categoría.
type CategoriaResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}
