package dto

// PublicarProductoCommand datos de entrada para publicar un producto.
// VendedorStatus lo suministra el llamador; este núcleo no gestiona el
// estado de aprobación de los residentes.
type PublicarProductoCommand struct {
	VendedorID     string   `json:"vendedor_id"`
	VendedorStatus string   `json:"vendedor_status"`
	Nombre         string   `json:"nombre"`
	Descripcion    string   `json:"descripcion"`
	PrecioCOP      int64    `json:"precio_cop"`
	CategoriaID    string   `json:"categoria_id"`
	Imagenes       []string `json:"imagenes"`
}

// ProductoResponse representación de salida de un producto publicado.
// Precio viaja como cadena decimal exacta.
type ProductoResponse struct {
	ID          string   `json:"id"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion,omitempty"`
	Precio      string   `json:"precio"`
	Stock       int      `json:"stock"`
	VendedorID  string   `json:"vendedor_id"`
	CategoriaID string   `json:"categoria_id,omitempty"`
	Imagenes    []string `json:"imagenes,omitempty"`
}
