package dto

// PublicarServicioCommand datos de entrada para publicar un servicio.
type PublicarServicioCommand struct {
	ProveedorID     string `json:"proveedor_id"`
	ProveedorStatus string `json:"proveedor_status"`
	Nombre          string `json:"nombre"`
	Descripcion     string `json:"descripcion"`
	PrecioCOP       int64  `json:"precio_cop"`
	CategoriaID     string `json:"categoria_id"`
}

// ServicioResponse representación de salida de un servicio publicado.
type ServicioResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Precio      string `json:"precio"`
	Disponible  bool   `json:"disponible"`
	ProveedorID string `json:"proveedor_id"`
	CategoriaID string `json:"categoria_id,omitempty"`
}
