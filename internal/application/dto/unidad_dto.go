package dto

// CrearUnidadResidencialCommand datos de entrada para crear una unidad.
type CrearUnidadResidencialCommand struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

// UnidadResidencialResponse representación de salida de una unidad.
type UnidadResidencialResponse struct {
	ID         string `json:"id"`
	Nombre     string `json:"nombre"`
	Direccion  string `json:"direccion"`
	Residentes int    `json:"residentes"`
}
