package dto

import "time"

// RegistrarConsultaCommand datos de entrada para registrar una consulta.
// ItemType discrimina el destino: "producto" o "servicio".
type RegistrarConsultaCommand struct {
	CompradorID string `json:"comprador_id"`
	ItemID      string `json:"item_id"`
	ItemType    string `json:"item_type"`
	Mensaje     string `json:"mensaje,omitempty"`
}

// ConsultaResponse representación de salida de una consulta.
type ConsultaResponse struct {
	ID          string    `json:"id"`
	CompradorID string    `json:"comprador_id"`
	ItemID      string    `json:"item_id"`
	ItemType    string    `json:"item_type"`
	ItemNombre  string    `json:"item_nombre"`
	Mensaje     string    `json:"mensaje,omitempty"`
	Estado      string    `json:"estado"`
	Fecha       time.Time `json:"fecha"`
}
